package wallet

import (
	"crypto/ed25519"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mezonai/starnotary/common"
)

func TestNewWalletAddress(t *testing.T) {
	w, err := NewWallet()
	require.NoError(t, err)

	pub, err := common.DecodeAddress(w.Address)
	require.NoError(t, err)
	assert.Equal(t, ed25519.PublicKey(w.PublicKey), pub)
}

func TestSignVerify(t *testing.T) {
	w, err := NewWallet()
	require.NoError(t, err)

	message := []byte(w.Address + ":1700000000:starRegistry")
	signature := w.Sign(message)

	v := Ed25519Verifier{}
	ok, err := v.Verify(message, w.Address, signature)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v.Verify([]byte("some other message"), w.Address, signature)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyRejectsMalformedInputs(t *testing.T) {
	w, err := NewWallet()
	require.NoError(t, err)
	message := []byte("message")

	v := Ed25519Verifier{}

	ok, err := v.Verify(message, "not-a-valid-address", w.Sign(message))
	assert.Error(t, err)
	assert.False(t, ok)

	ok, err = v.Verify(message, w.Address, "")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = v.Verify(message, w.Address, "0OIl")
	assert.Error(t, err)
	assert.False(t, ok)

	// Valid base58 but not a signature-sized payload
	ok, err = v.Verify(message, w.Address, common.EncodeBytesToBase58([]byte{1, 2, 3}))
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestKeyFileRoundTrip(t *testing.T) {
	w, err := NewWallet()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "wallet.key")
	require.NoError(t, w.SaveKey(path))

	loaded, err := LoadWallet(path)
	require.NoError(t, err)
	assert.Equal(t, w.Address, loaded.Address)
	assert.Equal(t, w.PrivateKey, loaded.PrivateKey)
}

func TestLoadWalletRejectsBadKeyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.key")
	require.NoError(t, os.WriteFile(path, []byte("not-hex"), 0o600))

	_, err := LoadWallet(path)
	assert.Error(t, err)
}
