package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mezonai/starnotary/errors"
	"github.com/mezonai/starnotary/wallet"
)

// End-to-end handshake against the production ed25519 primitive.
func TestOwnershipHandshakeWithEd25519(t *testing.T) {
	cfg := testNodeConfig()
	c, err := NewChain(cfg, testTuning(), wallet.Ed25519Verifier{})
	require.NoError(t, err)

	w, err := wallet.NewWallet()
	require.NoError(t, err)

	message, err := c.RequestOwnershipChallenge(w.Address)
	require.NoError(t, err)

	sealed, err := c.SubmitStar(w.Address, message, w.Sign([]byte(message)), testStar("signed for real"))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), sealed.Height)
	assert.Empty(t, c.ValidateChain())

	stars := c.GetStarsByWallet(w.Address)
	require.Len(t, stars, 1)
	assert.Equal(t, "signed for real", stars[0].Star.Story)
}

func TestOwnershipHandshakeRejectsForeignSignature(t *testing.T) {
	cfg := testNodeConfig()
	c, err := NewChain(cfg, testTuning(), wallet.Ed25519Verifier{})
	require.NoError(t, err)

	owner, err := wallet.NewWallet()
	require.NoError(t, err)
	intruder, err := wallet.NewWallet()
	require.NoError(t, err)

	message, err := c.RequestOwnershipChallenge(owner.Address)
	require.NoError(t, err)

	// The intruder signs the owner's challenge with their own key.
	_, err = c.SubmitStar(owner.Address, message, intruder.Sign([]byte(message)), testStar("stolen"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeSignatureVerificationFailed, errors.CodeOf(err))
	assert.Equal(t, uint64(0), c.Height())
}
