package wallet

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/mezonai/starnotary/common"
)

// Wallet holds an ed25519 keypair. The wallet address is the base58-encoded
// public key.
type Wallet struct {
	PrivateKey ed25519.PrivateKey
	PublicKey  ed25519.PublicKey
	Address    string
}

// NewWallet generates a new wallet.
func NewWallet() (*Wallet, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &Wallet{
		PrivateKey: priv,
		PublicKey:  pub,
		Address:    common.EncodeBytesToBase58(pub),
	}, nil
}

// Sign signs message and returns the signature base58-encoded, the form the
// ownership protocol accepts.
func (w *Wallet) Sign(message []byte) string {
	sig := ed25519.Sign(w.PrivateKey, message)
	return common.EncodeBytesToBase58(sig)
}

// SaveKey writes the private key hex-encoded to path, readable only by the
// owner.
func (w *Wallet) SaveKey(path string) error {
	return os.WriteFile(path, []byte(hex.EncodeToString(w.PrivateKey)), 0o600)
}

// LoadWallet restores a wallet from a hex-encoded private key file.
func LoadWallet(path string) (*Wallet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	key, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("invalid key file %s: %w", path, err)
	}
	if len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid key length %d in %s", len(key), path)
	}
	priv := ed25519.PrivateKey(key)
	pub := priv.Public().(ed25519.PublicKey)
	return &Wallet{
		PrivateKey: priv,
		PublicKey:  pub,
		Address:    common.EncodeBytesToBase58(pub),
	}, nil
}
