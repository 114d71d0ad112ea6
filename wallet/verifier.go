package wallet

import (
	"crypto/ed25519"

	"github.com/mezonai/starnotary/common"
)

// Ed25519Verifier implements interfaces.SignatureVerifier over base58 wallet
// addresses and base58 signatures.
type Ed25519Verifier struct{}

// Limits to prevent DoS via oversized inputs
const maxSignatureBase58Len = 2048

func (Ed25519Verifier) Verify(message []byte, address string, signature string) (bool, error) {
	if signature == "" || len(signature) > maxSignatureBase58Len {
		return false, nil
	}
	pub, err := common.DecodeAddress(address)
	if err != nil {
		return false, err
	}
	sig, err := common.DecodeBase58ToBytes(signature)
	if err != nil {
		return false, err
	}
	if len(sig) != ed25519.SignatureSize {
		return false, nil
	}
	return ed25519.Verify(pub, message, sig), nil
}
