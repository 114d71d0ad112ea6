package common

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
)

func TestBase58RoundTrip(t *testing.T) {
	in := []byte{0, 1, 2, 3, 250, 251, 252, 253}
	out, err := DecodeBase58ToBytes(EncodeBytesToBase58(in))
	if err != nil {
		t.Fatalf("DecodeBase58ToBytes failed: %v", err)
	}
	if string(out) != string(in) {
		t.Errorf("round trip mismatch: got %v, want %v", out, in)
	}
}

func TestIsValidBase58(t *testing.T) {
	if !IsValidBase58(EncodeBytesToBase58([]byte("hello"))) {
		t.Error("valid base58 rejected")
	}
	if IsValidBase58("0OIl") {
		t.Error("accepted characters outside the base58 alphabet")
	}
}

func TestAddressValidation(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	addr := EncodeBytesToBase58(pub)

	decoded, err := DecodeAddress(addr)
	if err != nil {
		t.Fatalf("DecodeAddress failed on a valid address: %v", err)
	}
	if string(decoded) != string(pub) {
		t.Error("decoded address does not match the public key")
	}
	if !IsValidAddress(addr) {
		t.Error("valid address rejected")
	}

	// Wrong length, though valid base58
	if IsValidAddress(EncodeBytesToBase58([]byte("short"))) {
		t.Error("accepted an address that is not a public key")
	}
	if IsValidAddress("") {
		t.Error("accepted an empty address")
	}
}
