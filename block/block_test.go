package block

import (
	"testing"
	"time"
)

func testStar() Star {
	return Star{
		Dec:   "68 52' 56.9",
		RA:    "16h 29m 1.0s",
		Story: "Found this one on a clear night",
	}
}

func sealedStarBlock(t *testing.T, height uint64, prev [32]byte) *Block {
	t.Helper()
	body, err := EncodeStarPayload("some-address", testStar())
	if err != nil {
		t.Fatalf("EncodeStarPayload failed: %v", err)
	}
	b := New(body)
	b.Seal(height, prev, time.Now().Unix())
	return b
}

func TestSealAndValidate(t *testing.T) {
	prev := [32]byte{1, 2, 3}
	b := sealedStarBlock(t, 1, prev)

	if b.Hash == ([32]byte{}) {
		t.Error("Seal left a zero hash")
	}
	if !b.Validate() {
		t.Error("Freshly sealed block failed validation")
	}

	// Validate must compare, never recompute in place
	before := b.Hash
	b.Validate()
	if b.Hash != before {
		t.Error("Validate mutated the stored hash")
	}
}

func TestValidateUnsealedBlock(t *testing.T) {
	body, err := EncodeStarPayload("some-address", testStar())
	if err != nil {
		t.Fatalf("EncodeStarPayload failed: %v", err)
	}
	if New(body).Validate() {
		t.Error("Unsealed block reported as valid")
	}
}

func TestTamperedBodyFailsValidation(t *testing.T) {
	b := sealedStarBlock(t, 1, [32]byte{1})
	b.Body[0] ^= 0xff
	if b.Validate() {
		t.Error("Tampered block still reported as valid")
	}
}

func TestTamperedHeightFailsValidation(t *testing.T) {
	b := sealedStarBlock(t, 1, [32]byte{1})
	b.Height = 7
	if b.Validate() {
		t.Error("Block with rewritten height still reported as valid")
	}
}

func TestStarPayloadRoundTrip(t *testing.T) {
	star := testStar()
	body, err := EncodeStarPayload("owner-address", star)
	if err != nil {
		t.Fatalf("EncodeStarPayload failed: %v", err)
	}
	b := New(body)
	b.Seal(1, [32]byte{9}, time.Now().Unix())

	claim, err := b.DecodePayload()
	if err != nil {
		t.Fatalf("DecodePayload failed: %v", err)
	}
	if claim == nil {
		t.Fatal("DecodePayload returned the genesis sentinel for a star block")
	}
	if claim.Owner != "owner-address" {
		t.Errorf("Owner = %q, want %q", claim.Owner, "owner-address")
	}
	if claim.Star != star {
		t.Errorf("Star = %+v, want %+v", claim.Star, star)
	}
}

func TestGenesisPayloadDecodesToSentinel(t *testing.T) {
	body, err := EncodeGenesisPayload("Genesis Block - Star Notary Ledger")
	if err != nil {
		t.Fatalf("EncodeGenesisPayload failed: %v", err)
	}
	b := New(body)
	b.Seal(0, [32]byte{}, time.Now().Unix())

	if !b.IsGenesis() {
		t.Error("Genesis block not recognized as genesis")
	}
	claim, err := b.DecodePayload()
	if err != nil {
		t.Fatalf("DecodePayload failed: %v", err)
	}
	if claim != nil {
		t.Errorf("Genesis payload decoded to a claim: %+v", claim)
	}
}

func TestDecodeGarbageBody(t *testing.T) {
	b := New([]byte("not-hex!"))
	b.Seal(1, [32]byte{}, time.Now().Unix())
	if _, err := b.DecodePayload(); err == nil {
		t.Error("DecodePayload accepted a non-hex body")
	}
}

func TestParseHash(t *testing.T) {
	b := sealedStarBlock(t, 3, [32]byte{5})
	parsed, err := ParseHash(b.HashString())
	if err != nil {
		t.Fatalf("ParseHash failed on a valid hash: %v", err)
	}
	if parsed != b.Hash {
		t.Error("ParseHash did not round-trip HashString")
	}

	if _, err := ParseHash("zzzz"); err == nil {
		t.Error("ParseHash accepted non-hex input")
	}
	if _, err := ParseHash("abcd"); err == nil {
		t.Error("ParseHash accepted a short hash")
	}
}
