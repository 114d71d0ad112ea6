package block

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// Block is an immutable-once-sealed ledger record. Body holds the hex-encoded
// canonical JSON payload so the serialized hash input is stable and independent
// of in-memory field order. Genesis carries a zero PrevHash.
type Block struct {
	Height    uint64   // Index in the chain, 0 for genesis
	Timestamp int64    // Unix seconds, assigned at seal time
	PrevHash  [32]byte // Hash of the preceding block, zero for genesis
	Hash      [32]byte // Hash of the block content, fixed at seal time
	Body      []byte   // Hex-encoded payload

	sealed bool
}

// New returns an unsealed block carrying body. Linkage metadata and the hash
// are assigned by the chain's append transition via Seal.
func New(body []byte) *Block {
	return &Block{Body: body}
}

// Seal fixes the linkage metadata and computes the block hash. The chain calls
// this exactly once per block at append time; the stored hash is never
// recomputed in place afterwards.
func (b *Block) Seal(height uint64, prevHash [32]byte, timestamp int64) {
	b.Height = height
	b.PrevHash = prevHash
	b.Timestamp = timestamp
	b.Hash = b.computeHash()
	b.sealed = true
}

func (b *Block) computeHash() [32]byte {
	h := sha256.New()
	buf := make([]byte, 8)
	// Height
	binary.BigEndian.PutUint64(buf, b.Height)
	h.Write(buf)
	// Timestamp (unix seconds)
	binary.BigEndian.PutUint64(buf, uint64(b.Timestamp))
	h.Write(buf)
	// PrevHash
	h.Write(b.PrevHash[:])
	// Body
	h.Write(b.Body)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Validate recomputes the digest over the block's current content and reports
// whether it still matches the sealed hash. It never mutates the block.
func (b *Block) Validate() bool {
	if !b.sealed {
		return false
	}
	return b.Hash == b.computeHash()
}

// IsGenesis reports whether b occupies the genesis position.
func (b *Block) IsGenesis() bool {
	return b.Height == 0 && b.PrevHash == [32]byte{}
}

func (b *Block) HashString() string {
	return hex.EncodeToString(b.Hash[:])
}

func (b *Block) PrevHashString() string {
	return hex.EncodeToString(b.PrevHash[:])
}

// ParseHash decodes a hex block hash as handed in at the RPC boundary.
func ParseHash(s string) ([32]byte, error) {
	var out [32]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return out, fmt.Errorf("invalid block hash: %w", err)
	}
	if len(raw) != 32 {
		return out, fmt.Errorf("invalid block hash length %d", len(raw))
	}
	copy(out[:], raw)
	return out, nil
}
