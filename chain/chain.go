package chain

import (
	"fmt"
	"sync"
	"time"

	"github.com/mezonai/starnotary/block"
	"github.com/mezonai/starnotary/common"
	"github.com/mezonai/starnotary/config"
	"github.com/mezonai/starnotary/errors"
	"github.com/mezonai/starnotary/interfaces"
	"github.com/mezonai/starnotary/logx"
	"github.com/mezonai/starnotary/monitoring"
)

// Chain is the append-only sequence of sealed blocks. All mutation funnels
// through the single append transition inside SubmitStar; a RWMutex serializes
// the writer against readers, so a reader never observes a half-sealed block.
type Chain struct {
	mu       sync.RWMutex
	blocks   []*block.Block // index == height
	height   uint64         // always len(blocks)-1
	verifier interfaces.SignatureVerifier
	window   time.Duration
}

// NewChain constructs a chain and synchronously seals its genesis block before
// returning, so every chain handed to callers already has height 0.
func NewChain(cfg *config.NodeConfig, tuning *config.TuningConfig, verifier interfaces.SignatureVerifier) (*Chain, error) {
	body, err := block.EncodeGenesisPayload(cfg.Genesis.Data)
	if err != nil {
		return nil, err
	}
	genesis := block.New(body)
	genesis.Seal(0, [32]byte{}, time.Now().Unix())

	c := &Chain{
		blocks:   []*block.Block{genesis},
		height:   0,
		verifier: verifier,
		window:   time.Duration(tuning.ChallengeWindowSeconds) * time.Second,
	}
	monitoring.SetBlockHeight(0)
	logx.Info("CHAIN", "Sealed genesis block ", genesis.HashString())
	return c, nil
}

// Height returns the current chain height; genesis is height 0.
func (c *Chain) Height() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.height
}

// GetBlockByHash returns the first block whose sealed hash equals hash, or nil.
func (c *Chain) GetBlockByHash(hash [32]byte) *block.Block {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, b := range c.blocks {
		if b.Hash == hash {
			return b
		}
	}
	return nil
}

// GetBlockByHeight returns the block sealed at height, or nil.
func (c *Chain) GetBlockByHeight(height uint64) *block.Block {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if height > c.height {
		return nil
	}
	return c.blocks[height]
}

// appendLocked is the single append transition: it links the pre-constructed
// unsealed block to the current tip, seals it, and pushes it. Caller holds the
// write lock.
func (c *Chain) appendLocked(b *block.Block) *block.Block {
	tip := c.blocks[len(c.blocks)-1]
	b.Seal(c.height+1, tip.Hash, time.Now().Unix())
	c.blocks = append(c.blocks, b)
	c.height++
	return b
}

// popLocked reverts the most recent append. Caller holds the write lock.
func (c *Chain) popLocked() {
	c.blocks = c.blocks[:len(c.blocks)-1]
	c.height--
}

// GetStarsByWallet scans the chain in order and collects the claims owned by
// address. It returns nil when there are none: callers treat "no stars" and
// "address unknown" identically.
func (c *Chain) GetStarsByWallet(address string) []block.StarClaim {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var stars []block.StarClaim
	for _, b := range c.blocks {
		claim, err := b.DecodePayload()
		if err != nil || claim == nil {
			continue
		}
		if claim.Owner == address {
			stars = append(stars, *claim)
		}
	}
	return stars
}

// ValidateChain runs the full-chain integrity sweep and returns the ordered
// list of error descriptions; an empty list means the chain is valid.
func (c *Chain) ValidateChain() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.validateLocked()
}

// validateLocked re-walks the entire chain, accumulating errors rather than
// short-circuiting. Caller holds at least the read lock.
func (c *Chain) validateLocked() []string {
	start := time.Now()
	var errs []string
	for i, b := range c.blocks {
		if b.Height != uint64(i) {
			errs = append(errs, fmt.Sprintf("block %d: sealed height is %d", i, b.Height))
		}
		if !b.Validate() {
			errs = append(errs, fmt.Sprintf("block %d: hash does not match content", i))
		}
		if i > 0 && c.blocks[i-1].Hash != b.PrevHash {
			errs = append(errs, fmt.Sprintf("block %d: previous hash does not link to block %d", i, i-1))
		}
	}
	monitoring.RecordChainSweep(len(errs), time.Since(start))
	return errs
}

var _ interfaces.LedgerService = (*Chain)(nil)

func validAddress(address string) error {
	if !common.IsValidAddress(address) {
		return errors.NewError(errors.ErrCodeInvalidAddress, errors.ErrMsgInvalidAddress)
	}
	return nil
}
