package interfaces

import (
	"github.com/mezonai/starnotary/block"
)

// LedgerService is the chain surface consumed by the RPC layer.
type LedgerService interface {
	Height() uint64
	GetBlockByHash(hash [32]byte) *block.Block
	GetBlockByHeight(height uint64) *block.Block
	RequestOwnershipChallenge(address string) (string, error)
	SubmitStar(address string, message string, signature string, star block.Star) (*block.Block, error)
	ValidateChain() []string
	GetStarsByWallet(address string) []block.StarClaim
}
