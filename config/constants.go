package config

const (
	// DefaultGenesisData is the canonical payload sealed into the genesis block.
	DefaultGenesisData = "Genesis Block - Star Notary Ledger"

	// DefaultChallengeWindowSeconds bounds replay of signed ownership
	// challenges: messages older than this are rejected.
	DefaultChallengeWindowSeconds int64 = 300

	DefaultRPCAddr = ":8545"
)
