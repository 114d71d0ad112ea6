package config

// ConfigFile is the top-level shape of genesis.yml
type ConfigFile struct {
	Config NodeConfig `yaml:"config"`
}

// NodeConfig carries the per-node settings loaded from genesis.yml
type NodeConfig struct {
	ChainID string        `yaml:"chain_id"`
	RPCAddr string        `yaml:"rpc_addr"`
	Genesis GenesisConfig `yaml:"genesis"`
}

// GenesisConfig fixes the canonical payload of the genesis block.
type GenesisConfig struct {
	Data string `yaml:"data"`
}

// TuningConfig carries runtime knobs loaded from node.ini
type TuningConfig struct {
	ChallengeWindowSeconds int64 `ini:"challenge_window_seconds"`
}
