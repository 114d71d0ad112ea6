package config

import (
	"os"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/mezonai/starnotary/logx"
)

// LoadNodeConfig reads and parses the genesis.yml file
func LoadNodeConfig(path string) (*NodeConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		logx.Error("CONFIG", "Failed to open config file: ", err)
		return nil, err
	}
	defer file.Close()

	var cfgFile ConfigFile
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfgFile); err != nil {
		logx.Error("CONFIG", "Failed to decode YAML: ", err)
		return nil, err
	}
	cfg := &cfgFile.Config
	if cfg.Genesis.Data == "" {
		cfg.Genesis.Data = DefaultGenesisData
	}
	if cfg.RPCAddr == "" {
		cfg.RPCAddr = DefaultRPCAddr
	}
	return cfg, nil
}

// LoadTuningConfig reads node tuning knobs from an .ini file. A missing file
// yields the defaults.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	tuning := DefaultTuning()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return tuning, nil
	}
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Section("ledger").MapTo(tuning); err != nil {
		return nil, err
	}
	return tuning, nil
}

// DefaultTuning returns the built-in tuning values.
func DefaultTuning() *TuningConfig {
	return &TuningConfig{
		ChallengeWindowSeconds: DefaultChallengeWindowSeconds,
	}
}
