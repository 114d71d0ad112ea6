package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadNodeConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genesis.yml")
	content := `config:
  chain_id: starnotary-test
  rpc_addr: ":9999"
  genesis:
    data: "custom genesis payload"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadNodeConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "starnotary-test", cfg.ChainID)
	assert.Equal(t, ":9999", cfg.RPCAddr)
	assert.Equal(t, "custom genesis payload", cfg.Genesis.Data)
}

func TestLoadNodeConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genesis.yml")
	require.NoError(t, os.WriteFile(path, []byte("config:\n  chain_id: bare\n"), 0o644))

	cfg, err := LoadNodeConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultGenesisData, cfg.Genesis.Data)
	assert.Equal(t, DefaultRPCAddr, cfg.RPCAddr)
}

func TestLoadNodeConfigMissingFile(t *testing.T) {
	_, err := LoadNodeConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadTuningConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "node.ini")
	require.NoError(t, os.WriteFile(path, []byte("[ledger]\nchallenge_window_seconds = 60\n"), 0o644))

	tuning, err := LoadTuningConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(60), tuning.ChallengeWindowSeconds)
}

func TestLoadTuningConfigMissingFileUsesDefaults(t *testing.T) {
	tuning, err := LoadTuningConfig(filepath.Join(t.TempDir(), "nope.ini"))
	require.NoError(t, err)
	assert.Equal(t, DefaultChallengeWindowSeconds, tuning.ChallengeWindowSeconds)
}
