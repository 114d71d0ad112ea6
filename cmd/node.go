package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mezonai/starnotary/chain"
	"github.com/mezonai/starnotary/config"
	"github.com/mezonai/starnotary/jsonrpc"
	"github.com/mezonai/starnotary/logx"
	"github.com/mezonai/starnotary/monitoring"
	"github.com/mezonai/starnotary/wallet"
)

var (
	configPath string
	tuningPath string
)

var nodeCmd = &cobra.Command{
	Use:   "node",
	Short: "Run the star notary ledger node",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNode()
	},
}

func init() {
	nodeCmd.Flags().StringVar(&configPath, "config", "config/genesis.yml", "Path to the genesis.yml config file")
	nodeCmd.Flags().StringVar(&tuningPath, "tuning", "config/node.ini", "Path to the node.ini tuning file")
	rootCmd.AddCommand(nodeCmd)
}

func runNode() error {
	cfg, err := config.LoadNodeConfig(configPath)
	if err != nil {
		return logx.Errorf("Failed to load config %s: %v", configPath, err)
	}
	tuning, err := config.LoadTuningConfig(tuningPath)
	if err != nil {
		return logx.Errorf("Failed to load tuning config %s: %v", tuningPath, err)
	}

	ledger, err := chain.NewChain(cfg, tuning, wallet.Ed25519Verifier{})
	if err != nil {
		return logx.Errorf("Failed to initialize chain: %v", err)
	}

	server := jsonrpc.NewServer(cfg.RPCAddr, ledger)
	server.SetCORSConfig(jsonrpc.CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})
	server.Start()
	monitoring.MarkNodeUp()
	logx.Info("NODE", "Star notary node up, chain ", cfg.ChainID)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logx.Info("NODE", "Shutting down on signal ", sig)
	return nil
}
