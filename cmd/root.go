package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mezonai/starnotary/logx"
)

var rootCmd = &cobra.Command{
	Use:   "starnotary",
	Short: "Star notary ledger node CLI",
	Long:  "Command line interface for running and managing a star notary ledger node.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed:", err)
		os.Exit(1)
	}
}
