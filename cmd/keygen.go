package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mezonai/starnotary/wallet"
)

var keyOutPath string

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a wallet keypair and print its address",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := wallet.NewWallet()
		if err != nil {
			return err
		}
		if err := w.SaveKey(keyOutPath); err != nil {
			return fmt.Errorf("failed to write key file: %w", err)
		}
		fmt.Println("Wallet Address:", w.Address)
		fmt.Println("Key written to:", keyOutPath)
		return nil
	},
}

func init() {
	keygenCmd.Flags().StringVar(&keyOutPath, "out", "wallet.key", "Path to write the hex-encoded private key")
	rootCmd.AddCommand(keygenCmd)
}
