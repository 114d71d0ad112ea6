package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mezonai/starnotary/wallet"
)

var signKeyPath string

var signCmd = &cobra.Command{
	Use:   "sign <message>",
	Short: "Sign an ownership challenge message with a wallet key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := wallet.LoadWallet(signKeyPath)
		if err != nil {
			return err
		}
		fmt.Println("Address:  ", w.Address)
		fmt.Println("Signature:", w.Sign([]byte(args[0])))
		return nil
	},
}

func init() {
	signCmd.Flags().StringVar(&signKeyPath, "key", "wallet.key", "Path to the hex-encoded private key")
	rootCmd.AddCommand(signCmd)
}
