package cmd

import (
	"errors"
	"fmt"

	atelierrors "github.com/atelier-dev/atelier/internal/errors"
	"github.com/atelier-dev/atelier/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	VaultCmd.AddCommand(vaultSwitchCmd)
}

var vaultSwitchCmd = &cobra.Command{
	Use:   "switch <name>",
	Short: "Make a vault current",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		VaultLogger.Infof("Starting vault switch command")

		c, err := bootCoordinator(VaultLogger)
		if err != nil {
			return VaultLogger.ErrorfAndReturn("Failed to initialize state: %v", err)
		}

		if err := c.Registry().SetCurrentVault(name); err != nil {
			if errors.Is(err, atelierrors.ErrVaultNotFound) {
				VaultLogger.Infof("Vault %s does not exist", name)
				fmt.Println(ui.Error.Sprint("✗") + " Vault " + ui.Highlight.Sprint(name) + " does not exist")
				fmt.Println()
				fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("atelier vault list") + " to see available vaults")
				return nil
			}
			return VaultLogger.ErrorfAndReturn("Failed to switch vault: %v", err)
		}
		if err := c.Registry().Save(); err != nil {
			return VaultLogger.ErrorfAndReturn("Failed to save vault registry: %v", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Switched to vault " + ui.Highlight.Sprint(name))
		return nil
	},
}
