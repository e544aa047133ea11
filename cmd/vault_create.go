package cmd

import (
	"errors"
	"fmt"

	atelierrors "github.com/atelier-dev/atelier/internal/errors"
	"github.com/atelier-dev/atelier/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	VaultCmd.AddCommand(vaultCreateCmd)
}

var vaultCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new vault",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		VaultLogger.Infof("Starting vault create command")

		c, err := bootCoordinator(VaultLogger)
		if err != nil {
			return VaultLogger.ErrorfAndReturn("Failed to initialize state: %v", err)
		}

		if _, err := c.Registry().CreateVault(name); err != nil {
			if errors.Is(err, atelierrors.ErrVaultExists) {
				VaultLogger.Infof("Vault %s already exists", name)
				fmt.Println(ui.Warning.Sprint("!") + " Vault " + ui.Highlight.Sprint(name) + " already exists")
				return nil
			}
			return VaultLogger.ErrorfAndReturn("Failed to create vault: %v", err)
		}
		if err := c.Registry().Save(); err != nil {
			return VaultLogger.ErrorfAndReturn("Failed to save vault registry: %v", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Created vault " + ui.Highlight.Sprint(name))
		fmt.Println()
		fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprintf("atelier vault switch %s", name) + " to make it current")
		return nil
	},
}
