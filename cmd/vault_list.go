package cmd

import (
	"fmt"

	"github.com/atelier-dev/atelier/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	VaultCmd.AddCommand(vaultListCmd)
}

var vaultListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all vaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		VaultLogger.Infof("Starting vault list command")

		c, err := bootCoordinator(VaultLogger)
		if err != nil {
			return VaultLogger.ErrorfAndReturn("Failed to initialize state: %v", err)
		}

		registry := c.Registry()
		current := registry.CurrentVaultName()
		VaultLogger.Debugf("Registry has %d vaults, current=%s", registry.Len(), current)

		fmt.Println(ui.Info.Sprint("Vaults"))
		fmt.Println()
		for _, name := range registry.VaultNames() {
			v, _ := registry.Vault(name)
			marker := " "
			display := name
			if name == current {
				marker = ui.Success.Sprint("*")
				display = ui.Highlight.Sprint(name)
			}
			fmt.Printf("  %s %s %s\n", marker, display, ui.Muted.Sprintf("%d workspaces", len(v.Workspaces)))
		}
		return nil
	},
}
