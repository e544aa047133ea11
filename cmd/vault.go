package cmd

import (
	logger "github.com/atelier-dev/atelier/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	vaultVerbose bool
	vaultDebug   bool
	VaultLogger  logger.Logger

	// VaultCmd is the top-level vault command.
	VaultCmd = &cobra.Command{
		Use:   "vault",
		Short: "Manage workspace vaults",
		Long: `Provides commands for managing vaults, the top-level containers
that group workspaces.

A default vault always exists; every workspace lives in exactly one
vault, and one vault is current at any time.

Examples:
  # Create a vault for work projects
  atelier vault create work

  # List vaults and see which is current
  atelier vault list

  # Make a vault current
  atelier vault switch work`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			VaultLogger = logger.Logger{
				Verbose: vaultVerbose,
				Debug:   vaultDebug,
			}
			VaultLogger.Debugf("Initializing vault command with verbose=%t, debug=%t", vaultVerbose, vaultDebug)
		},
	}
)

func init() {
	VaultCmd.PersistentFlags().BoolVarP(&vaultVerbose, "verbose", "v", false, "enable verbose output")
	VaultCmd.PersistentFlags().BoolVarP(&vaultDebug, "debug", "d", false, "enable debug output")
}

// GetVaultCmd returns the VaultCmd for testing.
func GetVaultCmd() *cobra.Command {
	return VaultCmd
}

// ResetVaultState resets all vault command global variables to their default values for testing.
func ResetVaultState() {
	vaultVerbose = false
	vaultDebug = false
	resetVaultCobraFlagState()
}

// resetVaultCobraFlagState resets the flag state for all vault commands to prevent test pollution.
func resetVaultCobraFlagState() {
	if VaultCmd != nil && VaultCmd.Flags() != nil {
		VaultCmd.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}
