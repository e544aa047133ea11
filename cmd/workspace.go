package cmd

import (
	logger "github.com/atelier-dev/atelier/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	workspaceVerbose bool
	workspaceDebug   bool
	WorkspaceLogger  logger.Logger

	// WorkspaceCmd is the top-level workspace command.
	WorkspaceCmd = &cobra.Command{
		Use:   "workspace",
		Short: "Manage workspaces and open projects",
		Long: `Provides commands for creating and switching workspaces and for
opening project directories inside the current workspace.

Workspaces live inside vaults; switching a workspace also makes its
owning vault current and records the selection for session restore.

Examples:
  # Create a workspace in the current vault
  atelier workspace create main

  # Switch to a workspace by name
  atelier workspace switch main

  # Open a project directory in the current workspace
  atelier workspace open ~/src/myproject`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			WorkspaceLogger = logger.Logger{
				Verbose: workspaceVerbose,
				Debug:   workspaceDebug,
			}
			WorkspaceLogger.Debugf("Initializing workspace command with verbose=%t, debug=%t", workspaceVerbose, workspaceDebug)
		},
	}
)

func init() {
	WorkspaceCmd.PersistentFlags().BoolVarP(&workspaceVerbose, "verbose", "v", false, "enable verbose output")
	WorkspaceCmd.PersistentFlags().BoolVarP(&workspaceDebug, "debug", "d", false, "enable debug output")
}

// GetWorkspaceCmd returns the WorkspaceCmd for testing.
func GetWorkspaceCmd() *cobra.Command {
	return WorkspaceCmd
}

// ResetWorkspaceState resets all workspace command global variables to their default values for testing.
func ResetWorkspaceState() {
	workspaceVerbose = false
	workspaceDebug = false
	resetWorkspaceCreateState()
	resetWorkspaceCobraFlagState()
}

// resetWorkspaceCobraFlagState resets the flag state for all workspace commands to prevent test pollution.
func resetWorkspaceCobraFlagState() {
	if WorkspaceCmd != nil && WorkspaceCmd.Flags() != nil {
		WorkspaceCmd.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}
