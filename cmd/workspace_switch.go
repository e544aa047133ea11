package cmd

import (
	"errors"
	"fmt"

	atelierrors "github.com/atelier-dev/atelier/internal/errors"
	"github.com/atelier-dev/atelier/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	WorkspaceCmd.AddCommand(workspaceSwitchCmd)
}

var workspaceSwitchCmd = &cobra.Command{
	Use:   "switch <name>",
	Short: "Switch to a workspace by name",
	Long: `Makes the named workspace current. The owning vault becomes current
as well, and the selection is remembered across sessions.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		WorkspaceLogger.Infof("Starting workspace switch command")

		c, err := bootCoordinator(WorkspaceLogger)
		if err != nil {
			return WorkspaceLogger.ErrorfAndReturn("Failed to initialize state: %v", err)
		}

		if err := c.SwitchWorkspace(name); err != nil {
			if errors.Is(err, atelierrors.ErrWorkspaceNotFound) {
				WorkspaceLogger.Infof("Workspace %s does not exist", name)
				fmt.Println(ui.Error.Sprint("✗") + " Workspace " + ui.Highlight.Sprint(name) + " does not exist in any vault")
				fmt.Println()
				fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("atelier workspace list") + " to see available workspaces")
				return nil
			}
			return WorkspaceLogger.ErrorfAndReturn("Failed to switch workspace: %v", err)
		}

		if err := c.Cleanup(); err != nil {
			return WorkspaceLogger.ErrorfAndReturn("Failed to persist session state: %v", err)
		}

		owner := c.Registry().CurrentVaultName()
		fmt.Println(ui.Success.Sprint("✓") + " Switched to workspace " + ui.Highlight.Sprint(name) +
			" " + ui.Muted.Sprintf("vault %s", owner))
		return nil
	},
}
