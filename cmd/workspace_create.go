package cmd

import (
	"errors"
	"fmt"

	atelierrors "github.com/atelier-dev/atelier/internal/errors"
	"github.com/atelier-dev/atelier/internal/ui"
	"github.com/spf13/cobra"
)

var workspaceCreatePath string

func init() {
	workspaceCreateCmd.Flags().StringVarP(&workspaceCreatePath, "path", "p", "", "root directory associated with the workspace")
	WorkspaceCmd.AddCommand(workspaceCreateCmd)
}

// resetWorkspaceCreateState resets the workspace create command's global state for testing.
func resetWorkspaceCreateState() {
	workspaceCreatePath = ""
}

var workspaceCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a workspace in the current vault",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		WorkspaceLogger.Infof("Starting workspace create command")
		WorkspaceLogger.Debugf("Creating workspace %s with path %q", name, workspaceCreatePath)

		c, err := bootCoordinator(WorkspaceLogger)
		if err != nil {
			return WorkspaceLogger.ErrorfAndReturn("Failed to initialize state: %v", err)
		}

		if _, err := c.CreateWorkspace(name, workspaceCreatePath); err != nil {
			if errors.Is(err, atelierrors.ErrWorkspaceExists) {
				WorkspaceLogger.Infof("Workspace %s already exists", name)
				fmt.Println(ui.Warning.Sprint("!") + " Workspace " + ui.Highlight.Sprint(name) + " already exists in this vault")
				return nil
			}
			return WorkspaceLogger.ErrorfAndReturn("Failed to create workspace: %v", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Created workspace " + ui.Highlight.Sprint(name))
		fmt.Println()
		fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprintf("atelier workspace switch %s", name) + " to select it")
		return nil
	},
}
