package cmd

import (
	"fmt"

	atelierrors "github.com/atelier-dev/atelier/internal/errors"
	"github.com/atelier-dev/atelier/internal/ui"
	"github.com/atelier-dev/atelier/internal/vault"
	"github.com/spf13/cobra"
)

func init() {
	WorkspaceCmd.AddCommand(workspaceListCmd)
}

var workspaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workspaces in the current vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		WorkspaceLogger.Infof("Starting workspace list command")

		c, err := bootCoordinator(WorkspaceLogger)
		if err != nil {
			return WorkspaceLogger.ErrorfAndReturn("Failed to initialize state: %v", err)
		}

		current, ok := c.Registry().CurrentVault()
		if !ok {
			return WorkspaceLogger.ErrorfAndReturn("No current vault: %v", atelierrors.ErrNoCurrentVault)
		}
		WorkspaceLogger.Debugf("Current vault %s has %d workspaces", current.Name, len(current.Workspaces))

		fmt.Println(ui.Info.Sprint("Workspaces") + " " + ui.Muted.Sprintf("vault %s", current.Name))
		fmt.Println()

		names := current.WorkspaceNames()
		if len(names) == 0 {
			fmt.Println(ui.Warning.Sprint("!") + " No workspaces in this vault.")
			fmt.Println()
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("atelier workspace create <name>") + " to add one")
			return nil
		}

		for _, name := range names {
			ws, _ := current.Workspace(name)
			marker := " "
			display := name
			if name == current.CurrentWorkspace {
				marker = ui.Success.Sprint("*")
				display = ui.Highlight.Sprint(name)
			}
			fmt.Printf("  %s %s %s\n", marker, display, ui.Muted.Sprintf("%d open projects", len(ws.OpenProjects)))
			if ws.CurrentProject != "" {
				fmt.Printf("      %s %s\n", ui.Info.Sprint("→"), ui.Path.Sprint(vault.ProjectName(ws.CurrentProject)))
			}
		}
		return nil
	},
}
