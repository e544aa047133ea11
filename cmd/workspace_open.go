package cmd

import (
	"errors"
	"path/filepath"

	atelierrors "github.com/atelier-dev/atelier/internal/errors"
	"github.com/atelier-dev/atelier/internal/ui"
	"github.com/atelier-dev/atelier/internal/vault"
	"github.com/spf13/cobra"
)

func init() {
	WorkspaceCmd.AddCommand(workspaceOpenCmd)
}

var workspaceOpenCmd = &cobra.Command{
	Use:   "open <path>",
	Short: "Open a project directory in the current workspace",
	Long: `Adds the given directory to the current workspace's open projects
and makes it the current project. Opening an already-open project just
selects it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		WorkspaceLogger.Infof("Starting workspace open command")
		spinner, cleanup := startSpinner("Opening project...", workspaceVerbose, workspaceDebug)
		defer cleanup()

		path, err := filepath.Abs(args[0])
		if err != nil {
			return WorkspaceLogger.ErrorfAndReturn("Failed to resolve path %s: %v", args[0], err)
		}
		WorkspaceLogger.Debugf("Resolved project path to %s", path)

		c, err := bootCoordinator(WorkspaceLogger)
		if err != nil {
			return WorkspaceLogger.ErrorfAndReturn("Failed to initialize state: %v", err)
		}

		if err := c.OpenProject(path); err != nil {
			switch {
			case errors.Is(err, atelierrors.ErrProjectNotFound):
				spinner.FinalMSG = ui.Error.Sprint("✗") + " " + ui.Path.Sprint(path) + " does not exist"
			case errors.Is(err, atelierrors.ErrProjectNotDirectory):
				spinner.FinalMSG = ui.Error.Sprint("✗") + " " + ui.Path.Sprint(path) + " is not a directory"
			case errors.Is(err, atelierrors.ErrNoCurrentVault), errors.Is(err, atelierrors.ErrNoCurrentWorkspace):
				spinner.FinalMSG = ui.Error.Sprint("✗") + " No current workspace\n" +
					ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("atelier workspace switch <name>") + " first"
			default:
				return WorkspaceLogger.ErrorfAndReturn("Failed to open project: %v", err)
			}
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Opened project " + ui.Highlight.Sprint(vault.ProjectName(path)) +
			" " + ui.Muted.Sprint(path)
		return nil
	},
}
