package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atelier-dev/atelier/internal/configs"
	"github.com/atelier-dev/atelier/internal/coordinator"
	atelierrors "github.com/atelier-dev/atelier/internal/errors"
	logger "github.com/atelier-dev/atelier/internal/logging"
	"github.com/atelier-dev/atelier/internal/ui"
	"github.com/atelier-dev/atelier/internal/vault"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var (
	statusVerbose bool
	statusDebug   bool
	StatusLogger  logger.Logger

	// StatusCmd summarizes the current session state.
	StatusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show the current vault, workspace, and project",
		Long: `Displays a summary of atelier's persistent state: where it lives on
disk, which vault and workspace are current, and which projects are
open.

Examples:
  atelier status`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			StatusLogger = logger.Logger{
				Verbose: statusVerbose,
				Debug:   statusDebug,
			}
			StatusLogger.Debugf("Initializing status command with verbose=%t, debug=%t", statusVerbose, statusDebug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			StatusLogger.Infof("Starting status command")

			settings, err := configs.DefaultSettings()
			if err != nil {
				return StatusLogger.ErrorfAndReturn("Failed to resolve state locations: %v", err)
			}

			c, err := bootCoordinator(StatusLogger)
			if err != nil {
				return StatusLogger.ErrorfAndReturn("Failed to initialize state: %v", err)
			}

			fmt.Println()
			banner := figure.NewColorFigure("atelier", "alligator2", "cyan", true)
			banner.Print()
			fmt.Println()

			fmt.Print(formatStatus(c, settings))
			return nil
		},
	}
)

func init() {
	StatusCmd.PersistentFlags().BoolVarP(&statusVerbose, "verbose", "v", false, "enable verbose output")
	StatusCmd.PersistentFlags().BoolVarP(&statusDebug, "debug", "d", false, "enable debug output")
}

// formatStatus renders the session summary.
func formatStatus(c *coordinator.Coordinator, settings *configs.Settings) string {
	var output strings.Builder

	output.WriteString(ui.Info.Sprint("State") + "\n")
	output.WriteString(fmt.Sprintf("   %s Config directory: %s\n", ui.Info.Sprint("→"), ui.Path.Sprint(settings.ConfigDir)))
	output.WriteString(fmt.Sprintf("   %s Startup phase: %s\n", ui.Info.Sprint("→"), c.Phase()))
	output.WriteString(fmt.Sprintf("   %s Vaults: %d\n", ui.Info.Sprint("→"), c.Registry().Len()))

	output.WriteString("\n" + ui.Info.Sprint("Session") + "\n")
	currentVault, ok := c.Registry().CurrentVault()
	if !ok {
		output.WriteString(fmt.Sprintf("   %s No current vault\n", ui.Warning.Sprint("!")))
		return output.String()
	}
	output.WriteString(fmt.Sprintf("   %s Vault: %s\n", ui.Success.Sprint("✓"), ui.Highlight.Sprint(currentVault.Name)))

	ws, err := c.CurrentWorkspace()
	if err != nil {
		if errors.Is(err, atelierrors.ErrNoCurrentWorkspace) {
			output.WriteString(fmt.Sprintf("   %s No current workspace\n", ui.Warning.Sprint("!")))
			output.WriteString(fmt.Sprintf("   %s Run %s to select one\n", ui.Info.Sprint("→"), ui.Code.Sprint("atelier workspace switch <name>")))
		}
		return output.String()
	}
	output.WriteString(fmt.Sprintf("   %s Workspace: %s\n", ui.Success.Sprint("✓"), ui.Highlight.Sprint(ws.Name)))

	if len(ws.OpenProjects) == 0 {
		output.WriteString(fmt.Sprintf("   %s No open projects\n", ui.Warning.Sprint("!")))
		output.WriteString(fmt.Sprintf("   %s Run %s to open one\n", ui.Info.Sprint("→"), ui.Code.Sprint("atelier workspace open <path>")))
		return output.String()
	}

	output.WriteString(fmt.Sprintf("   %s Open projects (%d):\n", ui.Success.Sprint("✓"), len(ws.OpenProjects)))
	for _, path := range ws.OpenProjects {
		marker := "•"
		if path == ws.CurrentProject {
			marker = ui.Success.Sprint("*")
		}
		output.WriteString(fmt.Sprintf("     %s %s %s\n", marker, vault.ProjectName(path), ui.Muted.Sprint(path)))
	}

	return output.String()
}
