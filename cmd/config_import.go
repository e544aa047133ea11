package cmd

import (
	"os"

	"github.com/atelier-dev/atelier/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	ConfigCmd.AddCommand(configImportCmd)
}

var configImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the settings document from a JSON file",
	Long: `Reads a JSON document from the given file and replaces the current
settings with it. The existing document is untouched if the file does
not parse.

Comments in the file are tolerated, matching the on-disk format.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		ConfigLogger.Infof("Starting config import command")
		spinner, cleanup := startSpinner("Importing settings...", configVerbose, configDebug)
		defer cleanup()

		data, err := os.ReadFile(path)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to read %s: %v", path, err)
		}

		st, err := openSettingsStore(ConfigLogger)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to open settings: %v", err)
		}

		if err := st.LoadFromJSON(string(data)); err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to parse %s: %v", path, err)
		}
		if err := st.Save(); err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to save settings: %v", err)
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Imported " + ui.Path.Sprint(path) +
			" " + ui.Muted.Sprintf("%d keys", st.Len())
		return nil
	},
}
