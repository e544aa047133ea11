package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	configExportPretty bool
	configExportTOML   bool
)

func init() {
	configExportCmd.Flags().BoolVar(&configExportPretty, "pretty", false, "indent JSON output")
	configExportCmd.Flags().BoolVar(&configExportTOML, "toml", false, "export as TOML instead of JSON")
	ConfigCmd.AddCommand(configExportCmd)
}

// resetConfigExportState resets the config export command's global state for testing.
func resetConfigExportState() {
	configExportPretty = false
	configExportTOML = false
}

var configExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the settings document",
	Long: `Writes the settings document to stdout.

Examples:
  # Compact JSON
  atelier config export

  # Indented JSON
  atelier config export --pretty

  # TOML
  atelier config export --toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config export command")
		ConfigLogger.Debugf("Flags: pretty=%t, toml=%t", configExportPretty, configExportTOML)

		st, err := openSettingsStore(ConfigLogger)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to open settings: %v", err)
		}

		var out string
		if configExportTOML {
			out, err = st.ExportTOML()
		} else {
			out, err = st.ExportJSON(configExportPretty)
		}
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to export settings: %v", err)
		}

		fmt.Println(out)
		return nil
	},
}
