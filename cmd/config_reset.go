package cmd

import (
	"fmt"

	"github.com/atelier-dev/atelier/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	ConfigCmd.AddCommand(configResetCmd)
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all application settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config reset command")

		st, err := openSettingsStore(ConfigLogger)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to open settings: %v", err)
		}

		removed := st.Len()
		st.Reset()
		if err := st.Save(); err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to save settings: %v", err)
		}

		ConfigLogger.Infof("Cleared %d keys", removed)
		fmt.Println(ui.Success.Sprint("✓") + " Settings cleared " + ui.Muted.Sprintf("%d keys removed", removed))
		return nil
	},
}
