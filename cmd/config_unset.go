package cmd

import (
	"fmt"

	"github.com/atelier-dev/atelier/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	ConfigCmd.AddCommand(configUnsetCmd)
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a settings key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		ConfigLogger.Infof("Starting config unset command")

		st, err := openSettingsStore(ConfigLogger)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to open settings: %v", err)
		}

		if !st.Has(key) {
			ConfigLogger.Infof("Key %s is not set, nothing to do", key)
			fmt.Println(ui.Warning.Sprint("!") + " " + ui.Highlight.Sprint(key) + " is not set")
			return nil
		}

		st.Remove(key)
		if err := st.Save(); err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to save settings: %v", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Removed " + ui.Highlight.Sprint(key))
		return nil
	},
}
