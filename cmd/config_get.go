package cmd

import (
	"fmt"

	"github.com/atelier-dev/atelier/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	ConfigCmd.AddCommand(configGetCmd)
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a single settings value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		ConfigLogger.Infof("Starting config get command")

		st, err := openSettingsStore(ConfigLogger)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to open settings: %v", err)
		}

		v, ok := st.Lookup(key)
		if !ok {
			ConfigLogger.Infof("Key %s is not set", key)
			fmt.Println(ui.Warning.Sprint("!") + " " + ui.Highlight.Sprint(key) + " is not set")
			return nil
		}

		fmt.Println(formatValue(v))
		return nil
	},
}
