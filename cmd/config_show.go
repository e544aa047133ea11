package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atelier-dev/atelier/internal/store"
	"github.com/atelier-dev/atelier/internal/ui"
	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
	ConfigCmd.AddCommand(configShowCmd)
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display all application settings",
	Long: `Displays every key in the application settings document.

Examples:
  # Show settings in human-readable form
  atelier config show

  # Output the raw document as JSON
  atelier config show --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config show command")

		st, err := openSettingsStore(ConfigLogger)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to open settings: %v", err)
		}
		ConfigLogger.Debugf("Settings loaded from %s with %d keys", st.Path(), st.Len())

		if configShowJSON {
			out, err := st.ExportJSON(true)
			if err != nil {
				return ConfigLogger.ErrorfAndReturn("Failed to export settings: %v", err)
			}
			fmt.Println(out)
			return nil
		}

		if st.Len() == 0 {
			fmt.Println(ui.Warning.Sprint("!") + " No settings stored.")
			fmt.Println()
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("atelier config set <key> <value>") + " to add one")
			return nil
		}

		fmt.Println(ui.Info.Sprint("Application Settings") + " " + ui.Muted.Sprint(st.Path()))
		fmt.Println()
		for _, key := range st.Keys() {
			v, _ := st.Lookup(key)
			fmt.Printf("  %-24s %s %s\n", key, formatValue(v), ui.Muted.Sprint(v.Kind()))
		}
		return nil
	},
}

// formatValue renders a settings value for terminal display.
func formatValue(v store.Value) string {
	switch val := v.Interface().(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case []string:
		return strings.Join(val, ", ")
	default:
		return fmt.Sprint(val)
	}
}
