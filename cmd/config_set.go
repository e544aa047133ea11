package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atelier-dev/atelier/internal/store"
	"github.com/atelier-dev/atelier/internal/ui"
	"github.com/spf13/cobra"
)

var configSetType string

func init() {
	configSetCmd.Flags().StringVarP(&configSetType, "type", "t", "string", "value type: string, bool, int, float, or list")
	ConfigCmd.AddCommand(configSetCmd)
}

// resetConfigSetState resets the config set command's global state for testing.
func resetConfigSetState() {
	configSetType = "string"
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a typed settings value",
	Long: `Stores a value under the given key and saves the document.

The value is parsed according to --type. Lists are comma-separated.

Examples:
  atelier config set theme dark
  atelier config set autosave true --type bool
  atelier config set recent.limit 20 --type int
  atelier config set ui.scale 1.25 --type float
  atelier config set pinned.paths /a,/b --type list`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, raw := args[0], args[1]
		ConfigLogger.Infof("Starting config set command")
		ConfigLogger.Debugf("Setting %s=%s as %s", key, raw, configSetType)

		st, err := openSettingsStore(ConfigLogger)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to open settings: %v", err)
		}

		if err := setTypedValue(st, key, raw, configSetType); err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to parse value: %v", err)
		}

		if err := st.Save(); err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to save settings: %v", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Set " + ui.Highlight.Sprint(key))
		return nil
	},
}

// setTypedValue parses raw according to typeName and stores it under key.
func setTypedValue(st *store.Store, key, raw, typeName string) error {
	switch typeName {
	case "string":
		store.Set(st, key, raw)
	case "bool":
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%q is not a bool: %w", raw, err)
		}
		store.Set(st, key, b)
	case "int":
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%q is not an int: %w", raw, err)
		}
		store.Set(st, key, i)
	case "float":
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%q is not a float: %w", raw, err)
		}
		store.Set(st, key, f)
	case "list":
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		store.Set(st, key, parts)
	default:
		return fmt.Errorf("unknown type %q (expected string, bool, int, float, or list)", typeName)
	}
	return nil
}
