package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Settings holds the filesystem locations of atelier's persistent state.
type Settings struct {
	// ConfigDir is the directory holding all atelier state files
	// (default: <os-config-dir>/atelier).
	ConfigDir string

	// SettingsPath is the application settings document.
	SettingsPath string

	// VaultsPath is the vault registry document.
	VaultsPath string
}

// DefaultSettings resolves atelier's state locations.
// The base directory can be overridden with the ATELIER_CONFIG_DIR
// environment variable, which tests rely on.
func DefaultSettings() (*Settings, error) {
	configDir := os.Getenv("ATELIER_CONFIG_DIR")
	if configDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user config directory: %w", err)
		}
		configDir = filepath.Join(base, "atelier")
	}

	return &Settings{
		ConfigDir:    configDir,
		SettingsPath: filepath.Join(configDir, "config.json"),
		VaultsPath:   filepath.Join(configDir, "vaults_config.json"),
	}, nil
}

// EnsureConfigDir creates the config directory if it does not exist.
func (s *Settings) EnsureConfigDir() error {
	if err := os.MkdirAll(s.ConfigDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", s.ConfigDir, err)
	}
	return nil
}
