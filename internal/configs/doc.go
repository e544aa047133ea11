// Package configs resolves the filesystem locations of atelier's
// persistent state.
//
// All state lives under a single per-user config directory:
//
//   - <config-dir>/config.json        application settings document
//   - <config-dir>/vaults_config.json vault registry document
//
// The base directory defaults to the platform config directory
// (os.UserConfigDir) plus an "atelier" subfolder, and can be overridden
// with the ATELIER_CONFIG_DIR environment variable. The directory is
// created lazily on first save, not at resolution time.
package configs
