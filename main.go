package main

import (
	"fmt"
	"os"

	"github.com/atelier-dev/atelier/cmd"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "atelier",
	Short: "Atelier - persistent workspace state for your development projects.",
	Long: `Atelier manages the persistent state of your development sessions:
typed application settings, vaults of workspaces, and the projects open
in each workspace.

Features:
  - Typed key/value settings stored as plain JSON
  - Vaults that group related workspaces, with a guaranteed default
  - Workspaces that remember open projects across sessions

Usage:
  atelier <command> [flags]

Available Commands:
  config     Manage application settings
  vault      Manage workspace vaults
  workspace  Manage workspaces and open projects
  status     Show the current session state

Run 'atelier help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to Atelier! Run 'atelier --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.ConfigCmd)
	rootCmd.AddCommand(cmd.VaultCmd)
	rootCmd.AddCommand(cmd.WorkspaceCmd)
	rootCmd.AddCommand(cmd.StatusCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
