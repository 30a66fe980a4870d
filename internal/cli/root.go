// Package cli implements the crewhubctl control commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crewhubctl",
	Short: "Control the running CrewHub desktop shell",
	Long: `Crewhubctl talks to the CrewHub desktop shell over its loopback
control API: open windows, set the tray badge, send notifications,
inspect settings, and shut the shell down.`,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(badgeCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(quitCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(zenCmd)
}
