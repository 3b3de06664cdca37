package main

import (
	"github.com/spf13/cobra"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
)

var rootCmd = &cobra.Command{
	Use:   "eventbook",
	Short: "Eventbook is an event-management record store",
	Long: `Eventbook manages locations, event types, events, and the links
between locations and events, persisted either as flat JSON files or as an
embedded SQLite database, and serves them over an HTTP API.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: .eventbook)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: .eventbook-db)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
}
