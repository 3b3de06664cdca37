package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the configuration directory and a default config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir := resolveConfigDir()
		if err := ensureDefaultConfigFile(configDir); err != nil {
			return err
		}
		fmt.Printf("Initialized configuration in %s\n", configDir)
		return nil
	},
}
