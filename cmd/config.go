package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumenray/lumen/internal/config"
)

var configInitOutput string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage render configuration files",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SaveConfig(config.DefaultConfig(), configInitOutput); err != nil {
			return err
		}
		fmt.Printf("Wrote default config to %s\n", configInitOutput)
		return nil
	},
}

func init() {
	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "lumen.yaml", "Where to write the config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
