package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "lumen",
	Short:   "Monte Carlo path tracer",
	Long:    `Lumen is an offline Monte Carlo path tracer. It renders scenes of spheres and moving spheres with diffuse, metal, and glass materials into PNG, JPEG, GIF, BMP, or TIFF images.`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
