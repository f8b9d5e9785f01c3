package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "parkctl",
	Short: "Parkctl - parking structure allocation service",
	Long: `Parkctl models a square parking structure as a grid of labeled bays and
allocates each arriving vehicle the free bay closest to a pedestrian exit.

It provides:
  - An HTTP service for park/unpark/capacity/diagram operations
  - Snake-ordered text diagrams of the structure (lanes alternate direction)
  - Reserved bays for disabled vehicles
  - Prometheus metrics for occupancy and allocation outcomes`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
