package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "phasefield",
		Short: "Phasefield - coupled oscillator simulator",
		Long: `phasefield simulates a network of phase-coupled oscillators arranged
in functional groups.

It integrates the coupled dynamics with a fixed-step RK4 scheme, tracks
global and per-group coherence, and reports which group currently
dominates the field. Runs are deterministic under a fixed seed.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON (for machine consumption)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.phasefield/config.yaml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newTopologyCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
