package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/csheth/fotoquantum/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "fotoquantum",
	Short: "Explore electron energy levels, photons and fluorescence in the terminal",
	Long: `FotoQuantum is an interactive lesson with three modes: Quantum Leap fires
photons at an orbiting electron, Quiz asks questions about what you saw, and
Star lights a star with ultraviolet light.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	config.Register(rootCmd.Flags())
	rootCmd.Flags().Bool("no-alt-screen", false, "disable the alternate screen buffer")
	rootCmd.Flags().Bool("ascii", false, "draw with plain ASCII and no colour")
}
