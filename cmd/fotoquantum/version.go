package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csheth/fotoquantum/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fotoquantum",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fotoquantum version %s\n", config.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
