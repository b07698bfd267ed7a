package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// set through -ldflags at release time
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hyprwirectl",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hyprwirectl %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
