package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List workspaces",
	Long:  `Fetches the current workspace snapshot, similar to 'hyprctl -j workspaces'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := requestClient()
		if err != nil {
			return err
		}

		workspaces, err := client.Workspaces(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(workspaces)
		}
		for _, w := range workspaces {
			keyColor.Printf("%4d", w.Id)
			fmt.Printf("  %-12s on %-8s %2d windows", w.Name, w.Monitor, w.Windows)
			if w.HasFullScreen {
				valueColor.Print("  [fullscreen]")
			}
			if w.LastWindowTitle != "" {
				fmt.Printf("  %s", w.LastWindowTitle)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workspacesCmd)
}
