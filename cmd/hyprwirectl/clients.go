package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List clients (windows)",
	Long:  `Fetches the current client snapshot, similar to 'hyprctl -j clients'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := requestClient()
		if err != nil {
			return err
		}

		clients, err := client.Clients(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(clients)
		}
		for _, c := range clients {
			keyColor.Printf("%-14s", c.Address)
			fmt.Printf("  ws %d (%s)  %s\n", c.Workspace.Id, c.Workspace.Name, c.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clientsCmd)
}
