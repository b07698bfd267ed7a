package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/go-hypr/hyprwire"
	"github.com/go-hypr/hyprwire/helpers"
	"github.com/spf13/cobra"
)

var (
	socketPath string
	jsonOutput bool

	keyColor   = color.New(color.FgCyan, color.Bold)
	valueColor = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed, color.Bold)
)

var rootCmd = &cobra.Command{
	Use:   "hyprwirectl",
	Short: "Talk to the Hyprland IPC sockets",
	Long: `hyprwirectl queries and controls a running Hyprland instance over its
IPC sockets: list workspaces and clients, switch workspaces through the
dispatch grammar and stream decoded events.

The sockets are resolved from HYPRLAND_INSTANCE_SIGNATURE; use --socket to
point at another instance.`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", "",
		"socket path override (default: resolved from HYPRLAND_INSTANCE_SIGNATURE)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"machine-readable JSON output")
}

func requestClient() (*hyprwire.RequestClient, error) {
	socket := socketPath
	if socket == "" {
		var err error
		socket, err = helpers.GetSocket(helpers.RequestSocket)
		if err != nil {
			return nil, err
		}
	}
	return hyprwire.NewClient(socket), nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
