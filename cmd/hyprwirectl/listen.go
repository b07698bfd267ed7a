package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-hypr/hyprwire/event"
	"github.com/go-hypr/hyprwire/helpers"
	"github.com/spf13/cobra"
)

var listenCount int

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Stream decoded events",
	Long: `Connects to the event socket and prints every decoded event, one per
line, until interrupted. Records that fail to decode are reported on stderr
and the stream continues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		socket := socketPath
		if socket == "" {
			var err error
			socket, err = helpers.GetSocket(helpers.EventSocket)
			if err != nil {
				return err
			}
		}

		client, err := event.NewClient(socket)
		if err != nil {
			return err
		}
		defer client.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		seen := 0
		for r := range client.Listen(ctx) {
			if r.Err != nil {
				errorColor.Fprintln(os.Stderr, r.Err)
				continue
			}
			if err := printEvent(r.Event); err != nil {
				return err
			}
			seen++
			if listenCount > 0 && seen >= listenCount {
				return nil
			}
		}
		return nil
	},
}

func printEvent(ev event.Event) error {
	name := strings.TrimPrefix(fmt.Sprintf("%T", ev), "event.")
	if jsonOutput {
		// one JSON object per line, pipe-friendly
		data, err := json.Marshal(struct {
			Event string `json:"event"`
			Data  any    `json:"data"`
		}{Event: name, Data: ev})
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	keyColor.Printf("%-20s", name)
	fmt.Printf("%+v\n", ev)
	return nil
}

func init() {
	listenCmd.Flags().IntVar(&listenCount, "count", 0, "stop after this many events (0: forever)")
	rootCmd.AddCommand(listenCmd)
}
