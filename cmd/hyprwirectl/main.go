// hyprwirectl is a command line client for the Hyprland IPC sockets: query
// workspaces and clients, dispatch workspace switches and stream events.
package main

func main() {
	Execute()
}
