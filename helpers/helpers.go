// Package helpers resolves the per-instance Hyprland socket paths.
package helpers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Socket is the file name of one of the two Hyprland IPC sockets.
type Socket string

const (
	// RequestSocket is the command (request/response) socket.
	RequestSocket Socket = ".socket.sock"
	// EventSocket is the event notification socket.
	EventSocket Socket = ".socket2.sock"
)

var ErrorMissingSignature = errors.New("HYPRLAND_INSTANCE_SIGNATURE is empty")

// GetSocket returns the path of a Hyprland socket for the running instance,
// resolved from the HYPRLAND_INSTANCE_SIGNATURE environment variable and the
// current user id. Returns an error wrapping [ErrorMissingSignature] when the
// signature is not set, before any connection is attempted.
func GetSocket(socket Socket) (string, error) {
	his := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")
	if his == "" {
		return "", fmt.Errorf("%w, are you running Hyprland?", ErrorMissingSignature)
	}

	// hyprctl resolves the same directory:
	// https://github.com/hyprwm/Hyprland/blob/83a5395eaa99fecef777827fff1de486c06b6180/hyprctl/main.cpp#L53-L62
	runtimeDir := filepath.Join("/run/user", strconv.Itoa(os.Getuid()))

	return filepath.Join(runtimeDir, "hypr", his, string(socket)), nil
}
