// Package hyprwire is a client for the Hyprland IPC protocol: the
// request/response command socket and the workspace dispatch grammar. Event
// streaming lives in the event subpackage.
package hyprwire

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/go-hypr/hyprwire/helpers"
)

// RequestClient issues commands on the Hyprland command socket. The protocol
// closes the connection after each response, so every call dials its own
// short-lived connection; a client carries no session state and its methods
// are safe to call concurrently.
type RequestClient struct {
	socket string
}

func must1[T any](v T, err error) T {
	must(err)
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Initiate a new client or panic.
// This should be the preferred method for user scripts, since it will
// automatically find the proper socket to connect and use the
// HYPRLAND_INSTANCE_SIGNATURE for the current user.
// If you need to connect to arbitrary user instances or need a method that
// will not panic on error, use [NewClient] instead.
func MustClient() *RequestClient {
	return NewClient(must1(helpers.GetSocket(helpers.RequestSocket)))
}

// Initiate a new client.
// Receive as parameters a requestSocket that is generally localised in
// '/run/user/$UID/hypr/$HYPRLAND_INSTANCE_SIGNATURE/.socket.sock'.
func NewClient(socket string) *RequestClient {
	return &RequestClient{socket: socket}
}

// Exec sends one command verbatim and returns the raw response, read until
// the compositor closes the connection. Most callers want the typed methods
// instead; Exec is the escape hatch for commands this package does not
// model, e.g. Exec(ctx, "j/monitors").
//
// The context only bounds this one call: cancellation unblocks the pending
// dial, write or read. There is no internal timeout or retry.
func (c *RequestClient) Exec(ctx context.Context, command string) ([]byte, error) {
	if command == "" {
		return nil, errors.New("empty command")
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", c.socket)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrorConnection, err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		conn.SetDeadline(time.Now())
	})
	defer stop()

	if _, err := conn.Write([]byte(command)); err != nil {
		return nil, fmt.Errorf("error while writing to socket: %w", errors.Join(err, ctx.Err()))
	}

	// The peer signals the end of the response by closing the connection.
	response, err := io.ReadAll(conn)
	if err != nil {
		return nil, fmt.Errorf("error while reading from socket: %w", errors.Join(err, ctx.Err()))
	}
	return response, nil
}

func unmarshalResponse(response []byte, v any) error {
	if len(response) == 0 {
		return fmt.Errorf("%w: empty response", ErrorDecode)
	}
	if err := json.Unmarshal(response, v); err != nil {
		return fmt.Errorf("%w: %w", ErrorDecode, err)
	}
	return nil
}

// Workspaces command, similar to 'hyprctl -j workspaces'.
// Returns a snapshot of all [Workspace] records.
func (c *RequestClient) Workspaces(ctx context.Context) (w []Workspace, err error) {
	response, err := c.Exec(ctx, "j/workspaces")
	if err != nil {
		return w, err
	}
	return w, unmarshalResponse(response, &w)
}

// Clients command, similar to 'hyprctl -j clients'.
// Returns a snapshot of all [Client] records.
func (c *RequestClient) Clients(ctx context.Context) (cl []Client, err error) {
	response, err := c.Exec(ctx, "j/clients")
	if err != nil {
		return cl, err
	}
	return cl, unmarshalResponse(response, &cl)
}

// Dispatch command, similar to 'hyprctl dispatch'.
// The response body carries no structured acknowledgement and is discarded;
// success means the request was written and the response read without an I/O
// error.
func (c *RequestClient) Dispatch(ctx context.Context, d Dispatcher) error {
	_, err := c.Exec(ctx, "j/dispatch "+d.String())
	return err
}
