// Package event streams typed events from the Hyprland event socket.
package event

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/go-hypr/hyprwire"
	"github.com/go-hypr/hyprwire/helpers"
	"github.com/go-hypr/hyprwire/internal/assert"
)

const (
	bufSize = 8192
	sep     = ">>"

	// listenBuffer bounds the channel between the socket reader and the
	// consumer: a slow consumer stalls the reader instead of losing
	// events.
	listenBuffer = 4
)

// EventClient owns one connection to the event socket. The compositor pushes
// one record per line over it for the life of the connection.
type EventClient struct {
	conn net.Conn
}

// Initiate a new event client or panic.
// This should be the preferred method for user scripts, since it will
// automatically find the proper socket to connect and use the
// HYPRLAND_INSTANCE_SIGNATURE for the current user.
// If you need to connect to arbitrary user instances or need a method that
// will not panic on error, use [NewClient] instead.
func MustClient() *EventClient {
	return assert.Must1(NewClient(
		assert.Must1(helpers.GetSocket(helpers.EventSocket))),
	)
}

// Initiate a new event client.
// Receive as parameters a socket that is generally localised in
// '/run/user/$UID/hypr/$HYPRLAND_INSTANCE_SIGNATURE/.socket2.sock'.
// A connection failure is terminal for this client; there is no reconnect
// logic, create a new client to resume.
func NewClient(socket string) (*EventClient, error) {
	conn, err := net.Dial("unix", socket)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", hyprwire.ErrorConnection, err)
	}
	return &EventClient{conn: conn}, nil
}

// Close the underlying connection. A pending [EventClient.Listen] drains and
// its channel closes.
func (c *EventClient) Close() error {
	err := c.conn.Close()
	if err != nil {
		return fmt.Errorf("error while closing socket: %w", err)
	}
	return err
}

// Listen decodes the event socket into a bounded channel of [Result] values,
// one per record: decoded events where the record is valid, errors where it
// is not. Deprecated duplicate tags produce nothing. A read failure is
// reported once and the loop keeps going; the channel closes only when ctx
// is cancelled, the client is closed, or the compositor closes the
// connection.
//
// The connection is drained by a single goroutine; call Listen once per
// client.
func (c *EventClient) Listen(ctx context.Context) <-chan Result {
	ch := make(chan Result, listenBuffer)
	go c.listen(ctx, ch)
	return ch
}

func (c *EventClient) listen(ctx context.Context, ch chan<- Result) {
	defer close(ch)

	// Unblock the pending read when the consumer goes away.
	stop := context.AfterFunc(ctx, func() {
		c.conn.SetReadDeadline(time.Now())
	})
	defer stop()

	reader := bufio.NewReaderSize(c.conn, bufSize)
	for {
		line, err := reader.ReadString('\n')
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				return
			}
			if !emit(ctx, ch, Result{Err: fmt.Errorf("error while reading from socket: %w", err)}) {
				return
			}
			continue
		}

		line = strings.TrimSuffix(line, "\n")
		tag, payload, found := strings.Cut(line, sep)
		if !found {
			if !emit(ctx, ch, Result{Err: fmt.Errorf("%w: missing %q in %q", ErrorInvalidFormat, sep, line)}) {
				return
			}
			continue
		}

		ev, err := decodeEvent(tag, newFields(payload))
		switch {
		case err != nil:
			if !emit(ctx, ch, Result{Err: err}) {
				return
			}
		case ev != nil:
			if !emit(ctx, ch, Result{Event: ev}) {
				return
			}
		}
	}
}

func emit(ctx context.Context, ch chan<- Result, r Result) bool {
	select {
	case ch <- r:
		return true
	case <-ctx.Done():
		return false
	}
}
