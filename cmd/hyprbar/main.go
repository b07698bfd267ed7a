// hyprbar is a terminal status bar for Hyprland: one line of workspace
// cells plus the active window title, live-updated from the event socket.
// Number keys switch workspaces.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-hypr/hyprwire"
	"github.com/go-hypr/hyprwire/event"
	"github.com/go-hypr/hyprwire/helpers"
	"golang.org/x/sync/errgroup"
)

// forwarder feeds the event variants the bar reacts to into the running
// program; everything else falls through to the no-op defaults.
type forwarder struct {
	event.DefaultEventHandler
	p *tea.Program
}

func (f *forwarder) WorkspaceChanged(e event.WorkspaceChanged) { f.p.Send(eventMsg{e}) }
func (f *forwarder) CreateWorkspace(e event.CreateWorkspace)   { f.p.Send(eventMsg{e}) }
func (f *forwarder) DestroyWorkspace(e event.DestroyWorkspace) { f.p.Send(eventMsg{e}) }
func (f *forwarder) MoveWorkspace(e event.MoveWorkspace)       { f.p.Send(eventMsg{e}) }
func (f *forwarder) RenameWorkspace(e event.RenameWorkspace)   { f.p.Send(eventMsg{e}) }
func (f *forwarder) OpenWindow(e event.OpenWindow)             { f.p.Send(eventMsg{e}) }
func (f *forwarder) CloseWindow(e event.CloseWindow)           { f.p.Send(eventMsg{e}) }
func (f *forwarder) MoveWindow(e event.MoveWindow)             { f.p.Send(eventMsg{e}) }
func (f *forwarder) WindowTitle(e event.WindowTitle)           { f.p.Send(eventMsg{e}) }
func (f *forwarder) ActiveWindow(e event.ActiveWindow)         { f.p.Send(eventMsg{e}) }
func (f *forwarder) Error(err error)                           { f.p.Send(errMsg{err}) }

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	requestSocket, err := helpers.GetSocket(helpers.RequestSocket)
	if err != nil {
		return err
	}
	eventSocket, err := helpers.GetSocket(helpers.EventSocket)
	if err != nil {
		return err
	}

	events, err := event.NewClient(eventSocket)
	if err != nil {
		return err
	}
	defer events.Close()

	p := tea.NewProgram(newModel(ctx, hyprwire.NewClient(requestSocket), cfg))

	var g errgroup.Group
	g.Go(func() error {
		// quitting the TUI also stops the event pump
		defer cancel()
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		err := events.Subscribe(ctx, &forwarder{p: p})
		// the compositor closed the stream, the bar has nothing left to show
		p.Quit()
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	return g.Wait()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
