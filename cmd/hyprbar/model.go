package main

import (
	"context"
	"sort"
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-hypr/hyprwire"
	"github.com/go-hypr/hyprwire/event"
)

type (
	workspacesMsg []hyprwire.Workspace
	clientsMsg    []hyprwire.Client
	eventMsg      struct{ ev event.Event }
	errMsg        struct{ err error }
)

// model is the bar state: workspace and client snapshots pulled from the
// command socket, plus the focused workspace and active window tracked from
// the event stream.
type model struct {
	ctx    context.Context
	client *hyprwire.RequestClient
	cfg    Config

	spinner spinner.Model
	pending int // initial fetches still in flight

	workspaces []hyprwire.Workspace
	clients    []hyprwire.Client
	focused    hyprwire.WorkspaceId
	active     *hyprwire.WindowAddress
	err        error

	activeStyle   lipgloss.Style
	inactiveStyle lipgloss.Style
	titleStyle    lipgloss.Style
	errStyle      lipgloss.Style
}

func newModel(ctx context.Context, client *hyprwire.RequestClient, cfg Config) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		ctx:     ctx,
		client:  client,
		cfg:     cfg,
		spinner: sp,
		pending: 2,

		activeStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.ActiveColor)),
		inactiveStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.InactiveColor)),
		titleStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.ActiveColor)),
		errStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchWorkspaces(), m.fetchClients())
}

func (m model) fetchWorkspaces() tea.Cmd {
	return func() tea.Msg {
		workspaces, err := m.client.Workspaces(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return workspacesMsg(workspaces)
	}
}

func (m model) fetchClients() tea.Cmd {
	return func() tea.Msg {
		clients, err := m.client.Clients(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return clientsMsg(clients)
	}
}

func (m model) switchTo(id hyprwire.WorkspaceId) tea.Cmd {
	return func() tea.Msg {
		err := m.client.Dispatch(m.ctx, hyprwire.ChangeWorkspace{Spec: hyprwire.Id(id)})
		if err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			n, _ := strconv.Atoi(key)
			return m, m.switchTo(hyprwire.WorkspaceId(n))
		}

	case workspacesMsg:
		sort.Slice(msg, func(i, j int) bool { return msg[i].Id < msg[j].Id })
		m.workspaces = msg
		if m.pending > 0 {
			m.pending--
		}

	case clientsMsg:
		m.clients = msg
		if m.pending > 0 {
			m.pending--
		}

	case eventMsg:
		return m.handleEvent(msg.ev)

	case errMsg:
		m.err = msg.err
		if m.pending > 0 {
			m.pending--
		}

	case spinner.TickMsg:
		if m.pending > 0 {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// handleEvent applies one compositor notification: focus changes update the
// model in place, workspace lifecycle triggers a workspace refetch and
// window lifecycle a client refetch.
func (m model) handleEvent(ev event.Event) (tea.Model, tea.Cmd) {
	switch e := ev.(type) {
	case event.WorkspaceChanged:
		m.focused = e.Id
	case event.CreateWorkspace, event.DestroyWorkspace,
		event.MoveWorkspace, event.RenameWorkspace:
		return m, m.fetchWorkspaces()
	case event.OpenWindow, event.CloseWindow,
		event.MoveWindow, event.WindowTitle:
		return m, m.fetchClients()
	case event.ActiveWindow:
		m.active = e.Address
	}
	return m, nil
}

// activeTitle looks the focused window up in the client snapshot; empty when
// nothing is focused or the snapshot has not caught up yet.
func (m model) activeTitle() string {
	if m.active == nil {
		return ""
	}
	for _, c := range m.clients {
		if c.Address == *m.active {
			return c.Title
		}
	}
	return ""
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

func (m model) View() string {
	if m.pending > 0 {
		return m.spinner.View() + " connecting to Hyprland"
	}

	cells := make([]string, 0, len(m.workspaces))
	for _, w := range m.workspaces {
		style := m.inactiveStyle
		if w.Id == m.focused {
			style = m.activeStyle
		}
		cells = append(cells, style.Render(" "+w.Name+" "))
	}

	line := ""
	for i, c := range cells {
		if i > 0 {
			line += m.cfg.Separator
		}
		line += c
	}

	if m.cfg.ShowTitle {
		if title := m.activeTitle(); title != "" {
			line += "  " + m.titleStyle.Render(truncate(title, m.cfg.TitleWidth))
		}
	}
	if m.err != nil {
		line += "\n" + m.errStyle.Render(m.err.Error())
	}
	return line + "\n"
}
