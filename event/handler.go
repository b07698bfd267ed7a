package event

import "context"

// EventHandler has one method per event variant plus Error for records that
// fail to decode. Embed [DefaultEventHandler] and override only the methods
// you care about.
type EventHandler interface {
	WorkspaceChanged(WorkspaceChanged)
	FocusedMonitor(FocusedMonitor)
	ActiveWindow(ActiveWindow)
	Fullscreen(Fullscreen)
	MonitorRemoved(MonitorRemoved)
	MonitorAdded(MonitorAdded)
	CreateWorkspace(CreateWorkspace)
	DestroyWorkspace(DestroyWorkspace)
	MoveWorkspace(MoveWorkspace)
	RenameWorkspace(RenameWorkspace)
	ActiveSpecial(ActiveSpecial)
	ActiveLayout(ActiveLayout)
	OpenWindow(OpenWindow)
	CloseWindow(CloseWindow)
	MoveWindow(MoveWindow)
	OpenLayer(OpenLayer)
	CloseLayer(CloseLayer)
	SubMap(SubMap)
	ChangeFloatingMode(ChangeFloatingMode)
	Urgent(Urgent)
	Screencast(Screencast)
	WindowTitle(WindowTitle)
	ToggleGroup(ToggleGroup)
	MoveIntoGroup(MoveIntoGroup)
	MoveOutOfGroup(MoveOutOfGroup)
	IgnoreGroupLock(IgnoreGroupLock)
	LockGroups(LockGroups)
	ConfigReloaded(ConfigReloaded)
	Pin(Pin)
	Error(error)
}

// Subscribe drains the event socket, dispatching every decoded event to the
// matching handler method and every decode failure to Error. It returns
// ctx.Err() once ctx is cancelled, or nil if the compositor closed the
// connection.
func (c *EventClient) Subscribe(ctx context.Context, h EventHandler) error {
	for r := range c.Listen(ctx) {
		if r.Err != nil {
			h.Error(r.Err)
			continue
		}
		dispatchEvent(h, r.Event)
	}
	return ctx.Err()
}

func dispatchEvent(h EventHandler, ev Event) {
	switch e := ev.(type) {
	case WorkspaceChanged:
		h.WorkspaceChanged(e)
	case FocusedMonitor:
		h.FocusedMonitor(e)
	case ActiveWindow:
		h.ActiveWindow(e)
	case Fullscreen:
		h.Fullscreen(e)
	case MonitorRemoved:
		h.MonitorRemoved(e)
	case MonitorAdded:
		h.MonitorAdded(e)
	case CreateWorkspace:
		h.CreateWorkspace(e)
	case DestroyWorkspace:
		h.DestroyWorkspace(e)
	case MoveWorkspace:
		h.MoveWorkspace(e)
	case RenameWorkspace:
		h.RenameWorkspace(e)
	case ActiveSpecial:
		h.ActiveSpecial(e)
	case ActiveLayout:
		h.ActiveLayout(e)
	case OpenWindow:
		h.OpenWindow(e)
	case CloseWindow:
		h.CloseWindow(e)
	case MoveWindow:
		h.MoveWindow(e)
	case OpenLayer:
		h.OpenLayer(e)
	case CloseLayer:
		h.CloseLayer(e)
	case SubMap:
		h.SubMap(e)
	case ChangeFloatingMode:
		h.ChangeFloatingMode(e)
	case Urgent:
		h.Urgent(e)
	case Screencast:
		h.Screencast(e)
	case WindowTitle:
		h.WindowTitle(e)
	case ToggleGroup:
		h.ToggleGroup(e)
	case MoveIntoGroup:
		h.MoveIntoGroup(e)
	case MoveOutOfGroup:
		h.MoveOutOfGroup(e)
	case IgnoreGroupLock:
		h.IgnoreGroupLock(e)
	case LockGroups:
		h.LockGroups(e)
	case ConfigReloaded:
		h.ConfigReloaded(e)
	case Pin:
		h.Pin(e)
	}
}

// DefaultEventHandler is an implementation of the [EventHandler] interface
// with all handlers doing nothing. It is a good starting point to be
// embedded in your own struct to be extended.
type DefaultEventHandler struct{}

func (*DefaultEventHandler) WorkspaceChanged(WorkspaceChanged)     {}
func (*DefaultEventHandler) FocusedMonitor(FocusedMonitor)         {}
func (*DefaultEventHandler) ActiveWindow(ActiveWindow)             {}
func (*DefaultEventHandler) Fullscreen(Fullscreen)                 {}
func (*DefaultEventHandler) MonitorRemoved(MonitorRemoved)         {}
func (*DefaultEventHandler) MonitorAdded(MonitorAdded)             {}
func (*DefaultEventHandler) CreateWorkspace(CreateWorkspace)       {}
func (*DefaultEventHandler) DestroyWorkspace(DestroyWorkspace)     {}
func (*DefaultEventHandler) MoveWorkspace(MoveWorkspace)           {}
func (*DefaultEventHandler) RenameWorkspace(RenameWorkspace)       {}
func (*DefaultEventHandler) ActiveSpecial(ActiveSpecial)           {}
func (*DefaultEventHandler) ActiveLayout(ActiveLayout)             {}
func (*DefaultEventHandler) OpenWindow(OpenWindow)                 {}
func (*DefaultEventHandler) CloseWindow(CloseWindow)               {}
func (*DefaultEventHandler) MoveWindow(MoveWindow)                 {}
func (*DefaultEventHandler) OpenLayer(OpenLayer)                   {}
func (*DefaultEventHandler) CloseLayer(CloseLayer)                 {}
func (*DefaultEventHandler) SubMap(SubMap)                         {}
func (*DefaultEventHandler) ChangeFloatingMode(ChangeFloatingMode) {}
func (*DefaultEventHandler) Urgent(Urgent)                         {}
func (*DefaultEventHandler) Screencast(Screencast)                 {}
func (*DefaultEventHandler) WindowTitle(WindowTitle)               {}
func (*DefaultEventHandler) ToggleGroup(ToggleGroup)               {}
func (*DefaultEventHandler) MoveIntoGroup(MoveIntoGroup)           {}
func (*DefaultEventHandler) MoveOutOfGroup(MoveOutOfGroup)         {}
func (*DefaultEventHandler) IgnoreGroupLock(IgnoreGroupLock)       {}
func (*DefaultEventHandler) LockGroups(LockGroups)                 {}
func (*DefaultEventHandler) ConfigReloaded(ConfigReloaded)         {}
func (*DefaultEventHandler) Pin(Pin)                               {}
func (*DefaultEventHandler) Error(error)                           {}
