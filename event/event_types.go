package event

import (
	"errors"

	"github.com/go-hypr/hyprwire"
)

var (
	// ErrorInvalidFormat is wrapped by errors for records without the
	// tag/payload separator.
	ErrorInvalidFormat = errors.New("invalid event format")
	// ErrorUnknownEvent is wrapped by errors for tags outside the known
	// catalog.
	ErrorUnknownEvent = errors.New("unknown event")
	// ErrorInvalidInteger is wrapped by errors for unparsable id or
	// address fields.
	ErrorInvalidInteger = errors.New("invalid integer")
	// ErrorInvalidBoolean is wrapped by errors for unparsable boolean
	// fields.
	ErrorInvalidBoolean = errors.New("invalid boolean")
	// ErrorUnexpectedEOF is wrapped by errors for records with fewer
	// fields than their tag requires.
	ErrorUnexpectedEOF = errors.New("unexpected end of event data")
)

// Event is one decoded notification from the compositor. The set of
// implementations is fixed; consumers normally type switch over it.
type Event interface {
	isEvent()
}

// Result is one item of the stream produced by [EventClient.Listen]: either
// a decoded event or the error for the one record that could not be decoded.
type Result struct {
	Event Event
	Err   error
}

// ScreencastOwner tells whether a screencast captures a monitor or a single
// window.
type ScreencastOwner int

const (
	OwnerMonitor ScreencastOwner = iota
	OwnerWindow
)

func (o ScreencastOwner) String() string {
	if o == OwnerWindow {
		return "window"
	}
	return "monitor"
}

// WorkspaceChanged reports that the focused workspace changed.
type WorkspaceChanged struct {
	Id   hyprwire.WorkspaceId
	Name string
}

// FocusedMonitor reports that the focused monitor changed, together with the
// workspace focused on it.
type FocusedMonitor struct {
	Monitor   string
	Workspace string
}

// ActiveWindow reports the newly focused window. Address is nil when focus
// moved to no window at all.
type ActiveWindow struct {
	Address *hyprwire.WindowAddress
}

// Fullscreen reports a window entering (true) or leaving fullscreen.
type Fullscreen struct {
	Enter bool
}

// MonitorRemoved reports a disconnected monitor.
type MonitorRemoved struct {
	Name string
}

// MonitorAdded reports a newly connected monitor.
type MonitorAdded struct {
	Id          int32
	Name        string
	Description string
}

// CreateWorkspace reports a workspace being created.
type CreateWorkspace struct {
	Id   hyprwire.WorkspaceId
	Name string
}

// DestroyWorkspace reports a workspace being destroyed.
type DestroyWorkspace struct {
	Id   hyprwire.WorkspaceId
	Name string
}

// MoveWorkspace reports a workspace moving to another monitor.
type MoveWorkspace struct {
	Id      hyprwire.WorkspaceId
	Name    string
	Monitor string
}

// RenameWorkspace reports a workspace rename.
type RenameWorkspace struct {
	Id      hyprwire.WorkspaceId
	NewName string
}

// ActiveSpecial reports the special workspace shown on a monitor changing;
// Workspace is empty when it was closed.
type ActiveSpecial struct {
	Workspace string
	Monitor   string
}

// ActiveLayout reports a keyboard layout change.
type ActiveLayout struct {
	Keyboard string
	Layout   string
}

// OpenWindow reports a window being mapped.
type OpenWindow struct {
	Address   hyprwire.WindowAddress
	Workspace string
	Class     string
	Title     string
}

// CloseWindow reports a window being closed.
type CloseWindow struct {
	Address hyprwire.WindowAddress
}

// MoveWindow reports a window moving to another workspace.
type MoveWindow struct {
	Address     hyprwire.WindowAddress
	WorkspaceId hyprwire.WorkspaceId
	Workspace   string
}

// OpenLayer reports a layer surface being mapped.
type OpenLayer struct {
	Namespace string
}

// CloseLayer reports a layer surface being unmapped.
type CloseLayer struct {
	Namespace string
}

// SubMap reports a keybind submap change; Name is empty when returning to
// the default submap.
type SubMap struct {
	Name string
}

// ChangeFloatingMode reports a window switching between tiled and floating.
type ChangeFloatingMode struct {
	Address  hyprwire.WindowAddress
	Floating bool
}

// Urgent reports a window requesting attention.
type Urgent struct {
	Address hyprwire.WindowAddress
}

// Screencast reports screen sharing starting or stopping.
type Screencast struct {
	Sharing bool
	Owner   ScreencastOwner
}

// WindowTitle reports a window title change.
type WindowTitle struct {
	Address hyprwire.WindowAddress
	Title   string
}

// ToggleGroup reports a window group being created (Created true) or
// dissolved, with the handles of its members.
type ToggleGroup struct {
	Created bool
	Handles []hyprwire.WindowAddress
}

// MoveIntoGroup reports a window merging into a group.
type MoveIntoGroup struct {
	Address hyprwire.WindowAddress
}

// MoveOutOfGroup reports a window leaving a group.
type MoveOutOfGroup struct {
	Address hyprwire.WindowAddress
}

// IgnoreGroupLock reports the ignore_group_lock toggle.
type IgnoreGroupLock struct {
	State bool
}

// LockGroups reports the lockgroups toggle.
type LockGroups struct {
	State bool
}

// ConfigReloaded reports that the configuration was reloaded.
type ConfigReloaded struct{}

// Pin reports a window being pinned or unpinned.
type Pin struct {
	Address hyprwire.WindowAddress
	Pinned  bool
}

func (WorkspaceChanged) isEvent()   {}
func (FocusedMonitor) isEvent()     {}
func (ActiveWindow) isEvent()       {}
func (Fullscreen) isEvent()         {}
func (MonitorRemoved) isEvent()     {}
func (MonitorAdded) isEvent()       {}
func (CreateWorkspace) isEvent()    {}
func (DestroyWorkspace) isEvent()   {}
func (MoveWorkspace) isEvent()      {}
func (RenameWorkspace) isEvent()    {}
func (ActiveSpecial) isEvent()      {}
func (ActiveLayout) isEvent()       {}
func (OpenWindow) isEvent()         {}
func (CloseWindow) isEvent()        {}
func (MoveWindow) isEvent()         {}
func (OpenLayer) isEvent()          {}
func (CloseLayer) isEvent()         {}
func (SubMap) isEvent()             {}
func (ChangeFloatingMode) isEvent() {}
func (Urgent) isEvent()             {}
func (Screencast) isEvent()         {}
func (WindowTitle) isEvent()        {}
func (ToggleGroup) isEvent()        {}
func (MoveIntoGroup) isEvent()      {}
func (MoveOutOfGroup) isEvent()     {}
func (IgnoreGroupLock) isEvent()    {}
func (LockGroups) isEvent()         {}
func (ConfigReloaded) isEvent()     {}
func (Pin) isEvent()                {}
