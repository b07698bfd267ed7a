package hyprwire

import (
	"fmt"
	"strconv"
)

// Dispatcher is a compositor action that can be sent through
// [RequestClient.Dispatch]. Implementations render the exact dispatch
// argument string; the set is fixed.
type Dispatcher interface {
	fmt.Stringer
	isDispatcher()
}

// ChangeWorkspace switches the focused workspace to the one selected by
// Spec.
type ChangeWorkspace struct {
	Spec WorkspaceSpec
}

func (d ChangeWorkspace) String() string {
	return "workspace " + d.Spec.String()
}

func (ChangeWorkspace) isDispatcher() {}

// WorkspaceSpec selects a target workspace in the dispatch grammar. It is a
// request-encoding value only, never decoded from the wire. Each
// implementation renders one grammar form, byte for byte:
//
//	Id(1)                                 "1"
//	RelativeId(1)                         "+1"
//	MonitorRelativeId(1)                  "m+1"
//	MonitorAbsoluteId(1)                  "m~1"
//	MonitorIncludingEmptyRelativeId(1)    "r+1"
//	MonitorIncludingEmptyAbsoluteId(1)    "r~1"
//	OpenRelativeId(1)                     "e+1"
//	OpenAbsoluteId(1)                     "e~1"
//	Name("web")                           "name:web"
//	Previous{}                            "previous"
//	PreviousPerMonitor{}                  "previous_per_monitor"
//	Empty{}                               "empty" ("m" and "n" modifiers appended)
//	Special{}                             "special"
//	Special{Name: "scratch"}              "special:scratch"
type WorkspaceSpec interface {
	fmt.Stringer
	isWorkspaceSpec()
}

// Id selects a workspace by its absolute id.
type Id WorkspaceId

// RelativeId selects a workspace relative to the focused one.
type RelativeId int32

// MonitorRelativeId selects relative to the focused one, restricted to the
// current monitor.
type MonitorRelativeId int32

// MonitorAbsoluteId selects the nth workspace on the current monitor.
type MonitorAbsoluteId uint32

// MonitorIncludingEmptyRelativeId is [MonitorRelativeId] but also counting
// empty workspaces.
type MonitorIncludingEmptyRelativeId int32

// MonitorIncludingEmptyAbsoluteId is [MonitorAbsoluteId] but also counting
// empty workspaces.
type MonitorIncludingEmptyAbsoluteId uint32

// OpenRelativeId selects relative to the focused one among open workspaces.
type OpenRelativeId int32

// OpenAbsoluteId selects the nth open workspace.
type OpenAbsoluteId uint32

// Name selects a workspace by name.
type Name string

// Previous selects the previously focused workspace.
type Previous struct{}

// PreviousPerMonitor selects the previously focused workspace of the current
// monitor.
type PreviousPerMonitor struct{}

// Empty selects the nearest empty workspace. Monitor restricts the search to
// the current monitor, Next picks the next empty workspace instead of the
// nearest.
type Empty struct {
	Next    bool
	Monitor bool
}

// Special selects the special (scratchpad) workspace, by name when Name is
// not empty.
type Special struct {
	Name string
}

func (i Id) String() string {
	return strconv.Itoa(int(i))
}

func (r RelativeId) String() string {
	return fmt.Sprintf("%+d", int32(r))
}

func (m MonitorRelativeId) String() string {
	return fmt.Sprintf("m%+d", int32(m))
}

func (m MonitorAbsoluteId) String() string {
	return fmt.Sprintf("m~%d", uint32(m))
}

func (r MonitorIncludingEmptyRelativeId) String() string {
	return fmt.Sprintf("r%+d", int32(r))
}

func (r MonitorIncludingEmptyAbsoluteId) String() string {
	return fmt.Sprintf("r~%d", uint32(r))
}

func (o OpenRelativeId) String() string {
	return fmt.Sprintf("e%+d", int32(o))
}

func (o OpenAbsoluteId) String() string {
	return fmt.Sprintf("e~%d", uint32(o))
}

func (n Name) String() string {
	return "name:" + string(n)
}

func (Previous) String() string {
	return "previous"
}

func (PreviousPerMonitor) String() string {
	return "previous_per_monitor"
}

func (e Empty) String() string {
	s := "empty"
	if e.Monitor {
		s += "m"
	}
	if e.Next {
		s += "n"
	}
	return s
}

func (s Special) String() string {
	if s.Name == "" {
		return "special"
	}
	return "special:" + s.Name
}

func (Id) isWorkspaceSpec()                              {}
func (RelativeId) isWorkspaceSpec()                      {}
func (MonitorRelativeId) isWorkspaceSpec()               {}
func (MonitorAbsoluteId) isWorkspaceSpec()               {}
func (MonitorIncludingEmptyRelativeId) isWorkspaceSpec() {}
func (MonitorIncludingEmptyAbsoluteId) isWorkspaceSpec() {}
func (OpenRelativeId) isWorkspaceSpec()                  {}
func (OpenAbsoluteId) isWorkspaceSpec()                  {}
func (Name) isWorkspaceSpec()                            {}
func (Previous) isWorkspaceSpec()                        {}
func (PreviousPerMonitor) isWorkspaceSpec()              {}
func (Empty) isWorkspaceSpec()                           {}
func (Special) isWorkspaceSpec()                         {}
