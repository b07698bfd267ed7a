package hyprwire

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrorConnection is wrapped by errors returned when a socket cannot
	// be opened.
	ErrorConnection = errors.New("connection error")
	// ErrorDecode is wrapped by errors returned when a command response
	// cannot be decoded.
	ErrorDecode = errors.New("decode error")
)

// WorkspaceId identifies a workspace. The command channel encodes it as a
// decimal JSON number while the event channel encodes it in hexadecimal;
// both decode into this one type.
type WorkspaceId int32

// WindowAddress is the opaque handle of a window. On the wire it is a
// hexadecimal string, optionally "0x"-prefixed in JSON responses.
type WindowAddress uint64

func (a WindowAddress) String() string {
	return fmt.Sprintf("0x%x", uint64(a))
}

func (a WindowAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *WindowAddress) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64)
	if err != nil {
		return fmt.Errorf("%w: window address %q", ErrorDecode, s)
	}
	*a = WindowAddress(v)
	return nil
}

// WorkspaceType is the workspace reference nested inside other records.
type WorkspaceType struct {
	Id   WorkspaceId `json:"id"`
	Name string      `json:"name"`
}

// Workspace is one record from the "j/workspaces" response. Snapshots are
// immutable and superseded wholesale by the next fetch.
type Workspace struct {
	WorkspaceType
	Monitor         string        `json:"monitor"`
	MonitorID       int           `json:"monitorID"`
	Windows         int           `json:"windows"`
	HasFullScreen   bool          `json:"hasfullscreen"`
	LastWindow      WindowAddress `json:"lastwindow"`
	LastWindowTitle string        `json:"lastwindowtitle"`
}

// Client is one record from the "j/clients" response.
type Client struct {
	Address   WindowAddress `json:"address"`
	Title     string        `json:"title"`
	Monitor   int           `json:"monitor"`
	Workspace WorkspaceType `json:"workspace"`
}

func missingField(name string) error {
	return fmt.Errorf("%w: missing required field %q", ErrorDecode, name)
}

// Every documented field is required; a record that omits one is rejected
// instead of defaulting, so zero values never masquerade as data.

func (w *WorkspaceType) UnmarshalJSON(data []byte) error {
	var raw struct {
		Id   *WorkspaceId `json:"id"`
		Name *string      `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.Id == nil:
		return missingField("id")
	case raw.Name == nil:
		return missingField("name")
	}
	*w = WorkspaceType{Id: *raw.Id, Name: *raw.Name}
	return nil
}

func (w *Workspace) UnmarshalJSON(data []byte) error {
	var raw struct {
		Id              *WorkspaceId   `json:"id"`
		Name            *string        `json:"name"`
		Monitor         *string        `json:"monitor"`
		MonitorID       *int           `json:"monitorID"`
		Windows         *int           `json:"windows"`
		HasFullScreen   *bool          `json:"hasfullscreen"`
		LastWindow      *WindowAddress `json:"lastwindow"`
		LastWindowTitle *string        `json:"lastwindowtitle"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.Id == nil:
		return missingField("id")
	case raw.Name == nil:
		return missingField("name")
	case raw.Monitor == nil:
		return missingField("monitor")
	case raw.MonitorID == nil:
		return missingField("monitorID")
	case raw.Windows == nil:
		return missingField("windows")
	case raw.HasFullScreen == nil:
		return missingField("hasfullscreen")
	case raw.LastWindow == nil:
		return missingField("lastwindow")
	case raw.LastWindowTitle == nil:
		return missingField("lastwindowtitle")
	}
	*w = Workspace{
		WorkspaceType:   WorkspaceType{Id: *raw.Id, Name: *raw.Name},
		Monitor:         *raw.Monitor,
		MonitorID:       *raw.MonitorID,
		Windows:         *raw.Windows,
		HasFullScreen:   *raw.HasFullScreen,
		LastWindow:      *raw.LastWindow,
		LastWindowTitle: *raw.LastWindowTitle,
	}
	return nil
}

func (c *Client) UnmarshalJSON(data []byte) error {
	var raw struct {
		Address   *WindowAddress `json:"address"`
		Title     *string        `json:"title"`
		Monitor   *int           `json:"monitor"`
		Workspace *WorkspaceType `json:"workspace"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.Address == nil:
		return missingField("address")
	case raw.Title == nil:
		return missingField("title")
	case raw.Monitor == nil:
		return missingField("monitor")
	case raw.Workspace == nil:
		return missingField("workspace")
	}
	*c = Client{
		Address:   *raw.Address,
		Title:     *raw.Title,
		Monitor:   *raw.Monitor,
		Workspace: *raw.Workspace,
	}
	return nil
}
