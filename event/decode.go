package event

import "fmt"

// decodeEvent maps one wire record to its typed event, consuming payload
// fields in the order the tag defines. A nil Event with a nil error means
// the tag is a deprecated duplicate of a v2 tag and the record must be
// dropped without surfacing anything.
func decodeEvent(tag string, f *fields) (Event, error) {
	var ev Event
	switch tag {
	case "workspacev2":
		ev = WorkspaceChanged{Id: f.nextWorkspaceId(), Name: f.nextString()}
	case "focusedmon":
		ev = FocusedMonitor{Monitor: f.nextString(), Workspace: f.nextString()}
	case "activewindowv2":
		ev = ActiveWindow{Address: f.nextOptionalAddress()}
	case "fullscreen":
		ev = Fullscreen{Enter: f.nextBool()}
	case "monitorremoved":
		ev = MonitorRemoved{Name: f.nextString()}
	case "monitoraddedv2":
		ev = MonitorAdded{
			Id:          int32(f.nextWorkspaceId()),
			Name:        f.nextString(),
			Description: f.nextString(),
		}
	case "createworkspacev2":
		ev = CreateWorkspace{Id: f.nextWorkspaceId(), Name: f.nextString()}
	case "destroyworkspacev2":
		ev = DestroyWorkspace{Id: f.nextWorkspaceId(), Name: f.nextString()}
	case "moveworkspacev2":
		ev = MoveWorkspace{
			Id:      f.nextWorkspaceId(),
			Name:    f.nextString(),
			Monitor: f.nextString(),
		}
	case "renameworkspace":
		ev = RenameWorkspace{Id: f.nextWorkspaceId(), NewName: f.nextString()}
	case "activespecial":
		ev = ActiveSpecial{Workspace: f.nextString(), Monitor: f.nextString()}
	case "activelayout":
		ev = ActiveLayout{Keyboard: f.nextString(), Layout: f.nextString()}
	case "openwindow":
		ev = OpenWindow{
			Address:   f.nextAddress(),
			Workspace: f.nextString(),
			Class:     f.nextString(),
			Title:     f.nextString(),
		}
	case "closewindow":
		ev = CloseWindow{Address: f.nextAddress()}
	case "movewindowv2":
		ev = MoveWindow{
			Address:     f.nextAddress(),
			WorkspaceId: f.nextWorkspaceId(),
			Workspace:   f.nextString(),
		}
	case "openlayer":
		ev = OpenLayer{Namespace: f.nextString()}
	case "closelayer":
		ev = CloseLayer{Namespace: f.nextString()}
	case "submap":
		ev = SubMap{Name: f.nextString()}
	case "changefloatingmode":
		ev = ChangeFloatingMode{Address: f.nextAddress(), Floating: f.nextBool()}
	case "urgent":
		ev = Urgent{Address: f.nextAddress()}
	case "screencast":
		sharing := f.nextBool()
		owner := OwnerMonitor
		if f.nextBool() {
			owner = OwnerWindow
		}
		ev = Screencast{Sharing: sharing, Owner: owner}
	case "windowtitlev2":
		ev = WindowTitle{Address: f.nextAddress(), Title: f.nextString()}
	case "togglegroup":
		ev = ToggleGroup{Created: f.nextBool(), Handles: f.remainingAddresses()}
	case "moveintogroup":
		ev = MoveIntoGroup{Address: f.nextAddress()}
	case "moveoutofgroup":
		ev = MoveOutOfGroup{Address: f.nextAddress()}
	case "ignoregrouplock":
		ev = IgnoreGroupLock{State: f.nextBool()}
	case "lockgroups":
		ev = LockGroups{State: f.nextBool()}
	case "configreloaded":
		ev = ConfigReloaded{}
	case "pin":
		ev = Pin{Address: f.nextAddress(), Pinned: f.nextBool()}
	case "workspace", "activewindow", "monitoradded", "createworkspace",
		"destroyworkspace", "moveworkspace", "movewindow", "windowtitle":
		// superseded by the v2 form of the same notification, which the
		// compositor sends alongside
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrorUnknownEvent, tag)
	}
	if err := f.Err(); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", tag, err)
	}
	return ev, nil
}
