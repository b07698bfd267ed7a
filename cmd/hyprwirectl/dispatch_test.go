package main

import (
	"fmt"
	"testing"

	"github.com/go-hypr/hyprwire"
	"github.com/go-hypr/hyprwire/internal/assert"
)

func changedSet(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestWorkspaceFlagsSpec(t *testing.T) {
	tests := []struct {
		flags   workspaceFlags
		changed []string
		want    hyprwire.WorkspaceSpec
	}{
		{workspaceFlags{id: 3}, []string{"id"}, hyprwire.Id(3)},
		// a zero value is still a selection when the flag was given
		{workspaceFlags{id: 0}, []string{"id"}, hyprwire.Id(0)},
		{workspaceFlags{relative: -1}, []string{"relative"}, hyprwire.RelativeId(-1)},
		{workspaceFlags{monitorRelative: 1}, []string{"monitor-relative"}, hyprwire.MonitorRelativeId(1)},
		{workspaceFlags{monitorAbsolute: 2}, []string{"monitor-absolute"}, hyprwire.MonitorAbsoluteId(2)},
		{workspaceFlags{includeEmptyRelative: 1}, []string{"include-empty-relative"}, hyprwire.MonitorIncludingEmptyRelativeId(1)},
		{workspaceFlags{includeEmptyAbsolute: 2}, []string{"include-empty-absolute"}, hyprwire.MonitorIncludingEmptyAbsoluteId(2)},
		{workspaceFlags{openRelative: 1}, []string{"open-relative"}, hyprwire.OpenRelativeId(1)},
		{workspaceFlags{openAbsolute: 2}, []string{"open-absolute"}, hyprwire.OpenAbsoluteId(2)},
		{workspaceFlags{name: "web"}, []string{"name"}, hyprwire.Name("web")},
		{workspaceFlags{previous: true}, []string{"previous"}, hyprwire.Previous{}},
		{workspaceFlags{previousPerMonitor: true}, []string{"previous-per-monitor"}, hyprwire.PreviousPerMonitor{}},
		{workspaceFlags{empty: true}, []string{"empty"}, hyprwire.Empty{}},
		{
			workspaceFlags{empty: true, emptyNext: true, emptyOnMonitor: true},
			[]string{"empty", "empty-next", "empty-on-monitor"},
			hyprwire.Empty{Next: true, Monitor: true},
		},
		// modifiers imply their selector
		{workspaceFlags{emptyNext: true}, []string{"empty-next"}, hyprwire.Empty{Next: true}},
		{workspaceFlags{special: true}, []string{"special"}, hyprwire.Special{}},
		{workspaceFlags{specialName: "scratch"}, []string{"special-name"}, hyprwire.Special{Name: "scratch"}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("tests_%v-%s", tt.changed, tt.want), func(t *testing.T) {
			flags := tt.flags
			got, err := flags.spec(changedSet(tt.changed...))
			assert.NoError(t, err)
			assert.DeepEqual(t, got, tt.want)
		})
	}
}

func TestWorkspaceFlagsSpecInvalid(t *testing.T) {
	tests := []struct {
		flags   workspaceFlags
		changed []string
	}{
		{workspaceFlags{}, nil},
		{workspaceFlags{id: 1, name: "web"}, []string{"id", "name"}},
		{workspaceFlags{previous: true, special: true}, []string{"previous", "special"}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("tests_%v", tt.changed), func(t *testing.T) {
			flags := tt.flags
			_, err := flags.spec(changedSet(tt.changed...))
			assert.Error(t, err)
		})
	}
}
