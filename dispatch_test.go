package hyprwire

import (
	"fmt"
	"testing"

	"github.com/go-hypr/hyprwire/internal/assert"
)

func TestWorkspaceSpec(t *testing.T) {
	tests := []struct {
		spec WorkspaceSpec
		want string
	}{
		{Id(1), "1"},
		{Id(42), "42"},
		// special workspaces have negative ids
		{Id(-99), "-99"},
		{RelativeId(1), "+1"},
		{RelativeId(-3), "-3"},
		{MonitorRelativeId(1), "m+1"},
		{MonitorRelativeId(-1), "m-1"},
		{MonitorAbsoluteId(3), "m~3"},
		{MonitorIncludingEmptyRelativeId(2), "r+2"},
		{MonitorIncludingEmptyRelativeId(-2), "r-2"},
		{MonitorIncludingEmptyAbsoluteId(2), "r~2"},
		{OpenRelativeId(1), "e+1"},
		{OpenRelativeId(-1), "e-1"},
		{OpenAbsoluteId(4), "e~4"},
		{Name("web"), "name:web"},
		{Previous{}, "previous"},
		{PreviousPerMonitor{}, "previous_per_monitor"},
		{Empty{}, "empty"},
		{Empty{Monitor: true}, "emptym"},
		{Empty{Next: true}, "emptyn"},
		{Empty{Monitor: true, Next: true}, "emptymn"},
		{Special{}, "special"},
		{Special{Name: "scratch"}, "special:scratch"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("tests_%T-%s", tt.spec, tt.want), func(t *testing.T) {
			assert.Equal(t, tt.spec.String(), tt.want)
		})
	}
}

func TestChangeWorkspace(t *testing.T) {
	tests := []struct {
		spec WorkspaceSpec
		want string
	}{
		{Id(3), "workspace 3"},
		{Name("mail"), "workspace name:mail"},
		{Special{Name: "term"}, "workspace special:term"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("tests_%s", tt.want), func(t *testing.T) {
			d := ChangeWorkspace{Spec: tt.spec}
			assert.Equal(t, d.String(), tt.want)
		})
	}
}
