package hyprwire

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/go-hypr/hyprwire/internal/assert"
)

func TestWindowAddressString(t *testing.T) {
	assert.Equal(t, WindowAddress(0x55d2a1).String(), "0x55d2a1")
	assert.Equal(t, WindowAddress(0).String(), "0x0")

	data := assert.Must1(json.Marshal(WindowAddress(0x55d2a1)))
	assert.Equal(t, string(data), `"0x55d2a1"`)
}

func TestWindowAddressJSON(t *testing.T) {
	tests := []struct {
		data string
		want WindowAddress
	}{
		{`"0x55d2a1"`, 0x55d2a1},
		// responses are not guaranteed to carry the prefix
		{`"55d2a1"`, 0x55d2a1},
		{`"0xABC"`, 0xabc},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("tests_%s", tt.data), func(t *testing.T) {
			var a WindowAddress
			assert.NoError(t, json.Unmarshal([]byte(tt.data), &a))
			assert.Equal(t, a, tt.want)
		})
	}

	errTests := []string{`""`, `"0x"`, `"zzz"`, `42`}
	for _, data := range errTests {
		t.Run(fmt.Sprintf("tests_invalid_%s", data), func(t *testing.T) {
			var a WindowAddress
			assert.Error(t, json.Unmarshal([]byte(data), &a))
		})
	}
}

func TestWorkspaceUnmarshal(t *testing.T) {
	// extra fields like "fullscreenMode" must be ignored
	data := `[
		{"id": 1, "name": "1", "monitor": "DP-1", "monitorID": 0,
		 "windows": 2, "hasfullscreen": false,
		 "lastwindow": "0x55d2a1", "lastwindowtitle": "nvim",
		 "fullscreenMode": 0},
		{"id": -99, "name": "special:scratch", "monitor": "DP-1",
		 "monitorID": 0, "windows": 0, "hasfullscreen": false,
		 "lastwindow": "0x0", "lastwindowtitle": ""}
	]`

	var got []Workspace
	assert.NoError(t, json.Unmarshal([]byte(data), &got))
	assert.DeepEqual(t, got, []Workspace{
		{
			WorkspaceType:   WorkspaceType{Id: 1, Name: "1"},
			Monitor:         "DP-1",
			MonitorID:       0,
			Windows:         2,
			HasFullScreen:   false,
			LastWindow:      0x55d2a1,
			LastWindowTitle: "nvim",
		},
		{
			WorkspaceType: WorkspaceType{Id: -99, Name: "special:scratch"},
			Monitor:       "DP-1",
		},
	})
}

func TestWorkspaceUnmarshalMissingField(t *testing.T) {
	fields := []string{
		"id", "name", "monitor", "monitorID", "windows",
		"hasfullscreen", "lastwindow", "lastwindowtitle",
	}
	for _, field := range fields {
		t.Run(fmt.Sprintf("tests_missing_%s", field), func(t *testing.T) {
			record := map[string]any{
				"id": 1, "name": "1", "monitor": "DP-1", "monitorID": 0,
				"windows": 2, "hasfullscreen": false,
				"lastwindow": "0x55d2a1", "lastwindowtitle": "nvim",
			}
			delete(record, field)
			data := assert.Must1(json.Marshal(record))

			var w Workspace
			assert.ErrorIs(t, json.Unmarshal(data, &w), ErrorDecode)
		})
	}
}

func TestClientUnmarshal(t *testing.T) {
	data := `[{"address": "0x55d2a1b2c3d0", "title": "zsh", "monitor": 0,
		   "workspace": {"id": 1, "name": "1"}, "pid": 4242}]`

	var got []Client
	assert.NoError(t, json.Unmarshal([]byte(data), &got))
	assert.DeepEqual(t, got, []Client{
		{
			Address:   0x55d2a1b2c3d0,
			Title:     "zsh",
			Monitor:   0,
			Workspace: WorkspaceType{Id: 1, Name: "1"},
		},
	})
}

func TestClientUnmarshalMissingField(t *testing.T) {
	fields := []string{"address", "title", "monitor", "workspace"}
	for _, field := range fields {
		t.Run(fmt.Sprintf("tests_missing_%s", field), func(t *testing.T) {
			record := map[string]any{
				"address": "0x55d2a1", "title": "zsh", "monitor": 0,
				"workspace": map[string]any{"id": 1, "name": "1"},
			}
			delete(record, field)
			data := assert.Must1(json.Marshal(record))

			var c Client
			assert.ErrorIs(t, json.Unmarshal(data, &c), ErrorDecode)
		})
	}

	t.Run("tests_missing_workspace_name", func(t *testing.T) {
		data := `{"address": "0x1", "title": "t", "monitor": 0,
			  "workspace": {"id": 1}}`

		var c Client
		assert.ErrorIs(t, json.Unmarshal([]byte(data), &c), ErrorDecode)
	})
}
