package main

import (
	"errors"
	"fmt"

	"github.com/go-hypr/hyprwire"
	"github.com/spf13/cobra"
)

// workspaceFlags mirrors the WorkspaceSpec grammar one flag per variant.
// Exactly one selector flag must be set; the empty/special modifier flags
// refine their selector and also stand alone, implying it.
type workspaceFlags struct {
	id                   int32
	relative             int32
	monitorRelative      int32
	monitorAbsolute      uint32
	includeEmptyRelative int32
	includeEmptyAbsolute uint32
	openRelative         int32
	openAbsolute         uint32
	name                 string
	previous             bool
	previousPerMonitor   bool
	empty                bool
	emptyNext            bool
	emptyOnMonitor       bool
	special              bool
	specialName          string
}

// spec builds the workspace selector from whichever flags were set. changed
// reports whether a flag was given on the command line, so a zero value can
// still select (e.g. --id 0).
func (f *workspaceFlags) spec(changed func(string) bool) (hyprwire.WorkspaceSpec, error) {
	// modifiers imply their selector
	if changed("empty-next") || changed("empty-on-monitor") {
		f.empty = true
	}
	if changed("special-name") {
		f.special = true
	}

	var specs []hyprwire.WorkspaceSpec
	if changed("id") {
		specs = append(specs, hyprwire.Id(f.id))
	}
	if changed("relative") {
		specs = append(specs, hyprwire.RelativeId(f.relative))
	}
	if changed("monitor-relative") {
		specs = append(specs, hyprwire.MonitorRelativeId(f.monitorRelative))
	}
	if changed("monitor-absolute") {
		specs = append(specs, hyprwire.MonitorAbsoluteId(f.monitorAbsolute))
	}
	if changed("include-empty-relative") {
		specs = append(specs, hyprwire.MonitorIncludingEmptyRelativeId(f.includeEmptyRelative))
	}
	if changed("include-empty-absolute") {
		specs = append(specs, hyprwire.MonitorIncludingEmptyAbsoluteId(f.includeEmptyAbsolute))
	}
	if changed("open-relative") {
		specs = append(specs, hyprwire.OpenRelativeId(f.openRelative))
	}
	if changed("open-absolute") {
		specs = append(specs, hyprwire.OpenAbsoluteId(f.openAbsolute))
	}
	if changed("name") {
		specs = append(specs, hyprwire.Name(f.name))
	}
	if f.previous {
		specs = append(specs, hyprwire.Previous{})
	}
	if f.previousPerMonitor {
		specs = append(specs, hyprwire.PreviousPerMonitor{})
	}
	if f.empty {
		specs = append(specs, hyprwire.Empty{Next: f.emptyNext, Monitor: f.emptyOnMonitor})
	}
	if f.special {
		specs = append(specs, hyprwire.Special{Name: f.specialName})
	}

	switch len(specs) {
	case 0:
		return nil, errors.New("no workspace selected, pass one selector flag (see --help)")
	case 1:
		return specs[0], nil
	default:
		return nil, fmt.Errorf("%d workspace selectors given, pass exactly one", len(specs))
	}
}

var dispatchCmd = &cobra.Command{
	Use:   "dispatch",
	Short: "Send a dispatch request",
}

var wsFlags workspaceFlags

var dispatchWorkspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Switch the focused workspace",
	Long: `Switches the focused workspace. The target is selected by exactly one
of the selector flags, mirroring Hyprland's workspace dispatch grammar.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := wsFlags.spec(cmd.Flags().Changed)
		if err != nil {
			return err
		}

		client, err := requestClient()
		if err != nil {
			return err
		}
		return client.Dispatch(cmd.Context(), hyprwire.ChangeWorkspace{Spec: spec})
	},
}

func init() {
	fl := dispatchWorkspaceCmd.Flags()
	fl.Int32Var(&wsFlags.id, "id", 0, "absolute workspace id")
	fl.Int32Var(&wsFlags.relative, "relative", 0, "id relative to the focused workspace")
	fl.Int32Var(&wsFlags.monitorRelative, "monitor-relative", 0, "relative id on the current monitor")
	fl.Uint32Var(&wsFlags.monitorAbsolute, "monitor-absolute", 0, "nth workspace on the current monitor")
	fl.Int32Var(&wsFlags.includeEmptyRelative, "include-empty-relative", 0, "relative id on the current monitor, counting empty workspaces")
	fl.Uint32Var(&wsFlags.includeEmptyAbsolute, "include-empty-absolute", 0, "nth workspace on the current monitor, counting empty workspaces")
	fl.Int32Var(&wsFlags.openRelative, "open-relative", 0, "relative id among open workspaces")
	fl.Uint32Var(&wsFlags.openAbsolute, "open-absolute", 0, "nth open workspace")
	fl.StringVar(&wsFlags.name, "name", "", "workspace name")
	fl.BoolVar(&wsFlags.previous, "previous", false, "previously focused workspace")
	fl.BoolVar(&wsFlags.previousPerMonitor, "previous-per-monitor", false, "previously focused workspace of the current monitor")
	fl.BoolVar(&wsFlags.empty, "empty", false, "nearest empty workspace")
	fl.BoolVar(&wsFlags.emptyNext, "empty-next", false, "next empty workspace instead of the nearest")
	fl.BoolVar(&wsFlags.emptyOnMonitor, "empty-on-monitor", false, "restrict the empty workspace search to the current monitor")
	fl.BoolVar(&wsFlags.special, "special", false, "special (scratchpad) workspace")
	fl.StringVar(&wsFlags.specialName, "special-name", "", "special workspace name")

	dispatchCmd.AddCommand(dispatchWorkspaceCmd)
	rootCmd.AddCommand(dispatchCmd)
}
