package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"goruler/ruler"
)

const SETTINGS_VERSION = 1

var gs settings = gsdef

// settingsLoaded reports whether settings were successfully loaded from disk.
var settingsLoaded bool

var gsdef settings = settings{
	Version: SETTINGS_VERSION,

	Theme:              "",
	ResizeAllEdges:     false,
	MinSize:            ruler.MinSize,
	LockKeyboardResize: false,
	KeyStep:            ruler.KeyStep,
	FineKeyStep:        ruler.FineKeyStep,
	FontSize:           12,
	DoubleClickMillis:  500,
	ToolTipDelayMillis: 600,
}

// settings are read-only preferences. Window geometry is never stored; it
// comes from the command line each run.
type settings struct {
	Version int

	// Theme is "light", "dark" or empty to follow the desktop.
	Theme string
	// ResizeAllEdges makes the top and left borders and all corners
	// draggable instead of only the right, bottom and bottom-right.
	ResizeAllEdges bool
	// MinSize is the smallest width or height; 0 disables the floor.
	MinSize int
	// LockKeyboardResize makes "Lock resizing" also block Shift+Arrow.
	LockKeyboardResize bool
	KeyStep            int
	FineKeyStep        int
	FontSize           float64
	DoubleClickMillis  int
	ToolTipDelayMillis int
}

const settingsFile = "settings.json"

func settingsPath() string {
	return filepath.Join(configDirPath(), settingsFile)
}

// loadSettings reads path over the defaults. A missing, unreadable or
// outdated file leaves the defaults in place.
func loadSettings(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		gs = gsdef
		settingsLoaded = false
		return false
	}

	tmp := gsdef
	if err := json.Unmarshal(data, &tmp); err != nil {
		logWarn("settings: parse %v: %v", path, err)
		gs = gsdef
		settingsLoaded = false
		return false
	}
	if tmp.Version != SETTINGS_VERSION {
		logWarn("settings: %v has version %d, want %d; using defaults", path, tmp.Version, SETTINGS_VERSION)
		gs = gsdef
		settingsLoaded = false
		return false
	}

	gs = tmp
	clampSettings()
	settingsLoaded = true
	return true
}

func clampSettings() {
	switch gs.Theme {
	case "", "light", "dark":
	default:
		gs.Theme = gsdef.Theme
	}
	if gs.MinSize < 0 || gs.MinSize > 1000 {
		gs.MinSize = gsdef.MinSize
	}
	if gs.KeyStep <= 0 || gs.KeyStep > 500 {
		gs.KeyStep = gsdef.KeyStep
	}
	if gs.FineKeyStep <= 0 || gs.FineKeyStep > gs.KeyStep {
		gs.FineKeyStep = gsdef.FineKeyStep
	}
	if gs.FontSize < 6 || gs.FontSize > 48 {
		gs.FontSize = gsdef.FontSize
	}
	if gs.DoubleClickMillis < 100 || gs.DoubleClickMillis > 2000 {
		gs.DoubleClickMillis = gsdef.DoubleClickMillis
	}
	if gs.ToolTipDelayMillis < 0 || gs.ToolTipDelayMillis > 10000 {
		gs.ToolTipDelayMillis = gsdef.ToolTipDelayMillis
	}
}

// policy converts the preferences into the reducer's switches.
func (s settings) policy() ruler.Policy {
	return ruler.Policy{
		AllEdges:     s.ResizeAllEdges,
		MinSize:      s.MinSize,
		LockKeyboard: s.LockKeyboardResize,
		Step:         s.KeyStep,
		FineStep:     s.FineKeyStep,
	}
}
