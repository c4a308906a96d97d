// Package menu models the ruler's context menu. It builds its check marks
// from a ruler.Info snapshot and reports selections as actions; it never
// owns ruler state.
package menu

import (
	"fmt"
	"math"

	"goruler/ruler"
)

// Action is what a menu item asks the host to do.
type Action int

const (
	ActionNone Action = iota
	ActionTopMost
	ActionVertical
	ActionToolTip
	ActionOpacity
	ActionLock
	ActionSetSize
	ActionDuplicate
	ActionCopySize
	ActionSaveImage
	ActionShowLogs
	ActionAbout
	ActionExit
)

// String returns the action name for logging.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionTopMost:
		return "topmost"
	case ActionVertical:
		return "vertical"
	case ActionToolTip:
		return "tooltip"
	case ActionOpacity:
		return "opacity"
	case ActionLock:
		return "lock"
	case ActionSetSize:
		return "set-size"
	case ActionDuplicate:
		return "duplicate"
	case ActionCopySize:
		return "copy-size"
	case ActionSaveImage:
		return "save-image"
	case ActionShowLogs:
		return "show-logs"
	case ActionAbout:
		return "about"
	case ActionExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Item is one row of the menu.
type Item struct {
	Label     string
	Action    Action
	Checkable bool
	Checked   bool
	Separator bool
	// Opacity is the value an opacity submenu entry selects.
	Opacity float64
	Sub     []Item
}

// Options controls optional entries.
type Options struct {
	ShowLogs bool
}

// Build returns the menu for the given snapshot.
func Build(info ruler.Info, opts Options) []Item {
	items := []Item{
		{Label: "Stay On Top", Action: ActionTopMost, Checkable: true, Checked: info.TopMost},
		{Label: "Vertical", Action: ActionVertical, Checkable: true, Checked: info.Vertical},
		{Label: "Tool Tip", Action: ActionToolTip, Checkable: true, Checked: info.ShowToolTip},
		{Label: "Opacity", Sub: opacityItems(info.Opacity)},
		{Label: "Lock resizing", Action: ActionLock, Checkable: true, Checked: info.Locked},
		{Label: "Set size...", Action: ActionSetSize},
		{Label: "Duplicate", Action: ActionDuplicate},
		{Label: "Copy size", Action: ActionCopySize},
		{Label: "Save image...", Action: ActionSaveImage},
		{Separator: true},
	}
	if opts.ShowLogs {
		items = append(items, Item{Label: "Show logs", Action: ActionShowLogs})
	}
	items = append(items,
		Item{Label: "About...", Action: ActionAbout},
		Item{Separator: true},
		Item{Label: "Exit", Action: ActionExit},
	)
	return items
}

// opacityItems lists 10%..100%, checking the entry nearest the current value.
func opacityItems(current float64) []Item {
	checked := int(math.Round(current * 10))
	items := make([]Item, 0, 10)
	for i := 1; i <= 10; i++ {
		items = append(items, Item{
			Label:     fmt.Sprintf("%d%%", i*10),
			Action:    ActionOpacity,
			Checkable: true,
			Checked:   i == checked,
			Opacity:   float64(i) / 10,
		})
	}
	return items
}
