package ruler

// Event is an input delivered to State.Reduce.
type Event interface {
	event()
}

// Press is a primary button press at a screen position.
type Press struct {
	Screen Point
}

// Motion is a cursor move at a screen position. Held reports whether the
// primary button is down.
type Motion struct {
	Screen Point
	Held   bool
}

// Release is a primary button release.
type Release struct{}

// DoubleClick toggles the orientation.
type DoubleClick struct{}

// Key is a keyboard key the ruler reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyEnter
)

// KeyPress is a key-down (or auto-repeat) with its modifiers.
type KeyPress struct {
	Key   Key
	Shift bool
	Ctrl  bool
}

// CommandKind selects what a Command does.
type CommandKind int

const (
	CmdToggleVertical CommandKind = iota
	CmdToggleLock
	CmdToggleToolTip
	CmdToggleTopMost
	CmdSetOpacity
	CmdSetSize
)

// Command is a menu or dialog action. Only the fields its Kind needs are
// read.
type Command struct {
	Kind    CommandKind
	Width   int
	Height  int
	Opacity float64
}

func (Press) event()       {}
func (Motion) event()      {}
func (Release) event()     {}
func (DoubleClick) event() {}
func (KeyPress) event()    {}
func (Command) event()     {}
