package ruler

import "fmt"

// Phase is the pointer interaction phase.
type Phase int

const (
	// PhaseIdle means no drag is in progress, or a press has not yet moved.
	PhaseIdle Phase = iota
	// PhaseMoving means the window follows the cursor.
	PhaseMoving
	// PhaseResizing means a border region is being dragged.
	PhaseResizing
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseMoving:
		return "moving"
	case PhaseResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// DragState is captured on button-down and only read until button-up.
type DragState struct {
	Active    bool
	DownPoint Point // screen cursor at press time
	DownRect  Rect  // window geometry at press time
	Offset    Point // cursor minus window origin
	Region    Region
}

// Policy holds the behavioral switches that differ from the plain
// right/bottom-edge ruler.
type Policy struct {
	// AllEdges makes the N, W and diagonal regions resize too.
	AllEdges bool
	// MinSize is the smallest width and height any mutation may produce.
	// Zero disables clamping.
	MinSize int
	// LockKeyboard makes Locked suppress Shift+Arrow resizing.
	LockKeyboard bool
	Step         int
	FineStep     int
}

// DefaultPolicy keeps the classic edge behavior and clamps to MinSize.
func DefaultPolicy() Policy {
	return Policy{
		MinSize:  MinSize,
		Step:     KeyStep,
		FineStep: FineKeyStep,
	}
}

// State is everything the ruler window knows about itself. It is a value:
// Reduce returns a new State instead of mutating the receiver.
type State struct {
	Geometry    Rect
	Vertical    bool
	Locked      bool
	ShowToolTip bool
	TopMost     bool
	Opacity     float64

	Phase  Phase
	Drag   DragState
	Cursor Cursor

	Policy Policy
}

// NewState builds the initial state from a placement snapshot.
func NewState(info Info, policy Policy) State {
	s := State{
		Geometry:    Rect{X: info.X, Y: info.Y, Width: info.Width, Height: info.Height},
		Vertical:    info.Vertical,
		Locked:      info.Locked,
		ShowToolTip: info.ShowToolTip,
		TopMost:     info.TopMost,
		Opacity:     info.Opacity,
		Policy:      policy,
	}
	s.Geometry.Width, s.Geometry.Height = clampSize(s.Geometry.Width, s.Geometry.Height, policy.MinSize)
	return s
}

// Info returns a snapshot suitable for serializing the window.
func (s State) Info() Info {
	return Info{
		X:           s.Geometry.X,
		Y:           s.Geometry.Y,
		Width:       s.Geometry.Width,
		Height:      s.Geometry.Height,
		Vertical:    s.Vertical,
		Locked:      s.Locked,
		ShowToolTip: s.ShowToolTip,
		TopMost:     s.TopMost,
		Opacity:     s.Opacity,
	}
}

// DimensionsText is the "Width/Height" message shown on Enter and in the
// tooltip.
func (s State) DimensionsText() string {
	return fmt.Sprintf("Width: %s\nHeight: %s", SizeString(s.Geometry.Width), SizeString(s.Geometry.Height))
}

// Effect tells the host what a reduction requires.
type Effect struct {
	// Geometry is set when State.Geometry must be pushed to the window.
	Geometry bool
	// Render is set when the ruler must be repainted.
	Render bool
	// Window is set when top-most, opacity or tooltip flags changed.
	Window bool
	// CursorChanged is set when State.Cursor differs from before.
	CursorChanged bool
	// Message is user-visible text to show, if any.
	Message string
}

func (e Effect) merge(o Effect) Effect {
	e.Geometry = e.Geometry || o.Geometry
	e.Render = e.Render || o.Render
	e.Window = e.Window || o.Window
	e.CursorChanged = e.CursorChanged || o.CursorChanged
	if o.Message != "" {
		e.Message = o.Message
	}
	return e
}

// Reduce applies one input event and reports what the host must do.
func (s State) Reduce(ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case Press:
		return s.press(ev), Effect{}
	case Motion:
		return s.motion(ev)
	case Release:
		s.Phase = PhaseIdle
		s.Drag = DragState{}
		return s, Effect{}
	case DoubleClick:
		return s.toggle()
	case KeyPress:
		return s.key(ev)
	case Command:
		return s.command(ev)
	}
	return s, Effect{}
}

// toggle is the orientation switch shared by double-click, Space and the
// menu. A drag in progress keeps its press-time capture.
func (s State) toggle() (State, Effect) {
	s = s.ToggleOrientation()
	return s, Effect{Geometry: true, Render: true}
}

func (s State) press(ev Press) State {
	s.Phase = PhaseIdle
	s.Drag = DragState{
		Active:    true,
		DownPoint: ev.Screen,
		DownRect:  s.Geometry,
		Offset:    ev.Screen.Sub(s.Geometry.Origin()),
		Region:    RegionNone,
	}
	return s
}

func (s State) motion(ev Motion) (State, Effect) {
	if !ev.Held || !s.Drag.Active {
		return s.hover(ev.Screen)
	}
	if s.Phase == PhaseResizing {
		return s.resize(ev.Screen)
	}

	client := ev.Screen.Sub(s.Geometry.Origin())
	w, h := s.Geometry.Width, s.Geometry.Height
	var eff, changed Effect
	if InBand(client, w, h, BorderBandWidth) {
		region := Classify(client, w, h, BorderBandWidth)
		s.Phase = PhaseResizing
		s.Drag.Region = region
		s, eff = s.setCursor(CursorFor(region))
		s, changed = s.resize(ev.Screen)
		return s, eff.merge(changed)
	}

	s.Phase = PhaseMoving
	s, eff = s.setCursor(CursorDefault)
	next := s.Geometry
	pos := ev.Screen.Sub(s.Drag.Offset)
	next.X, next.Y = pos.X, pos.Y
	s, changed = s.setGeometry(next)
	return s, eff.merge(changed)
}

func (s State) hover(screen Point) (State, Effect) {
	client := screen.Sub(s.Geometry.Origin())
	w, h := s.Geometry.Width, s.Geometry.Height
	if InBand(client, w, h, BorderBandWidth) {
		return s.setCursor(CursorFor(Classify(client, w, h, BorderBandWidth)))
	}
	return s.setCursor(CursorDefault)
}

// resize applies the active region's rule against the press-time rect.
func (s State) resize(cursor Point) (State, Effect) {
	if s.Locked {
		return s, Effect{}
	}
	table := literalEdges
	if s.Policy.AllEdges {
		table = allEdges
	}
	d, ok := table[s.Drag.Region]
	if !ok {
		return s, Effect{}
	}

	dx := cursor.X - s.Drag.DownPoint.X
	dy := cursor.Y - s.Drag.DownPoint.Y
	down := s.Drag.DownRect
	next := s.Geometry
	if d.x != 0 {
		next.X = down.X + d.x*dx
	}
	if d.y != 0 {
		next.Y = down.Y + d.y*dy
	}
	if d.w != 0 {
		next.Width = down.Width + d.w*dx
	}
	if d.h != 0 {
		next.Height = down.Height + d.h*dy
	}
	return s.setGeometry(s.clampEdges(next, d))
}

// clampEdges enforces MinSize while keeping the edge opposite the dragged
// one in place.
func (s State) clampEdges(r Rect, d edgeDelta) Rect {
	minSize := s.Policy.MinSize
	if minSize <= 0 {
		return r
	}
	if r.Width < minSize {
		if d.x != 0 {
			r.X += r.Width - minSize
		}
		r.Width = minSize
	}
	if r.Height < minSize {
		if d.y != 0 {
			r.Y += r.Height - minSize
		}
		r.Height = minSize
	}
	return r
}

func (s State) key(ev KeyPress) (State, Effect) {
	switch ev.Key {
	case KeySpace:
		return s.toggle()
	case KeyEnter:
		return s, Effect{Message: s.DimensionsText()}
	case KeyLeft, KeyRight, KeyUp, KeyDown:
	default:
		return s, Effect{}
	}

	step := s.Policy.Step
	if ev.Ctrl {
		step = s.Policy.FineStep
	}
	g := s.Geometry
	if ev.Shift {
		if s.Locked && s.Policy.LockKeyboard {
			return s, Effect{}
		}
		switch ev.Key {
		case KeyRight:
			g.Width += step
		case KeyLeft:
			g.Width -= step
		case KeyUp:
			g.Height -= step
		case KeyDown:
			g.Height += step
		}
		g.Width, g.Height = clampSize(g.Width, g.Height, s.Policy.MinSize)
	} else {
		switch ev.Key {
		case KeyRight:
			g.X += step
		case KeyLeft:
			g.X -= step
		case KeyUp:
			g.Y -= step
		case KeyDown:
			g.Y += step
		}
	}
	return s.setGeometry(g)
}

func (s State) command(c Command) (State, Effect) {
	switch c.Kind {
	case CmdToggleVertical:
		return s.toggle()
	case CmdToggleLock:
		s.Locked = !s.Locked
		return s, Effect{Window: true}
	case CmdToggleToolTip:
		s.ShowToolTip = !s.ShowToolTip
		return s, Effect{Window: true, Render: true}
	case CmdToggleTopMost:
		s.TopMost = !s.TopMost
		return s, Effect{Window: true}
	case CmdSetOpacity:
		if c.Opacity <= 0 || c.Opacity > 1 {
			return s, Effect{}
		}
		s.Opacity = c.Opacity
		return s, Effect{Window: true, Render: true}
	case CmdSetSize:
		g := s.Geometry
		g.Width, g.Height = clampSize(c.Width, c.Height, s.Policy.MinSize)
		return s.setGeometry(g)
	}
	return s, Effect{}
}

func (s State) setGeometry(g Rect) (State, Effect) {
	if g == s.Geometry {
		return s, Effect{}
	}
	s.Geometry = g
	return s, Effect{Geometry: true, Render: true}
}

func (s State) setCursor(c Cursor) (State, Effect) {
	if c == s.Cursor {
		return s, Effect{}
	}
	s.Cursor = c
	return s, Effect{CursorChanged: true}
}
