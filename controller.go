package main

import (
	"goruler/menu"
	"goruler/ruler"
)

// controller owns the ruler state and pushes every reduction's effects to
// the platform window. The menu and dialogs only read state.Info().
type controller struct {
	state ruler.State
	win   platformWindow

	// overlayW and overlayH are the client size a popup needs. The window
	// grows to cover it while the ruler geometry stays unchanged.
	overlayW int
	overlayH int

	// dirty is set when the ruler image must be redrawn.
	dirty bool

	onMessage func(string)
}

func newController(state ruler.State, win platformWindow) *controller {
	return &controller{state: state, win: win, dirty: true}
}

// start pushes the initial geometry and flags to the window.
func (c *controller) start() {
	c.syncWindow()
	c.win.SetFloating(c.state.TopMost)
	c.win.SetCursor(c.state.Cursor)
}

// dispatch reduces ev and applies the resulting effect.
func (c *controller) dispatch(ev ruler.Event) ruler.Effect {
	prev := c.state
	next, eff := c.state.Reduce(ev)
	c.state = next
	if prev.Phase != next.Phase {
		logDebug("phase %v -> %v (region %v)", prev.Phase, next.Phase, next.Drag.Region)
	}
	c.apply(eff)
	return eff
}

func (c *controller) apply(eff ruler.Effect) {
	if eff.Geometry {
		c.syncWindow()
	}
	if eff.CursorChanged {
		c.win.SetCursor(c.state.Cursor)
	}
	if eff.Window {
		c.win.SetFloating(c.state.TopMost)
	}
	if eff.Render || eff.Geometry {
		c.dirty = true
	}
	if eff.Message != "" && c.onMessage != nil {
		c.onMessage(eff.Message)
	}
}

// clientSize is the window size: the ruler, grown to fit any overlay.
func (c *controller) clientSize() (int, int) {
	g := c.state.Geometry
	return max(g.Width, c.overlayW), max(g.Height, c.overlayH)
}

func (c *controller) syncWindow() {
	g := c.state.Geometry
	w, h := c.clientSize()
	c.win.SetPosition(g.X, g.Y)
	c.win.SetSize(w, h)
}

// setOverlay requests room for a popup; zero releases it.
func (c *controller) setOverlay(w, h int) {
	if w == c.overlayW && h == c.overlayH {
		return
	}
	c.overlayW, c.overlayH = w, h
	c.syncWindow()
}

// screenPoint converts a client cursor position to screen coordinates using
// where the window actually is, which may lag behind the state while the
// window system catches up.
func (c *controller) screenPoint(client ruler.Point) ruler.Point {
	x, y := c.win.Position()
	return client.Add(ruler.Point{X: x, Y: y})
}

// commandFor maps the state-changing menu actions to reducer commands.
func commandFor(sel menu.Selection) (ruler.Command, bool) {
	switch sel.Action {
	case menu.ActionTopMost:
		return ruler.Command{Kind: ruler.CmdToggleTopMost}, true
	case menu.ActionVertical:
		return ruler.Command{Kind: ruler.CmdToggleVertical}, true
	case menu.ActionToolTip:
		return ruler.Command{Kind: ruler.CmdToggleToolTip}, true
	case menu.ActionLock:
		return ruler.Command{Kind: ruler.CmdToggleLock}, true
	case menu.ActionOpacity:
		return ruler.Command{Kind: ruler.CmdSetOpacity, Opacity: sel.Opacity}, true
	}
	return ruler.Command{}, false
}
