package main

import (
	"testing"

	"goruler/menu"
	"goruler/ruler"
)

type fakeWindow struct {
	x, y     int
	w, h     int
	cursor   ruler.Cursor
	floating bool
	sizes    int
}

func (f *fakeWindow) Position() (int, int) { return f.x, f.y }
func (f *fakeWindow) SetPosition(x, y int) { f.x, f.y = x, y }
func (f *fakeWindow) SetSize(w, h int) {
	f.w, f.h = w, h
	f.sizes++
}
func (f *fakeWindow) SetCursor(c ruler.Cursor) { f.cursor = c }
func (f *fakeWindow) SetFloating(on bool) { f.floating = on }

func newTestController(info ruler.Info) (*controller, *fakeWindow) {
	win := &fakeWindow{}
	c := newController(ruler.NewState(info, ruler.DefaultPolicy()), win)
	c.start()
	return c, win
}

func TestControllerStartPushesGeometry(t *testing.T) {
	_, win := newTestController(ruler.Info{X: 30, Y: 40, Width: 400, Height: 75, TopMost: true, Opacity: 1})
	if win.x != 30 || win.y != 40 || win.w != 400 || win.h != 75 || !win.floating {
		t.Fatalf("window not initialised: %+v", win)
	}
}

func TestControllerDragResizesWindow(t *testing.T) {
	c, win := newTestController(ruler.Info{X: 100, Y: 100, Width: 200, Height: 100, Opacity: 1})

	press := c.screenPoint(ruler.Point{X: 198, Y: 50})
	c.dispatch(ruler.Press{Screen: press})
	c.dispatch(ruler.Motion{Screen: c.screenPoint(ruler.Point{X: 199, Y: 50}), Held: true})
	if win.cursor != ruler.CursorEWResize {
		t.Fatalf("cursor not updated: %v", win.cursor)
	}
	c.dispatch(ruler.Motion{Screen: ruler.Point{X: 330, Y: 150}, Held: true})
	if win.w != 232 || win.h != 100 {
		t.Fatalf("expected 232x100, got %dx%d", win.w, win.h)
	}
	if !c.dirty {
		t.Fatalf("resize did not request a redraw")
	}
	c.dispatch(ruler.Release{})
	if c.state.Phase != ruler.PhaseIdle {
		t.Fatalf("release left phase %v", c.state.Phase)
	}
}

func TestControllerMoveUsesWindowPosition(t *testing.T) {
	c, win := newTestController(ruler.Info{X: 100, Y: 100, Width: 400, Height: 75, Opacity: 1})
	c.dispatch(ruler.Press{Screen: c.screenPoint(ruler.Point{X: 200, Y: 30})})
	c.dispatch(ruler.Motion{Screen: c.screenPoint(ruler.Point{X: 210, Y: 35}), Held: true})
	if win.x != 110 || win.y != 105 {
		t.Fatalf("expected window at 110,105, got %d,%d", win.x, win.y)
	}
}

func TestControllerOverlayGrowsWindow(t *testing.T) {
	c, win := newTestController(ruler.Info{Width: 400, Height: 75, Opacity: 1})
	c.setOverlay(180, 260)
	if win.w != 400 || win.h != 260 {
		t.Fatalf("expected 400x260, got %dx%d", win.w, win.h)
	}
	if c.state.Geometry.Height != 75 {
		t.Fatalf("overlay changed ruler geometry")
	}
	n := win.sizes
	c.setOverlay(180, 260)
	if win.sizes != n {
		t.Fatalf("unchanged overlay resized the window")
	}
	c.setOverlay(0, 0)
	if win.w != 400 || win.h != 75 {
		t.Fatalf("overlay not released: %dx%d", win.w, win.h)
	}
}

func TestControllerEnterReportsMessage(t *testing.T) {
	c, _ := newTestController(ruler.Info{Width: 96, Height: 96, Opacity: 1})
	var got string
	c.onMessage = func(s string) { got = s }
	c.dispatch(ruler.KeyPress{Key: ruler.KeyEnter})
	if got != "Width: 96px, 25.40mm\nHeight: 96px, 25.40mm" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestCommandForMenuActions(t *testing.T) {
	c, win := newTestController(ruler.Info{Width: 400, Height: 75, Opacity: 1})
	for _, sel := range []menu.Selection{
		{Action: menu.ActionTopMost},
		{Action: menu.ActionLock},
		{Action: menu.ActionOpacity, Opacity: 0.6},
		{Action: menu.ActionVertical},
	} {
		cmd, ok := commandFor(sel)
		if !ok {
			t.Fatalf("no command for %v", sel.Action)
		}
		c.dispatch(cmd)
	}
	info := c.state.Info()
	if !info.TopMost || !win.floating || !info.Locked || info.Opacity != 0.6 || !info.Vertical {
		t.Fatalf("menu commands not applied: %+v", info)
	}
	if win.w != 75 || win.h != 400 {
		t.Fatalf("vertical did not swap window size: %dx%d", win.w, win.h)
	}
	if _, ok := commandFor(menu.Selection{Action: menu.ActionDuplicate}); ok {
		t.Fatalf("duplicate is not a reducer command")
	}
}
