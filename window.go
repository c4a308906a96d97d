package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"goruler/ruler"
)

// platformWindow is the slice of the window system the controller needs.
// Painting and input are driven by the Ebitengine loop calling Game.
type platformWindow interface {
	Position() (int, int)
	SetPosition(x, y int)
	SetSize(w, h int)
	SetCursor(c ruler.Cursor)
	SetFloating(on bool)
}

// ebitenWindow adapts the Ebitengine window functions.
type ebitenWindow struct {
	cursor ebiten.CursorShapeType
}

func (w *ebitenWindow) Position() (int, int) { return ebiten.WindowPosition() }

func (w *ebitenWindow) SetPosition(x, y int) { ebiten.SetWindowPosition(x, y) }

// SetSize forwards to Ebitengine, which panics on non-positive sizes; the
// reducer may produce those when clamping is disabled.
func (w *ebitenWindow) SetSize(width, height int) {
	ebiten.SetWindowSize(max(width, 1), max(height, 1))
}

func (w *ebitenWindow) SetCursor(c ruler.Cursor) {
	shape := cursorShape(c)
	if shape == w.cursor {
		return
	}
	ebiten.SetCursorShape(shape)
	w.cursor = shape
}

func (w *ebitenWindow) SetFloating(on bool) { ebiten.SetWindowFloating(on) }

func cursorShape(c ruler.Cursor) ebiten.CursorShapeType {
	switch c {
	case ruler.CursorNSResize:
		return ebiten.CursorShapeNSResize
	case ruler.CursorEWResize:
		return ebiten.CursorShapeEWResize
	case ruler.CursorNWSEResize:
		return ebiten.CursorShapeNWSEResize
	case ruler.CursorNESWResize:
		return ebiten.CursorShapeNESWResize
	default:
		return ebiten.CursorShapeDefault
	}
}
