package ruler

import "math"

// ToggleOrientation flips between horizontal and vertical and swaps the
// window's width and height. Applying it twice restores the original size.
func (s State) ToggleOrientation() State {
	s.Vertical = !s.Vertical
	s.Geometry.Width, s.Geometry.Height = s.Geometry.Height, s.Geometry.Width
	return s
}

// Transform maps the renderer's unrotated logical frame onto the window.
type Transform struct {
	Vertical bool
	// Width and Height are the window's client size.
	Width  int
	Height int
}

// Transform returns the paint transform for the current geometry.
func (s State) Transform() Transform {
	return Transform{Vertical: s.Vertical, Width: s.Geometry.Width, Height: s.Geometry.Height}
}

// Logical returns the size the renderer draws into. Width is always the
// ruler's long axis.
func (t Transform) Logical() (int, int) {
	if t.Vertical {
		return t.Height, t.Width
	}
	return t.Width, t.Height
}

// Rotation is the clockwise rotation in radians applied before drawing.
func (t Transform) Rotation() float64 {
	if t.Vertical {
		return math.Pi / 2
	}
	return 0
}

// Apply maps a logical pixel to the window pixel it lands on: a 90 degree
// rotation followed by a translation of -Width+1 when vertical.
func (t Transform) Apply(p Point) Point {
	if !t.Vertical {
		return p
	}
	return Point{X: t.Width - 1 - p.Y, Y: p.X}
}
