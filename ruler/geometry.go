package ruler

// Point is an integer pixel position.
type Point struct {
	X int
	Y int
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Rect is a window rectangle in integer pixels. For window geometry X/Y are
// screen coordinates; for client rects they are zero.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Contains reports whether p lies within r. The right and bottom edges are
// exclusive, matching pixel cells.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X < r.X+r.Width && p.Y < r.Y+r.Height
}

// Inflate grows r by dx on the left and right and dy on the top and bottom.
// Negative values deflate it.
func (r Rect) Inflate(dx, dy int) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, Width: r.Width + 2*dx, Height: r.Height + 2*dy}
}

// Client returns r translated to the origin.
func (r Rect) Client() Rect { return Rect{Width: r.Width, Height: r.Height} }

// clampSize enforces a minimum width and height. A minSize of zero or less
// disables clamping.
func clampSize(w, h, minSize int) (int, int) {
	if minSize <= 0 {
		return w, h
	}
	if w < minSize {
		w = minSize
	}
	if h < minSize {
		h = minSize
	}
	return w, h
}
