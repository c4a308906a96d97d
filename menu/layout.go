package menu

import "goruler/ruler"

// Metrics sizes the menu. Measure returns the pixel width of a label.
type Metrics struct {
	Measure         func(string) int
	ItemHeight      int
	SeparatorHeight int
	// Gutter is the space left of labels reserved for check marks.
	Gutter  int
	Padding int
}

// Selection is the result of clicking an actionable item.
type Selection struct {
	Action  Action
	Opacity float64
}

// Result classifies a click.
type Result int

const (
	// ResultNone means the click landed on the menu but chose nothing.
	ResultNone Result = iota
	// ResultSelected means Selection holds the chosen action.
	ResultSelected
	// ResultOutside means the click missed the menu; the host closes it.
	ResultOutside
)

// Menu is an open context menu in client coordinates.
type Menu struct {
	Items   []Item
	Origin  ruler.Point
	Metrics Metrics

	// Hover is the hovered main item, or -1.
	Hover int
	// SubOpen is the main item whose submenu is shown, or -1.
	SubOpen int
	// SubHover is the hovered submenu item, or -1.
	SubHover int
}

// Open lays out items at origin.
func Open(items []Item, origin ruler.Point, m Metrics) *Menu {
	return &Menu{Items: items, Origin: origin, Metrics: m, Hover: -1, SubOpen: -1, SubHover: -1}
}

func (m *Menu) width(items []Item) int {
	w := 0
	for _, it := range items {
		if it.Separator {
			continue
		}
		if lw := m.Metrics.Measure(it.Label); lw > w {
			w = lw
		}
	}
	return w + m.Metrics.Gutter + 2*m.Metrics.Padding
}

func (m *Menu) rowsAt(items []Item, origin ruler.Point) []ruler.Rect {
	w := m.width(items)
	rects := make([]ruler.Rect, len(items))
	y := origin.Y
	for i, it := range items {
		h := m.Metrics.ItemHeight
		if it.Separator {
			h = m.Metrics.SeparatorHeight
		}
		rects[i] = ruler.Rect{X: origin.X, Y: y, Width: w, Height: h}
		y += h
	}
	return rects
}

// Rows returns the rect of each main item.
func (m *Menu) Rows() []ruler.Rect {
	return m.rowsAt(m.Items, m.Origin)
}

// SubRows returns the rects of the open submenu, placed beside its parent.
func (m *Menu) SubRows() []ruler.Rect {
	if m.SubOpen < 0 || m.SubOpen >= len(m.Items) {
		return nil
	}
	parent := m.Rows()[m.SubOpen]
	return m.rowsAt(m.Items[m.SubOpen].Sub, ruler.Point{X: parent.X + parent.Width, Y: parent.Y})
}

// Frame returns the rect enclosing the main items.
func (m *Menu) Frame() ruler.Rect {
	return frame(m.Rows())
}

// SubFrame returns the rect enclosing the open submenu, if any.
func (m *Menu) SubFrame() (ruler.Rect, bool) {
	rows := m.SubRows()
	if len(rows) == 0 {
		return ruler.Rect{}, false
	}
	return frame(rows), true
}

// Bounds encloses the menu and any open submenu.
func (m *Menu) Bounds() ruler.Rect {
	b := m.Frame()
	if sub, ok := m.SubFrame(); ok {
		b = union(b, sub)
	}
	return b
}

// Move updates hover state for the pointer at p.
func (m *Menu) Move(p ruler.Point) {
	if i := hit(m.SubRows(), p); i >= 0 {
		m.SubHover = i
		return
	}
	m.SubHover = -1
	m.Hover = hit(m.Rows(), p)
	if m.Hover < 0 {
		return
	}
	if len(m.Items[m.Hover].Sub) > 0 {
		m.SubOpen = m.Hover
	} else {
		m.SubOpen = -1
	}
}

// Click resolves a primary click at p.
func (m *Menu) Click(p ruler.Point) (Selection, Result) {
	if i := hit(m.SubRows(), p); i >= 0 {
		it := m.Items[m.SubOpen].Sub[i]
		return Selection{Action: it.Action, Opacity: it.Opacity}, ResultSelected
	}
	i := hit(m.Rows(), p)
	if i < 0 {
		return Selection{}, ResultOutside
	}
	it := m.Items[i]
	switch {
	case it.Separator:
		return Selection{}, ResultNone
	case len(it.Sub) > 0:
		if m.SubOpen == i {
			m.SubOpen = -1
		} else {
			m.SubOpen = i
		}
		return Selection{}, ResultNone
	}
	return Selection{Action: it.Action}, ResultSelected
}

func hit(rows []ruler.Rect, p ruler.Point) int {
	for i, r := range rows {
		if r.Contains(p) {
			return i
		}
	}
	return -1
}

func frame(rows []ruler.Rect) ruler.Rect {
	if len(rows) == 0 {
		return ruler.Rect{}
	}
	b := rows[0]
	for _, r := range rows[1:] {
		b = union(b, r)
	}
	return b
}

func union(a, b ruler.Rect) ruler.Rect {
	x0, y0 := min(a.X, b.X), min(a.Y, b.Y)
	x1, y1 := max(a.X+a.Width, b.X+b.Width), max(a.Y+a.Height, b.Y+b.Height)
	return ruler.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
