package ruler

// Region identifies which part of the border band the cursor is over.
type Region int

const (
	RegionNone Region = iota
	RegionN
	RegionNE
	RegionE
	RegionSE
	RegionS
	RegionSW
	RegionW
	RegionNW
)

// String returns the compass name of the region.
func (r Region) String() string {
	switch r {
	case RegionNone:
		return "none"
	case RegionN:
		return "N"
	case RegionNE:
		return "NE"
	case RegionE:
		return "E"
	case RegionSE:
		return "SE"
	case RegionS:
		return "S"
	case RegionSW:
		return "SW"
	case RegionW:
		return "W"
	case RegionNW:
		return "NW"
	default:
		return "unknown"
	}
}

// Cursor is a platform-neutral pointer shape.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorNSResize
	CursorEWResize
	CursorNWSEResize
	CursorNESWResize
)

// String returns a short name for logging.
func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorNSResize:
		return "ns-resize"
	case CursorEWResize:
		return "ew-resize"
	case CursorNWSEResize:
		return "nwse-resize"
	case CursorNESWResize:
		return "nesw-resize"
	default:
		return "unknown"
	}
}

// InBand reports whether a client-space point is inside the client rect but
// outside the rect deflated by band on every side. Only such points may be
// passed to Classify.
func InBand(p Point, clientWidth, clientHeight, band int) bool {
	outer := Rect{Width: clientWidth, Height: clientHeight}
	inner := outer.Inflate(-band, -band)
	return outer.Contains(p) && !inner.Contains(p)
}

// Classify maps a point in the border band to a region. Corners win over
// edges. Any point that is neither in the top nor the bottom band reports W
// or E, so callers must gate with InBand first; Classify never returns
// RegionNone.
func Classify(p Point, clientWidth, clientHeight, band int) Region {
	switch {
	case p.Y <= band:
		switch {
		case p.X <= band:
			return RegionNW
		case p.X >= clientWidth-band:
			return RegionNE
		default:
			return RegionN
		}
	case p.Y >= clientHeight-band:
		switch {
		case p.X <= band:
			return RegionSW
		case p.X >= clientWidth-band:
			return RegionSE
		default:
			return RegionS
		}
	case p.X <= band:
		return RegionW
	default:
		return RegionE
	}
}

// CursorFor returns the resize cursor shown over a region. NE, SW and any
// unrecognised region fall back to the NE-SW diagonal.
func CursorFor(r Region) Cursor {
	switch r {
	case RegionN, RegionS:
		return CursorNSResize
	case RegionE, RegionW:
		return CursorEWResize
	case RegionNW, RegionSE:
		return CursorNWSEResize
	default:
		return CursorNESWResize
	}
}

// edgeDelta describes how a region converts a cursor delta into geometry
// changes. Each field is a multiplier applied to dx (for X and Width) or dy
// (for Y and Height).
type edgeDelta struct {
	x, y, w, h int
}

// literalEdges only lets the right and bottom edges move.
var literalEdges = map[Region]edgeDelta{
	RegionE:  {w: 1},
	RegionS:  {h: 1},
	RegionSE: {w: 1, h: 1},
}

// allEdges makes every border and corner draggable. West and north edges move
// the origin and shrink the size by the same amount so the opposite edge stays
// fixed.
var allEdges = map[Region]edgeDelta{
	RegionN:  {y: 1, h: -1},
	RegionNE: {y: 1, w: 1, h: -1},
	RegionE:  {w: 1},
	RegionSE: {w: 1, h: 1},
	RegionS:  {h: 1},
	RegionSW: {x: 1, w: -1, h: 1},
	RegionW:  {x: 1, w: -1},
	RegionNW: {x: 1, y: 1, w: -1, h: -1},
}
