package ruler

import (
	"fmt"
	"strconv"
)

// OpKind identifies a drawing primitive.
type OpKind int

const (
	OpRect OpKind = iota
	OpLine
	OpText
)

// String returns the primitive name.
func (k OpKind) String() string {
	switch k {
	case OpRect:
		return "rect"
	case OpLine:
		return "line"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// DrawOp is one drawing primitive in the logical frame.
//
// Rects use (X0,Y0)-(X1,Y1) as inclusive corners, lines run from (X0,Y0) to
// (X1,Y1), and text is drawn with its top-left corner at (X0,Y0).
type DrawOp struct {
	Kind OpKind
	X0   int
	Y0   int
	X1   int
	Y1   int
	Text string
}

// Tick is one mark along the long axis.
type Tick struct {
	Index  int
	X      int
	Height int
	// Top ticks hang from the top edge; the others rise from the bottom.
	Top   bool
	Label string
}

// SizeString formats a pixel length with its millimeter equivalent.
func SizeString(pixels int) string {
	return fmt.Sprintf("%dpx, %.2fmm", pixels, float64(pixels)/PixelsPerMillimeter)
}

// MillimeterTicks returns the top ticks for a ruler of the given logical
// width. The loop compares the unrounded position; only the drawn X is
// truncated.
func MillimeterTicks(width int) []Tick {
	var ticks []Tick
	for i := 0; float64(i)*PixelsPerMillimeter < float64(width); i++ {
		t := Tick{Index: i, X: int(float64(i) * PixelsPerMillimeter), Top: true}
		switch {
		case i%50 == 0:
			t.Height = majorTick
			t.Label = strconv.Itoa(i) + "mm"
		case i%10 == 0:
			t.Height = midTick
		default:
			t.Height = minorTick
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// PixelTicks returns the bottom ticks, one every two pixels.
func PixelTicks(width int) []Tick {
	var ticks []Tick
	for i := 0; i < width; i += 2 {
		t := Tick{Index: i, X: i}
		switch {
		case i%100 == 0:
			t.Height = majorTick
			t.Label = strconv.Itoa(i) + "px"
		case i%10 == 0:
			t.Height = midTick
		default:
			t.Height = minorTick
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// Renderer turns a logical ruler size into drawing operations.
type Renderer struct {
	// LabelHeight is the line height of the label font.
	LabelHeight int
}

// Render draws a ruler using DefaultLabelHeight.
func Render(width, height int) []DrawOp {
	return Renderer{LabelHeight: DefaultLabelHeight}.Render(width, height)
}

// Render returns the border, the size label, the millimeter ticks and the
// pixel ticks, in that order. It has no side effects.
func (r Renderer) Render(width, height int) []DrawOp {
	mm := MillimeterTicks(width)
	px := PixelTicks(width)
	ops := make([]DrawOp, 0, 2+len(mm)+len(px)+len(mm)/50+len(px)/50+2)

	ops = append(ops, DrawOp{Kind: OpRect, X0: 0, Y0: 0, X1: width - 1, Y1: height - 1})
	ops = append(ops, DrawOp{Kind: OpText, X0: sizeLabelX, Y0: height/2 - r.LabelHeight/2, Text: SizeString(width)})

	for _, t := range mm {
		ops = r.appendTick(ops, t, height)
	}
	for _, t := range px {
		ops = r.appendTick(ops, t, height)
	}
	return ops
}

func (r Renderer) appendTick(ops []DrawOp, t Tick, height int) []DrawOp {
	if t.Label != "" {
		y := t.Height
		if !t.Top {
			y = height - t.Height - r.LabelHeight
		}
		ops = append(ops, DrawOp{Kind: OpText, X0: t.X, Y0: y, Text: t.Label})
	}
	if t.Top {
		return append(ops, DrawOp{Kind: OpLine, X0: t.X, Y0: 0, X1: t.X, Y1: t.Height})
	}
	return append(ops, DrawOp{Kind: OpLine, X0: t.X, Y0: height, X1: t.X, Y1: height - t.Height})
}
