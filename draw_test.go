package main

import (
	"testing"

	"goruler/ruler"
)

func TestRulerDrawOptionsMatchesTransform(t *testing.T) {
	tr := ruler.Transform{Vertical: true, Width: 75, Height: 400}
	op := rulerDrawOptions(tr, 0.5)
	for _, p := range []ruler.Point{{X: 0, Y: 0}, {X: 10, Y: 3}, {X: 399, Y: 74}} {
		// Sample the centre of the logical pixel.
		x, y := op.GeoM.Apply(float64(p.X)+0.5, float64(p.Y)+0.5)
		want := tr.Apply(p)
		if int(x) != want.X || int(y) != want.Y {
			t.Fatalf("logical %v drawn at (%v,%v), want %v", p, x, y, want)
		}
	}
}

func TestRulerDrawOptionsHorizontalIsIdentity(t *testing.T) {
	op := rulerDrawOptions(ruler.Transform{Width: 400, Height: 75}, 1)
	x, y := op.GeoM.Apply(12, 34)
	if x != 12 || y != 34 {
		t.Fatalf("horizontal ruler moved: (%v,%v)", x, y)
	}
}
