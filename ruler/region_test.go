package ruler

import "testing"

func TestClassifyCorners(t *testing.T) {
	w, h := 100, 50
	cases := []struct {
		p    Point
		want Region
	}{
		{Point{0, 0}, RegionNW},
		{Point{5, 5}, RegionNW},
		{Point{95, 0}, RegionNE},
		{Point{99, 5}, RegionNE},
		{Point{0, 45}, RegionSW},
		{Point{5, 49}, RegionSW},
		{Point{95, 45}, RegionSE},
		{Point{99, 49}, RegionSE},
	}
	for _, c := range cases {
		if got := Classify(c.p, w, h, BorderBandWidth); got != c.want {
			t.Fatalf("Classify(%+v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestClassifyEdges(t *testing.T) {
	w, h := 100, 50
	if got := Classify(Point{50, 2}, w, h, BorderBandWidth); got != RegionN {
		t.Fatalf("top edge: got %v", got)
	}
	if got := Classify(Point{50, 47}, w, h, BorderBandWidth); got != RegionS {
		t.Fatalf("bottom edge: got %v", got)
	}
	if got := Classify(Point{2, 20}, w, h, BorderBandWidth); got != RegionW {
		t.Fatalf("left edge: got %v", got)
	}
	if got := Classify(Point{97, 20}, w, h, BorderBandWidth); got != RegionE {
		t.Fatalf("right edge: got %v", got)
	}
}

func TestClassifyNeverReturnsNone(t *testing.T) {
	w, h := 60, 30
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := Point{x, y}
			if !InBand(p, w, h, BorderBandWidth) {
				continue
			}
			if got := Classify(p, w, h, BorderBandWidth); got == RegionNone {
				t.Fatalf("Classify(%+v) returned none", p)
			}
		}
	}
}

func TestInBand(t *testing.T) {
	w, h := 100, 50
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{50, 25}, false}, // interior
		{Point{5, 5}, false},   // first inner pixel
		{Point{4, 25}, true},
		{Point{95, 25}, true},
		{Point{50, 45}, true},
		{Point{0, 0}, true},
		{Point{100, 25}, false}, // outside
		{Point{-1, 25}, false},
		{Point{50, 50}, false},
	}
	for _, c := range cases {
		if got := InBand(c.p, w, h, BorderBandWidth); got != c.want {
			t.Fatalf("InBand(%+v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestCursorFor(t *testing.T) {
	want := map[Region]Cursor{
		RegionN:    CursorNSResize,
		RegionS:    CursorNSResize,
		RegionE:    CursorEWResize,
		RegionW:    CursorEWResize,
		RegionNW:   CursorNWSEResize,
		RegionSE:   CursorNWSEResize,
		RegionNE:   CursorNESWResize,
		RegionSW:   CursorNESWResize,
		RegionNone: CursorNESWResize,
	}
	for r, c := range want {
		if got := CursorFor(r); got != c {
			t.Fatalf("CursorFor(%v) = %v, want %v", r, got, c)
		}
	}
}

func TestRegionString(t *testing.T) {
	if RegionSE.String() != "SE" || RegionNone.String() != "none" || Region(42).String() != "unknown" {
		t.Fatalf("unexpected region names")
	}
}
