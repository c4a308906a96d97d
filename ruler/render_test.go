package ruler

import (
	"reflect"
	"testing"
)

func TestSizeString(t *testing.T) {
	if got := SizeString(96); got != "96px, 25.40mm" {
		t.Fatalf("SizeString(96) = %q", got)
	}
	if got := SizeString(0); got != "0px, 0.00mm" {
		t.Fatalf("SizeString(0) = %q", got)
	}
}

func TestMillimeterTicksWidth100(t *testing.T) {
	ticks := MillimeterTicks(100)
	if len(ticks) != 27 {
		t.Fatalf("expected 27 ticks, got %d", len(ticks))
	}
	last := ticks[len(ticks)-1]
	if last.Index != 26 || last.X != 98 {
		t.Fatalf("unexpected last tick %+v", last)
	}
	for _, tk := range ticks {
		if tk.Label != "" && tk.Index != 0 {
			t.Fatalf("unexpected label on tick %d", tk.Index)
		}
		if !tk.Top {
			t.Fatalf("millimeter ticks hang from the top")
		}
	}
	if ticks[0].Label != "0mm" || ticks[0].Height != 15 {
		t.Fatalf("unexpected first tick %+v", ticks[0])
	}
	if ticks[10].Height != 10 || ticks[11].Height != 5 {
		t.Fatalf("unexpected tick heights %d %d", ticks[10].Height, ticks[11].Height)
	}
}

func TestMillimeterTicksLabelAt50(t *testing.T) {
	ticks := MillimeterTicks(200)
	if len(ticks) != 53 {
		t.Fatalf("expected 53 ticks, got %d", len(ticks))
	}
	if ticks[50].Label != "50mm" || ticks[50].X != 188 || ticks[50].Height != 15 {
		t.Fatalf("unexpected 50mm tick %+v", ticks[50])
	}
}

func TestPixelTicks(t *testing.T) {
	ticks := PixelTicks(100)
	if len(ticks) != 50 {
		t.Fatalf("expected 50 ticks, got %d", len(ticks))
	}
	for _, tk := range ticks {
		if tk.X%2 != 0 || tk.Top {
			t.Fatalf("bad pixel tick %+v", tk)
		}
	}
	if ticks[0].Label != "0px" || ticks[5].Height != 10 || ticks[1].Height != 5 {
		t.Fatalf("unexpected pixel ticks %+v %+v %+v", ticks[0], ticks[5], ticks[1])
	}
	if got := PixelTicks(201); got[50].Label != "100px" || got[100].Label != "200px" {
		t.Fatalf("missing hundred labels")
	}
}

func TestRenderLayout(t *testing.T) {
	ops := Render(100, 40)
	// border, size label, 27 mm ticks + 1 label, 50 px ticks + 1 label
	if len(ops) != 81 {
		t.Fatalf("expected 81 ops, got %d", len(ops))
	}
	if ops[0] != (DrawOp{Kind: OpRect, X1: 99, Y1: 39}) {
		t.Fatalf("unexpected border %+v", ops[0])
	}
	want := DrawOp{Kind: OpText, X0: 10, Y0: 12, Text: "100px, 26.46mm"}
	if ops[1] != want {
		t.Fatalf("unexpected size label %+v", ops[1])
	}
	if ops[2] != (DrawOp{Kind: OpText, X0: 0, Y0: 15, Text: "0mm"}) {
		t.Fatalf("unexpected first label %+v", ops[2])
	}
	if ops[3] != (DrawOp{Kind: OpLine, X0: 0, Y0: 0, X1: 0, Y1: 15}) {
		t.Fatalf("unexpected first tick %+v", ops[3])
	}
}

func TestRenderBottomLabels(t *testing.T) {
	ops := Renderer{LabelHeight: 16}.Render(200, 50)
	var found bool
	for i, op := range ops {
		if op.Kind == OpText && op.Text == "100px" {
			found = true
			if op.X0 != 100 || op.Y0 != 19 {
				t.Fatalf("100px label at %d,%d", op.X0, op.Y0)
			}
			next := ops[i+1]
			if next != (DrawOp{Kind: OpLine, X0: 100, Y0: 50, X1: 100, Y1: 35}) {
				t.Fatalf("unexpected tick after label %+v", next)
			}
		}
	}
	if !found {
		t.Fatalf("missing 100px label")
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	a := Render(640, 75)
	b := Render(640, 75)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("render output differs between calls")
	}
}
