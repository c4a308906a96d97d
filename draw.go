package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"goruler/ruler"
)

// drawOps paints renderer output onto dst in the logical frame. Strokes are
// offset by half a pixel so one-pixel lines land on whole pixels.
func drawOps(dst *ebiten.Image, ops []ruler.DrawOp, face text.Face, pal palette) {
	dst.Fill(pal.Background)
	for _, op := range ops {
		switch op.Kind {
		case ruler.OpRect:
			vector.StrokeRect(dst,
				float32(op.X0)+0.5, float32(op.Y0)+0.5,
				float32(op.X1-op.X0), float32(op.Y1-op.Y0),
				1, pal.Ink, false)
		case ruler.OpLine:
			vector.StrokeLine(dst,
				float32(op.X0)+0.5, float32(op.Y0),
				float32(op.X1)+0.5, float32(op.Y1),
				1, pal.Ink, false)
		case ruler.OpText:
			drawLabel(dst, op.Text, face, float64(op.X0), float64(op.Y0), pal.Ink)
		}
	}
}

func drawLabel(dst *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	top := &text.DrawOptions{}
	top.GeoM.Translate(x, y)
	top.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, top)
}

// rulerDrawOptions places the logical image on the window: rotated a
// quarter turn clockwise and shifted right by the window width when
// vertical, faded to the window opacity.
func rulerDrawOptions(t ruler.Transform, opacity float64) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	if t.Vertical {
		op.GeoM.Rotate(t.Rotation())
		op.GeoM.Translate(float64(t.Width), 0)
	}
	op.ColorScale.ScaleAlpha(float32(opacity))
	return op
}

// drawPanel fills a bordered box, used by the menu, tooltip and prompt.
func drawPanel(dst *ebiten.Image, r ruler.Rect, fill, border color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), fill, false)
	vector.StrokeRect(dst, float32(r.X)+0.5, float32(r.Y)+0.5, float32(r.Width-1), float32(r.Height-1), 1, border, false)
}
