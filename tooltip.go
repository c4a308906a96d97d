package main

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"goruler/ruler"
)

const toolTipPad = 4

// toolTip shows the dimensions after the pointer rests over the ruler.
type toolTip struct {
	delay time.Duration

	at      ruler.Point
	since   time.Time
	visible bool
}

// update tracks the pointer at client point p. enabled is false while the
// tooltip is switched off, a button is down or the pointer left the window.
func (t *toolTip) update(now time.Time, p ruler.Point, enabled bool) {
	if !enabled {
		t.hide()
		return
	}
	if p != t.at || t.since.IsZero() {
		t.at = p
		t.since = now
		t.visible = false
		return
	}
	if now.Sub(t.since) >= t.delay {
		t.visible = true
	}
}

func (t *toolTip) hide() {
	t.visible = false
	t.since = time.Time{}
}

// placement positions a w by h box below and right of the pointer, kept
// inside the client area when it fits.
func (t *toolTip) placement(w, h, clientW, clientH int) ruler.Rect {
	r := ruler.Rect{X: t.at.X + 12, Y: t.at.Y + 16, Width: w, Height: h}
	if r.X+r.Width > clientW {
		r.X = clientW - r.Width
	}
	if r.Y+r.Height > clientH {
		r.Y = t.at.Y - r.Height - 4
	}
	r.X = max(r.X, 0)
	r.Y = max(r.Y, 0)
	return r
}

func (t *toolTip) draw(screen *ebiten.Image, msg string, pal palette) {
	lines := strings.Split(msg, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, measureText(l))
	}
	lh := lineHeight()
	h := int(lh*float64(len(lines))) + 2*toolTipPad
	w += 2 * toolTipPad
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	r := t.placement(w, h, sw, sh)
	drawPanel(screen, r, pal.MenuBackground, pal.MenuBorder)
	for i, l := range lines {
		drawLabel(screen, l, labelFace, float64(r.X+toolTipPad), float64(r.Y+toolTipPad)+lh*float64(i), pal.MenuText)
	}
}
