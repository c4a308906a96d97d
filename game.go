package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"goruler/menu"
	"goruler/ruler"
)

// Game drives the ruler from the Ebitengine loop. Update turns polled input
// into reducer events; Draw paints the cached ruler image plus any overlay.
type Game struct {
	ctl    *controller
	pal    palette
	clicks *clickTracker
	tip    toolTip
	runes  []rune

	menu   *menu.Menu
	prompt *sizePrompt

	rulerImg *ebiten.Image

	// forward holds flags passed on to duplicates.
	forward []string
	quit    bool
}

func newGame(ctl *controller, pal palette, forward []string) *Game {
	g := &Game{
		ctl:     ctl,
		pal:     pal,
		clicks:  newClickTracker(time.Duration(gs.DoubleClickMillis) * time.Millisecond),
		tip:     toolTip{delay: time.Duration(gs.ToolTipDelayMillis) * time.Millisecond},
		forward: forward,
	}
	ctl.onMessage = func(msg string) {
		showMessage("Ruler", msg)
	}
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	in := pollInput(g.runes)
	g.runes = in.runes

	switch {
	case g.prompt != nil:
		g.updatePrompt(in)
	case g.menu != nil:
		g.updateMenu(in)
	default:
		g.updateRuler(in, time.Now())
	}

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) updateRuler(in inputState, now time.Time) {
	screen := g.ctl.screenPoint(in.cursor)

	if in.rightPressed && !g.ctl.state.Drag.Active {
		g.openMenu(in.cursor)
		return
	}
	if in.leftPressed {
		g.ctl.dispatch(ruler.Press{Screen: screen})
		if g.clicks.press(now, screen) {
			g.ctl.dispatch(ruler.DoubleClick{})
		}
	}
	logMotion("motion %v held=%v phase=%v", screen, in.leftHeld, g.ctl.state.Phase)
	g.ctl.dispatch(ruler.Motion{Screen: screen, Held: in.leftHeld})
	if in.leftReleased {
		g.ctl.dispatch(ruler.Release{})
	}
	for _, k := range in.keys {
		g.ctl.dispatch(k)
	}
	if in.copySize {
		copySize(g.ctl.state.Geometry)
	}

	inside := g.ctl.state.Geometry.Client().Contains(in.cursor)
	g.tip.update(now, in.cursor, g.ctl.state.ShowToolTip && inside && !in.leftHeld && ebiten.IsFocused())
}

func (g *Game) openPrompt() {
	geo := g.ctl.state.Geometry
	g.prompt = newSizePrompt(geo.Width, geo.Height)
	g.tip.hide()
	g.fitPrompt()
}

func (g *Game) fitPrompt() {
	f := g.prompt.frame()
	g.ctl.setOverlay(f.X+f.Width+1, f.Y+f.Height+1)
}

func (g *Game) closePrompt() {
	g.prompt = nil
	g.ctl.setOverlay(0, 0)
}

func (g *Game) updatePrompt(in inputState) {
	if in.escape {
		g.closePrompt()
		return
	}
	g.prompt.input(in.runes, in.backspace)
	if in.enter {
		if cmd, ok := g.prompt.submit(); ok {
			g.closePrompt()
			g.ctl.dispatch(cmd)
			return
		}
		logDebug("set size: %v", g.prompt.err)
	}
	g.fitPrompt()
}

// redraw repaints the logical ruler image when the state asks for it.
func (g *Game) redraw() {
	lw, lh := g.ctl.state.Transform().Logical()
	if lw <= 0 || lh <= 0 {
		g.dropRulerImage()
		return
	}
	if g.rulerImg != nil {
		b := g.rulerImg.Bounds()
		if b.Dx() != lw || b.Dy() != lh {
			g.dropRulerImage()
		}
	}
	if g.rulerImg == nil {
		g.rulerImg = ebiten.NewImage(lw, lh)
		g.ctl.dirty = true
	}
	if !g.ctl.dirty {
		return
	}
	r := ruler.Renderer{LabelHeight: labelHeight()}
	drawOps(g.rulerImg, r.Render(lw, lh), labelFace, g.pal)
	g.ctl.dirty = false
}

func (g *Game) dropRulerImage() {
	if g.rulerImg != nil {
		g.rulerImg.Deallocate()
		g.rulerImg = nil
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.redraw()
	if g.rulerImg != nil {
		screen.DrawImage(g.rulerImg, rulerDrawOptions(g.ctl.state.Transform(), g.ctl.state.Opacity))
	}
	switch {
	case g.prompt != nil:
		g.prompt.draw(screen, g.pal)
	case g.menu != nil:
		g.drawMenu(screen)
	case g.tip.visible:
		g.tip.draw(screen, g.ctl.state.DimensionsText(), g.pal)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func runGame(g *Game) error {
	ebiten.SetWindowTitle("Ruler")
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	g.ctl.start()

	op := &ebiten.RunGameOptions{ScreenTransparent: true}
	return ebiten.RunGameWithOptions(g, op)
}
