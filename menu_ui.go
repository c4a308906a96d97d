package main

import (
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/skratchdot/open-golang/open"

	"goruler/menu"
	"goruler/ruler"
)

const (
	menuPad       = 6
	menuGutter    = 16
	menuSeparator = 7
)

func menuMetrics() menu.Metrics {
	return menu.Metrics{
		Measure:         measureText,
		ItemHeight:      int(math.Ceil(lineHeight())) + 4,
		SeparatorHeight: menuSeparator,
		Gutter:          menuGutter,
		Padding:         menuPad,
	}
}

// openMenu shows the context menu at client point p and grows the window
// to fit it.
func (g *Game) openMenu(p ruler.Point) {
	items := menu.Build(g.ctl.state.Info(), menu.Options{ShowLogs: true})
	g.menu = menu.Open(items, p, menuMetrics())
	g.tip.hide()
	g.fitOverlay()
}

func (g *Game) closeMenu() {
	g.menu = nil
	g.ctl.setOverlay(0, 0)
}

// fitOverlay sizes the window around the open menu.
func (g *Game) fitOverlay() {
	b := g.menu.Bounds()
	g.ctl.setOverlay(b.X+b.Width+1, b.Y+b.Height+1)
}

func (g *Game) updateMenu(in inputState) {
	if in.escape {
		g.closeMenu()
		return
	}
	g.menu.Move(in.cursor)
	if in.leftPressed || in.rightPressed {
		sel, res := g.menu.Click(in.cursor)
		switch res {
		case menu.ResultOutside:
			g.closeMenu()
			return
		case menu.ResultSelected:
			g.closeMenu()
			g.runAction(sel)
			return
		}
	}
	g.fitOverlay()
}

// runAction performs a menu selection.
func (g *Game) runAction(sel menu.Selection) {
	logDebug("menu: %v", sel.Action)
	if cmd, ok := commandFor(sel); ok {
		g.ctl.dispatch(cmd)
		return
	}
	switch sel.Action {
	case menu.ActionSetSize:
		g.openPrompt()
	case menu.ActionDuplicate:
		if err := duplicate(g.ctl.state.Info(), g.forward); err != nil {
			logError("%v", err)
			notifyDesktop("goRuler", err.Error())
		}
	case menu.ActionCopySize:
		copySize(g.ctl.state.Geometry)
	case menu.ActionSaveImage:
		g.saveImage()
	case menu.ActionShowLogs:
		showLogs()
	case menu.ActionAbout:
		showAbout()
	case menu.ActionExit:
		g.quit = true
	}
}

func showLogs() {
	dir := logDirPath()
	if err := os.MkdirAll(dir, 0755); err != nil {
		logError("show logs: %v", err)
		return
	}
	if err := open.Run(dir); err != nil {
		logError("show logs: open %v: %v", dir, err)
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	m := g.menu
	drawMenuRows(screen, m.Items, m.Rows(), m.Hover, g.pal)
	if m.SubOpen >= 0 {
		drawMenuRows(screen, m.Items[m.SubOpen].Sub, m.SubRows(), m.SubHover, g.pal)
	}
}

func drawMenuRows(screen *ebiten.Image, items []menu.Item, rows []ruler.Rect, hover int, pal palette) {
	if len(rows) == 0 {
		return
	}
	f := rows[0]
	last := rows[len(rows)-1]
	f.Height = last.Y + last.Height - f.Y
	drawPanel(screen, f, pal.MenuBackground, pal.MenuBorder)

	lh := lineHeight()
	for i, it := range items {
		r := rows[i]
		if it.Separator {
			y := float32(r.Y+r.Height/2) + 0.5
			vector.StrokeLine(screen, float32(r.X+menuPad), y, float32(r.X+r.Width-menuPad), y, 1, pal.MenuBorder, false)
			continue
		}
		if i == hover {
			vector.DrawFilledRect(screen, float32(r.X+1), float32(r.Y), float32(r.Width-2), float32(r.Height), pal.MenuHover, false)
		}
		ty := float64(r.Y) + (float64(r.Height)-lh)/2
		if it.Checked {
			drawCheck(screen, r.X+menuPad, r.Y+r.Height/2, pal)
		}
		drawLabel(screen, it.Label, labelFace, float64(r.X+menuPad+menuGutter), ty, pal.MenuText)
		if len(it.Sub) > 0 {
			drawLabel(screen, "›", labelFace, float64(r.X+r.Width-menuPad-measureText("›")), ty, pal.MenuText)
		}
	}
}

// drawCheck strokes a check mark whose left arm starts at (x, cy).
func drawCheck(screen *ebiten.Image, x, cy int, pal palette) {
	x0, y0 := float32(x), float32(cy)
	vector.StrokeLine(screen, x0, y0, x0+3, y0+3, 1.5, pal.MenuText, true)
	vector.StrokeLine(screen, x0+3, y0+3, x0+9, y0-4, 1.5, pal.MenuText, true)
}
