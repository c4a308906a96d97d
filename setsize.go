package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"goruler/ruler"
)

var errInvalidSize = errors.New("invalid size")

// formatSize is the inverse of parseSize.
func formatSize(w, h int) string {
	return fmt.Sprintf("%dx%d", w, h)
}

// parseSize reads "WIDTHxHEIGHT". A comma or whitespace may stand in for
// the x.
func parseSize(s string) (int, int, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		switch r {
		case 'x', 'X', '×', ',', ' ', '\t':
			return true
		}
		return false
	})
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q: want WIDTHxHEIGHT", errInvalidSize, s)
	}
	w, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: width %q", errInvalidSize, fields[0])
	}
	h, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: height %q", errInvalidSize, fields[1])
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d must be positive", errInvalidSize, w, h)
	}
	return w, h, nil
}

const (
	promptTitle  = "Set size (width x height):"
	promptPad    = 6
	promptMaxLen = 16
)

// sizePrompt is the in-window "Set size..." editor.
type sizePrompt struct {
	text []rune
	err  string
}

func newSizePrompt(w, h int) *sizePrompt {
	return &sizePrompt{text: []rune(formatSize(w, h))}
}

// input applies typed characters; anything but digits and separators is
// ignored.
func (p *sizePrompt) input(runes []rune, backspace bool) {
	if backspace && len(p.text) > 0 {
		p.text = p.text[:len(p.text)-1]
		p.err = ""
	}
	for _, r := range runes {
		if len(p.text) >= promptMaxLen {
			break
		}
		if (r >= '0' && r <= '9') || strings.ContainsRune("xX, ", r) {
			p.text = append(p.text, r)
			p.err = ""
		}
	}
}

// submit parses the entry. On failure the error line is set and the prompt
// stays open.
func (p *sizePrompt) submit() (ruler.Command, bool) {
	w, h, err := parseSize(string(p.text))
	if err != nil {
		p.err = err.Error()
		return ruler.Command{}, false
	}
	return ruler.Command{Kind: ruler.CmdSetSize, Width: w, Height: h}, true
}

func (p *sizePrompt) lines() []string {
	l := []string{promptTitle, string(p.text) + "_"}
	if p.err != "" {
		l = append(l, p.err)
	}
	return l
}

// frame is the panel rect in client coordinates.
func (p *sizePrompt) frame() ruler.Rect {
	w := 0
	for _, l := range p.lines() {
		w = max(w, measureText(l))
	}
	// Reserve room for the error line so the window does not jump.
	h := int(lineHeight()*3) + 2*promptPad
	return ruler.Rect{X: 0, Y: 0, Width: max(w, measureText(promptTitle)+40) + 2*promptPad, Height: h}
}

func (p *sizePrompt) draw(screen *ebiten.Image, pal palette) {
	r := p.frame()
	drawPanel(screen, r, pal.MenuBackground, pal.MenuBorder)
	lh := lineHeight()
	for i, l := range p.lines() {
		c := pal.MenuText
		if i == 2 {
			c = pal.Error
		}
		drawLabel(screen, l, labelFace, float64(r.X+promptPad), float64(r.Y+promptPad)+lh*float64(i), c)
	}
}
