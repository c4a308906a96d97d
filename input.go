package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"goruler/ruler"
)

const (
	// Ticks before a held key starts repeating, then ticks between repeats.
	keyRepeatDelay    = 30
	keyRepeatInterval = 3

	// clickSlop is how far apart two clicks may be and still pair up.
	clickSlop = 4
)

// inputState holds the polled state of inputs for a single frame.
type inputState struct {
	cursor ruler.Point // client coordinates

	leftPressed  bool // just pressed
	leftHeld     bool
	leftReleased bool // just released
	rightPressed bool

	keys      []ruler.KeyPress
	escape    bool
	enter     bool
	copySize  bool
	backspace bool
	runes     []rune
}

var arrowKeys = []struct {
	ebiten ebiten.Key
	key    ruler.Key
}{
	{ebiten.KeyArrowLeft, ruler.KeyLeft},
	{ebiten.KeyArrowRight, ruler.KeyRight},
	{ebiten.KeyArrowUp, ruler.KeyUp},
	{ebiten.KeyArrowDown, ruler.KeyDown},
}

// pollInput gathers this frame's raw input.
func pollInput(runes []rune) inputState {
	mx, my := ebiten.CursorPosition()
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	in := inputState{
		cursor:       ruler.Point{X: mx, Y: my},
		leftPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		leftHeld:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		leftReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		rightPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		escape:       inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		enter:        inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		copySize:     ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC),
		backspace:    repeatingKeyPressed(ebiten.KeyBackspace),
		runes:        ebiten.AppendInputChars(runes[:0]),
	}
	for _, a := range arrowKeys {
		if repeatingKeyPressed(a.ebiten) {
			in.keys = append(in.keys, ruler.KeyPress{Key: a.key, Shift: shift, Ctrl: ctrl})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.keys = append(in.keys, ruler.KeyPress{Key: ruler.KeySpace})
	}
	if in.enter {
		in.keys = append(in.keys, ruler.KeyPress{Key: ruler.KeyEnter})
	}
	return in
}

func repeatingKeyPressed(k ebiten.Key) bool {
	return repeatTick(inpututil.KeyPressDuration(k))
}

// repeatTick reports whether a key held for d ticks fires this tick.
func repeatTick(d int) bool {
	if d == 1 {
		return true
	}
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}

// clickTracker pairs left-button presses into double clicks.
type clickTracker struct {
	window time.Duration
	last   time.Time
	at     ruler.Point
}

func newClickTracker(window time.Duration) *clickTracker {
	return &clickTracker{window: window}
}

// press records a press at screen point p and reports whether it completes
// a double click. A completed pair is forgotten, so a third click starts
// over.
func (c *clickTracker) press(now time.Time, p ruler.Point) bool {
	if !c.last.IsZero() && now.Sub(c.last) <= c.window && near(p, c.at) {
		c.last = time.Time{}
		return true
	}
	c.last = now
	c.at = p
	return false
}

func near(a, b ruler.Point) bool {
	d := a.Sub(b)
	return d.X >= -clickSlop && d.X <= clickSlop && d.Y >= -clickSlop && d.Y <= clickSlop
}
