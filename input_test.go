package main

import (
	"testing"
	"time"

	"goruler/ruler"
)

func TestClickTrackerDoubleClick(t *testing.T) {
	c := newClickTracker(500 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	p := ruler.Point{X: 10, Y: 10}

	if c.press(t0, p) {
		t.Fatalf("first click reported as double")
	}
	if !c.press(t0.Add(200*time.Millisecond), ruler.Point{X: 12, Y: 9}) {
		t.Fatalf("second click within window not detected")
	}
	if c.press(t0.Add(300*time.Millisecond), p) {
		t.Fatalf("third click paired with a consumed pair")
	}
}

func TestClickTrackerRejectsSlowOrDistant(t *testing.T) {
	c := newClickTracker(500 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	c.press(t0, ruler.Point{X: 10, Y: 10})
	if c.press(t0.Add(600*time.Millisecond), ruler.Point{X: 10, Y: 10}) {
		t.Fatalf("slow click reported as double")
	}
	if c.press(t0.Add(700*time.Millisecond), ruler.Point{X: 40, Y: 10}) {
		t.Fatalf("distant click reported as double")
	}
}

func TestRepeatTick(t *testing.T) {
	fired := 0
	for d := 0; d <= keyRepeatDelay+2*keyRepeatInterval; d++ {
		if repeatTick(d) {
			fired++
		}
	}
	if fired != 4 {
		t.Fatalf("expected 4 repeats, got %d", fired)
	}
}
