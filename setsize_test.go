package main

import (
	"errors"
	"testing"

	"goruler/ruler"
)

func TestParseSize(t *testing.T) {
	good := map[string][2]int{
		"400x75":     {400, 75},
		" 120 X 30 ": {120, 30},
		"640,480":    {640, 480},
		"10 20":      {10, 20},
	}
	for in, want := range good {
		w, h, err := parseSize(in)
		if err != nil {
			t.Fatalf("parseSize(%q): %v", in, err)
		}
		if w != want[0] || h != want[1] {
			t.Fatalf("parseSize(%q) = %dx%d, want %dx%d", in, w, h, want[0], want[1])
		}
	}
	for _, in := range []string{"", "400", "400x", "ax75", "0x10", "10x-3", "1x2x3"} {
		if _, _, err := parseSize(in); !errors.Is(err, errInvalidSize) {
			t.Fatalf("parseSize(%q) error = %v, want errInvalidSize", in, err)
		}
	}
}

func TestFormatSizeRoundTrip(t *testing.T) {
	w, h, err := parseSize(formatSize(321, 54))
	if err != nil || w != 321 || h != 54 {
		t.Fatalf("round trip gave %dx%d, %v", w, h, err)
	}
}

func TestSizePromptEditing(t *testing.T) {
	p := newSizePrompt(400, 75)
	p.input(nil, true)
	p.input(nil, true)
	p.input([]rune("9a0"), false)
	if string(p.text) != "400x90" {
		t.Fatalf("unexpected text %q", string(p.text))
	}
	cmd, ok := p.submit()
	if !ok || cmd != (ruler.Command{Kind: ruler.CmdSetSize, Width: 400, Height: 90}) {
		t.Fatalf("unexpected submit %+v %v", cmd, ok)
	}
}

func TestSizePromptKeepsErrorUntilEdited(t *testing.T) {
	p := newSizePrompt(400, 75)
	p.text = []rune("400x")
	if _, ok := p.submit(); ok {
		t.Fatalf("incomplete size accepted")
	}
	if p.err == "" || len(p.lines()) != 3 {
		t.Fatalf("error line missing: %q", p.lines())
	}
	p.input([]rune("5"), false)
	if p.err != "" {
		t.Fatalf("editing did not clear the error")
	}
}
