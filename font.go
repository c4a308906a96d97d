package main

import (
	"bytes"
	"log"
	"math"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var labelFace *text.GoTextFace

func initFont() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to parse font: %v", err)
	}
	labelFace = &text.GoTextFace{
		Source: src,
		Size:   gs.FontSize,
	}
}

// labelHeight is the line height the renderer uses to place labels.
func labelHeight() int {
	m := labelFace.Metrics()
	return int(math.Ceil(m.HAscent + m.HDescent))
}

func measureText(s string) int {
	w, _ := text.Measure(s, labelFace, 0)
	return int(math.Ceil(w))
}

// lineHeight is the advance between lines of a multi-line label.
func lineHeight() float64 {
	m := labelFace.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
