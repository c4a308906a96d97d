package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"goruler/ruler"
)

func TestWritePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	img.Set(3, 2, color.RGBA{0, 0, 0, 255})
	path := filepath.Join(t.TempDir(), "ruler.png")

	size, err := writePNG(path, img)
	if err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	if size <= 0 {
		t.Fatalf("unexpected size %d", size)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Bounds() != img.Bounds() {
		t.Fatalf("bounds %v, want %v", got.Bounds(), img.Bounds())
	}
	if _, _, _, a := got.At(3, 2).RGBA(); a != 0xffff {
		t.Fatalf("pixel lost")
	}
}

func TestWritePNGMissingDir(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if _, err := writePNG(filepath.Join(t.TempDir(), "missing", "x.png"), img); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestSnapshotName(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	got := snapshotName(ruler.Info{Width: 400, Height: 75}, now)
	if got != "ruler-400x75-2024-03-05-14-07-09.png" {
		t.Fatalf("unexpected name %q", got)
	}
}
