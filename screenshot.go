package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"

	"goruler/ruler"
)

// snapshotName suggests a file name for the current ruler.
func snapshotName(info ruler.Info, now time.Time) string {
	return fmt.Sprintf("ruler-%s-%s.png", formatSize(info.Width, info.Height), now.Format("2006-01-02-15-04-05"))
}

// writePNG encodes img to path and returns the file size.
func writePNG(path string, img image.Image) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %v: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return 0, fmt.Errorf("encode %v: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close %v: %w", path, err)
	}
	st, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return st.Size(), nil
}

// saveImage asks for a file name and writes the ruler as it appears on
// screen, rotation included, at full opacity.
func (g *Game) saveImage() {
	info := g.ctl.state.Info()
	fn, err := pickImageFile(snapshotName(info, time.Now()))
	if err != nil {
		if !errors.Is(err, errSaveCancelled) {
			logError("save image: %v", err)
		}
		return
	}
	if filepath.Ext(fn) == "" {
		fn += ".png"
	}

	g.redraw()
	if g.rulerImg == nil {
		return
	}
	t := g.ctl.state.Transform()
	out := ebiten.NewImage(t.Width, t.Height)
	defer out.Deallocate()
	out.DrawImage(g.rulerImg, rulerDrawOptions(t, 1))

	size, err := writePNG(fn, out)
	if err != nil {
		logError("save image: %v", err)
		notifyDesktop("goRuler", "Could not save image: "+err.Error())
		return
	}
	msg := fmt.Sprintf("%s (%s)", filepath.Base(fn), humanize.Bytes(uint64(size)))
	logDebug("save image: wrote %s", msg)
	notifyDesktop("Ruler image saved", msg)
}
