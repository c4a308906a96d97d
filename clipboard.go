package main

import (
	clipboard "golang.design/x/clipboard"

	"goruler/ruler"
)

// clipboardReady is false when clipboard.Init failed; writes are skipped.
var clipboardReady bool

func initClipboard() {
	if err := clipboard.Init(); err != nil {
		logWarn("clipboard init: %v", err)
		return
	}
	clipboardReady = true
}

// copySize puts "WIDTHxHEIGHT" on the clipboard, the format the set-size
// prompt accepts.
func copySize(g ruler.Rect) {
	if !clipboardReady {
		logWarn("clipboard unavailable; size not copied")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(formatSize(g.Width, g.Height)))
}
