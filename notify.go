package main

import (
	"os"
	"runtime"

	"github.com/gen2brain/beeep"
)

// notifyDesktop shows a desktop notification, best-effort and non-fatal.
// It reports outcomes that have no window of their own, such as a failed
// duplicate or a saved image.
func notifyDesktop(title, body string) {
	if body == "" {
		return
	}
	// beeep fails without a display server on Linux.
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return
	}
	if err := beeep.Notify(title, body, ""); err != nil {
		logDebug("notify: %v", err)
	}
}
