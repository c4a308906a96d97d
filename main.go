package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hako/durafmt"

	"goruler/ruler"
)

var (
	doDebug      bool
	settingsFlag string
)

func main() {
	info := ruler.DefaultInfo()
	info.RegisterFlags(flag.CommandLine)
	flag.BoolVar(&doDebug, "debug", false, "verbose/debug logging")
	flag.StringVar(&settingsFlag, "settings", "", "path to settings.json (default: user config dir)")
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %q\n", flag.Args())
		flag.Usage()
		os.Exit(2)
	}
	if err := info.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	setupLogging(doDebug)
	path := settingsFlag
	if path == "" {
		path = settingsPath()
	}
	if loadSettings(path) {
		logDebug("settings: loaded %v", path)
	}
	initClipboard()
	initFont()

	state := ruler.NewState(info, gs.policy())
	ctl := newController(state, &ebitenWindow{})
	g := newGame(ctl, themePalette(gs.Theme), forwardFlags())

	start := time.Now()
	logDebug("start: %+v", state.Info())
	if err := runGame(g); err != nil {
		log.Printf("ebiten: %v", err)
	}
	logDebug("session ended after %v", durafmt.Parse(time.Since(start)).LimitFirstN(2))
}

// forwardFlags returns the non-placement flags a duplicate should inherit.
func forwardFlags() []string {
	var args []string
	if doDebug {
		args = append(args, "-debug")
	}
	if settingsFlag != "" {
		args = append(args, "-settings="+settingsFlag)
	}
	return args
}
