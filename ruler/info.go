package ruler

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
)

// ErrInvalidInfo is returned when placement arguments are out of range.
var ErrInvalidInfo = errors.New("invalid ruler info")

// Info is the placement and appearance of one ruler window. It is what the
// command line carries and what Duplicate hands to the new process.
type Info struct {
	X           int
	Y           int
	Width       int
	Height      int
	Vertical    bool
	Locked      bool
	ShowToolTip bool
	TopMost     bool
	Opacity     float64
}

// DefaultInfo is used when no arguments are given.
func DefaultInfo() Info {
	return Info{
		Width:       400,
		Height:      75,
		ShowToolTip: true,
		Opacity:     1,
	}
}

// RegisterFlags binds the placement flags to fs, using info's current values
// as defaults.
func (info *Info) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&info.X, "x", info.X, "window left edge in screen pixels")
	fs.IntVar(&info.Y, "y", info.Y, "window top edge in screen pixels")
	fs.IntVar(&info.Width, "width", info.Width, "window width in pixels")
	fs.IntVar(&info.Height, "height", info.Height, "window height in pixels")
	fs.BoolVar(&info.Vertical, "vertical", info.Vertical, "start in vertical orientation")
	fs.BoolVar(&info.Locked, "locked", info.Locked, "lock resizing")
	fs.BoolVar(&info.ShowToolTip, "tooltip", info.ShowToolTip, "show the size tooltip on hover")
	fs.BoolVar(&info.TopMost, "topmost", info.TopMost, "keep the ruler above other windows")
	fs.Float64Var(&info.Opacity, "opacity", info.Opacity, "window opacity from 0.1 to 1")
}

// Validate checks that the size is positive and the opacity in (0, 1].
func (info Info) Validate() error {
	if info.Width <= 0 || info.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidInfo, info.Width, info.Height)
	}
	if info.Opacity <= 0 || info.Opacity > 1 {
		return fmt.Errorf("%w: opacity %v", ErrInvalidInfo, info.Opacity)
	}
	return nil
}

// Args encodes info as command-line flags accepted by ParseArgs.
func (info Info) Args() []string {
	return []string{
		"-x=" + strconv.Itoa(info.X),
		"-y=" + strconv.Itoa(info.Y),
		"-width=" + strconv.Itoa(info.Width),
		"-height=" + strconv.Itoa(info.Height),
		"-vertical=" + strconv.FormatBool(info.Vertical),
		"-locked=" + strconv.FormatBool(info.Locked),
		"-tooltip=" + strconv.FormatBool(info.ShowToolTip),
		"-topmost=" + strconv.FormatBool(info.TopMost),
		"-opacity=" + strconv.FormatFloat(info.Opacity, 'f', -1, 64),
	}
}

// ParseArgs decodes flags produced by Args. Missing flags keep their
// DefaultInfo values.
func ParseArgs(args []string) (Info, error) {
	info := DefaultInfo()
	fs := flag.NewFlagSet("ruler", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	info.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Info{}, fmt.Errorf("parse ruler args: %w", err)
	}
	if fs.NArg() > 0 {
		return Info{}, fmt.Errorf("%w: unexpected argument %q", ErrInvalidInfo, fs.Arg(0))
	}
	if err := info.Validate(); err != nil {
		return Info{}, err
	}
	return info, nil
}
