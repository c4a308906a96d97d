package main

import (
	"image/color"

	dark "github.com/thiagokokada/dark-mode-go"
)

type palette struct {
	Background color.RGBA
	Ink        color.RGBA

	MenuBackground color.RGBA
	MenuHover      color.RGBA
	MenuText       color.RGBA
	MenuBorder     color.RGBA
	Error          color.RGBA
}

var lightPalette = palette{
	Background:     color.RGBA{255, 255, 255, 255},
	Ink:            color.RGBA{0, 0, 0, 255},
	MenuBackground: color.RGBA{245, 245, 245, 255},
	MenuHover:      color.RGBA{204, 228, 247, 255},
	MenuText:       color.RGBA{0, 0, 0, 255},
	MenuBorder:     color.RGBA{160, 160, 160, 255},
	Error:          color.RGBA{200, 0, 0, 255},
}

var darkPalette = palette{
	Background:     color.RGBA{40, 40, 40, 255},
	Ink:            color.RGBA{235, 235, 235, 255},
	MenuBackground: color.RGBA{50, 50, 50, 255},
	MenuHover:      color.RGBA{70, 90, 120, 255},
	MenuText:       color.RGBA{235, 235, 235, 255},
	MenuBorder:     color.RGBA{110, 110, 110, 255},
	Error:          color.RGBA{255, 110, 110, 255},
}

// themePalette resolves the theme setting. An empty theme follows the
// desktop and falls back to light when it cannot be queried.
func themePalette(theme string) palette {
	switch theme {
	case "dark":
		return darkPalette
	case "light":
		return lightPalette
	}
	isDark, err := dark.IsDarkMode()
	if err != nil {
		logDebug("dark mode query: %v", err)
		return lightPalette
	}
	if isDark {
		return darkPalette
	}
	return lightPalette
}
