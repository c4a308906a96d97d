package main

import (
	"errors"
	"fmt"

	"github.com/pkg/browser"
	"github.com/sqweek/dialog"

	_ "embed"
)

//go:embed data/about.txt
var aboutText string

const aboutURL = "http://www.sliver.com"

var errSaveCancelled = errors.New("save dialog cancelled")

// showMessage is the modal box for the Enter key.
func showMessage(title, msg string) {
	dialog.Message("%s", msg).Title(title).Info()
}

func showAbout() {
	msg := fmt.Sprintf("%s\nOpen %s?", aboutText, aboutURL)
	if dialog.Message("%s", msg).Title("About goRuler").YesNo() {
		if err := browser.OpenURL(aboutURL); err != nil {
			logError("about: open %v: %v", aboutURL, err)
		}
	}
}

func pickImageFile(suggested string) (string, error) {
	filename, err := dialog.File().Filter("PNG image", "png").Title("Save ruler image").SetStartFile(suggested).Save()
	if err != nil {
		if err == dialog.Cancelled {
			return "", errSaveCancelled
		}
		return "", err
	}
	return filename, nil
}
