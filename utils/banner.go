package utils

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
)

var activeSpinner *spinner.Spinner

func DrawBanner() {
	figure.NewColorFigure("AWS Tagger", "", "cyan", true).Print()
}

// StartSpinner shows a progress spinner on stderr until StopSpinner is called.
func StartSpinner(suffix string) {
	if activeSpinner != nil {
		return
	}
	activeSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	activeSpinner.Suffix = " " + suffix
	activeSpinner.Start()
}

func StopSpinner() {
	if activeSpinner == nil {
		return
	}
	activeSpinner.Stop()
	activeSpinner = nil
}
