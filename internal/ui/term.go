package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers and date groupings: bold
	colorHeader = color.New(color.Bold)

	// Event titles: cyan
	colorTitle = color.New(color.FgCyan)

	// Times and ids: muted
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Categories: yellow tag
	colorTag = color.New(color.FgYellow)

	// Warnings from imports and the quick-add parser
	colorWarn = color.New(color.FgRed)

	// Success summaries
	colorOK = color.New(color.FgGreen)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}
