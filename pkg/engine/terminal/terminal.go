// Package terminal reports the size of the terminal the map is printed to.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size returns the current terminal width and height.
// Falls back to defaults when stdout is not a terminal.
func Size() (width, height int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Width returns the current terminal width
func Width() int {
	width, _ := Size()
	return width
}

// Fits reports whether a block of cols x rows characters fits on screen
func Fits(cols, rows int) bool {
	width, height := Size()
	return cols <= width && rows <= height
}
