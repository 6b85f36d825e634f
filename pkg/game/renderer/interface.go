// Package renderer defines the rendering backends of the dungeon.
package renderer

import (
	"roomcrawl/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleRoom
	StyleCleared
	StyleStart
	StyleBoss
	StylePlayer
	StyleDoorOpen
	StyleDoorClosed
	StyleSubtle
	StyleTitle
)

// Renderer defines the interface for game rendering backends
// Implementations include TUI (terminal) and Ebiten.
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// RenderFrame renders a complete game frame: header, map and messages
	RenderFrame(g *state.Game)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}
