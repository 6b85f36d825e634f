// Package tui renders the dungeon map as coloured text in the terminal.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"roomcrawl/pkg/engine/terminal"
	"roomcrawl/pkg/game/devtools"
	"roomcrawl/pkg/game/renderer"
	"roomcrawl/pkg/game/state"
)

// Lines needed around the map: header, blank, message header and 5 messages
const frameOverhead = 9

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	Out io.Writer

	colorRoom       color.Style
	colorCleared    color.Style
	colorStart      color.Style
	colorBoss       color.Style
	colorPlayer     color.Style
	colorDoorOpen   color.Style
	colorDoorClosed color.Style
	colorSubtle     color.Style
	colorTitle      color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{Out: os.Stdout}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorRoom = color.Style{color.FgYellow}
	t.colorCleared = color.Style{color.FgGray}
	t.colorStart = color.Style{color.FgBlue, color.OpBold}
	t.colorBoss = color.Style{color.FgRed, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorDoorOpen = color.Style{color.FgGreen}
	t.colorDoorClosed = color.Style{color.FgMagenta}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorTitle = color.Style{color.FgCyan, color.OpBold}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleCleared:
		return t.colorCleared.Sprint(text)
	case renderer.StyleStart:
		return t.colorStart.Sprint(text)
	case renderer.StyleBoss:
		return t.colorBoss.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleDoorOpen:
		return t.colorDoorOpen.Sprint(text)
	case renderer.StyleDoorClosed:
		return t.colorDoorClosed.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	default:
		return text
	}
}

// symbolStyle maps a map character to its style
func symbolStyle(r rune) renderer.TextStyle {
	switch r {
	case '@':
		return renderer.StylePlayer
	case 'S':
		return renderer.StyleStart
	case 'B':
		return renderer.StyleBoss
	case 'x':
		return renderer.StyleCleared
	case 'o':
		return renderer.StyleRoom
	case '=', ':':
		return renderer.StyleDoorOpen
	case '-', '|':
		return renderer.StyleDoorClosed
	default:
		return renderer.StyleNormal
	}
}

// StyleLine colours every symbol of one map line
func (t *TUIRenderer) StyleLine(line string) string {
	var b strings.Builder
	for _, r := range line {
		b.WriteString(t.StyleText(string(r), symbolStyle(r)))
	}
	return b.String()
}

// Frame builds a complete frame as text
func (t *TUIRenderer) Frame(g *state.Game) string {
	var b strings.Builder

	fmt.Fprintln(&b, t.StyleText(gotext.Get("Level %d - seed %d", g.Run.Level, g.Seed), renderer.StyleTitle))
	fmt.Fprintln(&b)

	lines := devtools.MapLines(g.Grid)
	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	if terminal.Fits(width, len(lines)+frameOverhead) {
		for _, line := range lines {
			fmt.Fprintln(&b, t.StyleLine(line))
		}
	} else {
		fmt.Fprintln(&b, t.StyleText(gotext.Get("Map is %dx%d, too large for this terminal.", width, len(lines)), renderer.StyleSubtle))
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, t.StyleText(gotext.Get("Messages"), renderer.StyleSubtle))
	for _, msg := range g.Messages {
		fmt.Fprintln(&b, msg)
	}
	return b.String()
}

// RenderFrame prints a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	if g.Grid == nil {
		return
	}
	fmt.Fprint(t.Out, t.Frame(g))
}
