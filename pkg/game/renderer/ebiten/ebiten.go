package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"roomcrawl/pkg/game/gameplay"
	"roomcrawl/pkg/game/renderer"
	"roomcrawl/pkg/game/state"
)

// DefaultTPS is the number of session ticks per second
const DefaultTPS = 60

// EbitenRenderer shows a session in a window and feeds it input.
// Update and Draw run on Ebiten's game loop, which is the only caller of the session.
type EbitenRenderer struct {
	session *gameplay.Session
	tps     int

	// MapDumpDir is where the M key writes map.txt
	MapDumpDir string

	windowOpenedLogged bool
}

// New creates a viewer for the session
func New(s *gameplay.Session) *EbitenRenderer {
	return &EbitenRenderer{
		session:    s,
		tps:        DefaultTPS,
		MapDumpDir: ".",
	}
}

// Init sets up the window
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("roomcrawl")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(e.tps)
}

// RenderFrame is a no-op: Ebiten draws from its own loop in Draw
func (e *EbitenRenderer) RenderFrame(g *state.Game) {}

// StyleText returns text unchanged; the viewer draws plain debug text
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// Layout returns the game's logical screen size
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// Run starts the Ebiten game loop and blocks until the window closes
func (e *EbitenRenderer) Run() error {
	e.Init()
	log.Printf("Starting viewer at %d TPS", e.tps)
	if err := ebiten.RunGame(e); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
