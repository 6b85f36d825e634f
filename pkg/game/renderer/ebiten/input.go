package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/leonelquinteros/gotext"

	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/devtools"
	"roomcrawl/pkg/game/gameplay"
)

// moveKeys maps held keys to movement directions
var moveKeys = map[ebiten.Key]world.Direction{
	ebiten.KeyArrowUp:    world.Up,
	ebiten.KeyW:          world.Up,
	ebiten.KeyArrowDown:  world.Down,
	ebiten.KeyS:          world.Down,
	ebiten.KeyArrowLeft:  world.Left,
	ebiten.KeyA:          world.Left,
	ebiten.KeyArrowRight: world.Right,
	ebiten.KeyD:          world.Right,
}

// pressKeys maps single key presses to actions
var pressKeys = map[ebiten.Key]gameplay.Action{
	ebiten.KeyK:  gameplay.ActionDefeatEnemy,
	ebiten.KeyQ:  gameplay.ActionTakeLeft,
	ebiten.KeyE:  gameplay.ActionTakeRight,
	ebiten.KeyF5: gameplay.ActionResetLevel,
	ebiten.KeyR:  gameplay.ActionRestart,
}

// Update handles input and advances the session by one tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := 1.0 / float64(ebiten.TPS())

	for key, dir := range moveKeys {
		if ebiten.IsKeyPressed(key) {
			gameplay.ProcessAction(e.session, gameplay.MoveAction(dir), dt)
		}
	}
	for key, action := range pressKeys {
		if inpututil.IsKeyJustPressed(key) {
			gameplay.ProcessAction(e.session, action, dt)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		e.session.Kill()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if path, err := devtools.DumpMapToFile(e.session.Game, e.MapDumpDir); err != nil {
			log.Printf("Map dump failed: %v", err)
		} else {
			e.session.Game.AddMessage(gotext.Get("Map dumped to %s", path))
		}
	}

	if err := e.session.Tick(dt); err != nil {
		log.Printf("Session tick failed: %v", err)
	}
	return nil
}
