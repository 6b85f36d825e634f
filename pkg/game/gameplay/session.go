package gameplay

import (
	"errors"
	"log"

	"github.com/leonelquinteros/gotext"

	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/actors"
	"roomcrawl/pkg/game/config"
	"roomcrawl/pkg/game/state"
	"roomcrawl/pkg/game/templates"
)

// Session is one play session: the current level and everything acting on it.
// It is driven by one Tick per frame and is not safe for concurrent use.
type Session struct {
	Game    *state.Game
	Config  config.Config
	Catalog templates.Catalog

	Content     *templates.Factory
	Player      *actors.Player
	Camera      *actors.Camera
	Items       *actors.ItemChoices
	Rooms       *Rooms
	Coordinator *Coordinator

	oracle world.DoorOracle

	scenePending bool
	sceneTimer   float64
	dead         bool
}

// logMessage adds a translated, formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(gotext.Get(msg, a...))
}

// Tick advances the session by dt seconds: camera, transition and the
// pending scene change after a boss.
func (s *Session) Tick(dt float64) error {
	s.Camera.Update(dt)

	if err := s.Coordinator.Tick(dt); err != nil {
		if !errors.Is(err, ErrTransitionTimeout) {
			return err
		}
		logMessage(s.Game, "Room transition timed out.")
	}

	if s.scenePending {
		s.sceneTimer -= dt
		if s.sceneTimer <= 0 {
			s.scenePending = false
			return s.AdvanceLevel()
		}
	}
	return nil
}

// ActiveRoom returns the room the player is in
func (s *Session) ActiveRoom() *world.Room {
	return s.Game.Grid.ActiveRoom()
}

// SceneChangePending reports whether the next level is about to load
func (s *Session) SceneChangePending() bool {
	return s.scenePending
}

// Dead reports whether the player died this level
func (s *Session) Dead() bool {
	return s.dead
}

// DefeatEnemy defeats one hostile occupant of the room at c.
// The room is cleared when the last one falls.
func (s *Session) DefeatEnemy(c world.Coordinate) bool {
	room, ok := s.Game.Grid.TryGet(c)
	if !ok || !room.Active {
		return false
	}
	left, ok := s.Content.Defeat(c)
	if !ok {
		return false
	}
	if ct, found := s.Content.Content(c); found {
		logMessage(s.Game, "Enemy down (%.0f HP). %d left.", ct.EnemyHealth, left)
	}
	if left == 0 {
		s.Rooms.ClearRoom(room)
	}
	return true
}

// Kill ends the player's life and aborts any transition in flight
func (s *Session) Kill() {
	if s.dead {
		return
	}
	s.dead = true
	s.Player.Damage(s.Player.Health)
	s.Player.LockInput()
	if s.Coordinator.Abort() {
		log.Printf("Transition aborted: player died")
	}
	logMessage(s.Game, "You died on level %d.", s.Game.Run.Level)
}

// TakeItem picks the left or right item offered in the active room
func (s *Session) TakeItem(left bool) (actors.Item, bool) {
	room := s.ActiveRoom()
	if room == nil {
		return actors.Item{}, false
	}
	item, ok := s.Items.Take(room.Coord, left)
	if ok {
		logMessage(s.Game, "Picked up %s.", item.Name)
	}
	return item, ok
}

func (s *Session) queueSceneChange() {
	if s.scenePending {
		return
	}
	s.scenePending = true
	s.sceneTimer = s.Config.SceneChangeDelay
}
