package gameplay

import (
	"log"

	"roomcrawl/pkg/engine/world"
)

// Action is a high-level player intent, independent of the key that caused it
type Action int

// Player actions
const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionDefeatEnemy
	ActionTakeLeft
	ActionTakeRight
	ActionResetLevel
	ActionRestart
)

// ProcessAction applies one action for a frame of dt seconds
func ProcessAction(s *Session, action Action, dt float64) {
	step := s.Player.Speed * dt

	switch action {
	case ActionNone:
		return
	case ActionMoveUp:
		s.MovePlayer(0, step)
	case ActionMoveDown:
		s.MovePlayer(0, -step)
	case ActionMoveLeft:
		s.MovePlayer(-step, 0)
	case ActionMoveRight:
		s.MovePlayer(step, 0)
	case ActionDefeatEnemy:
		if room := s.ActiveRoom(); room != nil && !s.DefeatEnemy(room.Coord) {
			logMessage(s.Game, "Nothing left to fight here.")
		}
	case ActionTakeLeft:
		s.TakeItem(true)
	case ActionTakeRight:
		s.TakeItem(false)
	case ActionResetLevel:
		if err := s.ResetLevel(); err != nil {
			log.Printf("Reset failed: %v", err)
		}
	case ActionRestart:
		if err := s.Restart(); err != nil {
			log.Printf("Restart failed: %v", err)
		}
	}
}

// MoveAction returns the move action for a direction
func MoveAction(dir world.Direction) Action {
	switch dir {
	case world.Up:
		return ActionMoveUp
	case world.Down:
		return ActionMoveDown
	case world.Left:
		return ActionMoveLeft
	case world.Right:
		return ActionMoveRight
	}
	return ActionNone
}
