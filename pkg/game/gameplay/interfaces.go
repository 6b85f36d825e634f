// Package gameplay runs a level: the room lifecycle, room-to-room transitions,
// player movement against doors and the level build/reset/advance cycle.
package gameplay

import (
	"roomcrawl/pkg/engine/world"
)

// Player is the part of the player agent the room logic drives
type Player interface {
	LockInput()
	UnlockInput()
	TeleportRelative(dx, dy float64)
	Heal(amount float64)
	Position() world.Vec2
	PlaceAt(v world.Vec2)
	Move(dx, dy float64)
}

// Camera pans between rooms and reports when it has arrived
type Camera interface {
	BeginPan(dir world.Direction)
	TransitionComplete() bool
	CancelPan()
	SnapTo(c world.Coordinate)
}

// ItemSpawner offers an item choice in a cleared room
type ItemSpawner interface {
	SpawnItemChoice(c world.Coordinate)
}

// ContentHost owns the encounter content of every room
type ContentHost interface {
	Activate(c world.Coordinate)
	Deactivate(c world.Coordinate)
	Remaining(c world.Coordinate) int
	Defeat(c world.Coordinate) (int, bool)
}
