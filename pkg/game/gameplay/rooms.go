package gameplay

import (
	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/state"
)

// Rooms applies the room lifecycle: clearing, entering and leaving rooms
// and the door changes that go with them.
type Rooms struct {
	Game       *state.Game
	Player     Player
	Items      ItemSpawner
	Content    ContentHost
	HealAmount float64

	// OnBossCleared is called once when the boss room is cleared
	OnBossCleared func()
}

// ClearRoom marks r cleared. A regular room opens its doors, heals the player
// and offers an item choice (except the start room). The boss room advances
// the run instead. Returns false if r was already cleared.
func (l *Rooms) ClearRoom(r *world.Room) bool {
	if r == nil || !r.MarkCleared() {
		return false
	}

	if r.IsBossRoom {
		l.Game.Run.AdvanceAfterBoss()
		logMessage(l.Game, "The guardian falls. Descending to level %d...", l.Game.Run.Level)
		if l.OnBossCleared != nil {
			l.OnBossCleared()
		}
		return true
	}

	r.OpenAllDoors()
	l.Player.Heal(l.HealAmount)
	if !r.IsStartRoom {
		l.Items.SpawnItemChoice(r.Coord)
		logMessage(l.Game, "Room cleared!")
	}
	return true
}

// StartEnterRoom prepares r for a player coming in through its entry side.
// A cleared room opens every door, otherwise only the entry door opens.
func (l *Rooms) StartEnterRoom(r *world.Room, entry world.Direction) {
	if r.Cleared {
		r.OpenAllDoors()
		return
	}
	r.OpenDoor(entry)
}

// EndEnterRoom runs once the player is inside r: the entry door shuts behind
// an uncleared room and its encounter starts.
func (l *Rooms) EndEnterRoom(r *world.Room, entry world.Direction) {
	if !r.Cleared {
		r.CloseDoor(entry)
	}
	l.activateContent(r)
}

// EnterStartRoom starts the level in r without a transition
func (l *Rooms) EnterStartRoom(r *world.Room) {
	l.activateContent(r)
}

// DeactivateRoom closes every door of the room just left and stops its encounter
func (l *Rooms) DeactivateRoom(r *world.Room) {
	if r == nil {
		return
	}
	r.CloseAllDoors()
	r.Active = false
	l.Content.Deactivate(r.Coord)
}

// activateContent starts the encounter of r. Rooms without hostile
// occupants are cleared right away.
func (l *Rooms) activateContent(r *world.Room) {
	if r.Cleared {
		return
	}
	l.Content.Activate(r.Coord)
	if l.Content.Remaining(r.Coord) == 0 {
		l.ClearRoom(r)
	}
}
