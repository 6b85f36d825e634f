// Package world provides the dungeon lattice primitives: coordinates,
// directions, rooms with their doors, and the room graph that links them.
package world

// Room is one placed dungeon room.
// Neighbors are not held by reference; they are looked up through the Grid
// by coordinate, so rooms never own each other.
type Room struct {
	// Coord is the lattice position; it never changes after placement
	Coord Coordinate

	// Template is the content handle the room was instantiated from
	Template string

	// Start and boss flags are mutually exclusive and set once at placement
	IsStartRoom bool
	IsBossRoom  bool

	// Cleared becomes true once, when the room's encounter is defeated
	Cleared bool

	// Active is true only for the room the player currently occupies
	Active bool

	doors [4]DoorState
}

// Placement holds the attributes a room is created with
type Placement struct {
	Template  string
	StartRoom bool
	BossRoom  bool
}

func newRoom(c Coordinate, p Placement) *Room {
	return &Room{
		Coord:       c,
		Template:    p.Template,
		IsStartRoom: p.StartRoom,
		IsBossRoom:  p.BossRoom,
	}
}

// MarkCleared sets the cleared flag. It returns false if the room was already cleared.
func (r *Room) MarkCleared() bool {
	if r.Cleared {
		return false
	}
	r.Cleared = true
	return true
}

// Doors returns a copy of the four door states, indexed by Direction
func (r *Room) Doors() [4]DoorState {
	return r.doors
}
