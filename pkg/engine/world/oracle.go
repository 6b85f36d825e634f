package world

// Hit describes the first room edge a ray reaches
type Hit struct {
	// Distance from the ray origin to the edge
	Distance float64
	// Room is the room the ray started in (nil if the origin is outside the dungeon)
	Room *Room
	// Side is the edge of Room that was reached
	Side Direction
	// State is the state of the door on that edge
	State DoorState
	// Blocking is true unless the edge is an open door
	Blocking bool
}

// DoorOracle answers axis-aligned raycasts against room walls and doors.
// A room's edge is treated as one door spanning the whole wall.
type DoorOracle struct {
	Grid *Grid
}

// Raycast casts a ray from origin in dir and reports the room edge it meets
// within maxDistance. An origin outside every room is blocked immediately.
func (o DoorOracle) Raycast(origin Vec2, dir Direction, maxDistance float64) (Hit, bool) {
	c := RoomAt(origin)
	room, ok := o.Grid.TryGet(c)
	if !ok {
		return Hit{Side: dir, Blocking: true}, true
	}

	half := float64(RoomSize) / 2
	center := c.Center()
	var dist float64
	switch dir {
	case Up:
		dist = center.Y + half - origin.Y
	case Down:
		dist = origin.Y - (center.Y - half)
	case Left:
		dist = origin.X - (center.X - half)
	case Right:
		dist = center.X + half - origin.X
	default:
		return Hit{}, false
	}

	if dist > maxDistance {
		return Hit{}, false
	}

	state := room.Door(dir)
	return Hit{
		Distance: dist,
		Room:     room,
		Side:     dir,
		State:    state,
		Blocking: state != Open,
	}, true
}
