package gameplay

import (
	"log"

	"roomcrawl/pkg/engine/world"
)

// wallMargin keeps the player just inside a blocking edge
const wallMargin = 0.5

// MovePlayer moves the player by (dx, dy) world units inside the active room.
// Walls and closed doors stop the player at the edge; crossing an open door
// requests a transition into the neighboring room.
func (s *Session) MovePlayer(dx, dy float64) {
	if s.dead || s.Player.InputLocked() || s.Coordinator.Busy() {
		return
	}
	s.moveAxis(dx, world.Right, world.Left)
	s.moveAxis(dy, world.Up, world.Down)
}

func (s *Session) moveAxis(d float64, positive, negative world.Direction) {
	if d == 0 || s.Coordinator.Busy() {
		return
	}
	dir := positive
	dist := d
	if d < 0 {
		dir = negative
		dist = -d
	}

	pos := s.Player.Position()
	hit, ok := s.oracle.Raycast(pos, dir, dist)
	if ok && hit.Blocking {
		dist = max(hit.Distance-wallMargin, 0)
	}
	if dist == 0 {
		return
	}

	ddx, ddy := dir.Delta()
	s.Player.Move(float64(ddx)*dist, float64(ddy)*dist)

	if !ok || hit.Blocking {
		return
	}

	// Through an open door: the player now stands in the next room
	dest, found := s.Game.Grid.TryGet(world.RoomAt(s.Player.Position()))
	if !found || dest.Active {
		return
	}
	if err := s.Coordinator.Request(dest, dir.Opposite()); err != nil {
		log.Printf("Transition into %v rejected: %v", dest.Coord, err)
		s.Player.PlaceAt(pos)
	}
}
