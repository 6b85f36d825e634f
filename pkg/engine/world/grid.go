package world

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrOccupied is returned when placing a room on a coordinate that already holds one
	ErrOccupied = errors.New("coordinate already occupied")
	// ErrFrozen is returned when placing a room after the topology was frozen
	ErrFrozen = errors.New("room graph is frozen")
	// ErrConflictingFlags is returned when a room is placed as both start and boss room
	ErrConflictingFlags = errors.New("room cannot be both start and boss room")
	// ErrUnaligned is returned for coordinates that are not on the room lattice
	ErrUnaligned = errors.New("coordinate is not on the room lattice")
)

// Grid is the room graph: every placed room keyed by its coordinate.
// Rooms are never removed. Once frozen, the topology no longer changes while
// door states and the cleared/active flags still do.
type Grid struct {
	rooms  map[Coordinate]*Room
	order  []Coordinate
	frozen bool

	startRoom *Room
	bossRoom  *Room
}

// NewGrid creates an empty room graph
func NewGrid() *Grid {
	return &Grid{
		rooms: make(map[Coordinate]*Room),
	}
}

// Len returns the number of placed rooms
func (g *Grid) Len() int {
	return len(g.order)
}

// TryGet returns the room at c, if one was placed
func (g *Grid) TryGet(c Coordinate) (*Room, bool) {
	if g == nil || g.rooms == nil {
		return nil, false
	}
	r, ok := g.rooms[c]
	return r, ok
}

// Has reports whether a room occupies c
func (g *Grid) Has(c Coordinate) bool {
	_, ok := g.TryGet(c)
	return ok
}

// Place creates a room at c and links it with every already placed neighbor.
// Linking is symmetric: the new room's door toward a neighbor and the
// neighbor's door back are both enabled.
func (g *Grid) Place(c Coordinate, p Placement) (*Room, error) {
	if g.frozen {
		return nil, ErrFrozen
	}
	if !c.IsAligned() {
		return nil, fmt.Errorf("place %v: %w", c, ErrUnaligned)
	}
	if p.StartRoom && p.BossRoom {
		return nil, fmt.Errorf("place %v: %w", c, ErrConflictingFlags)
	}
	if g.Has(c) {
		return nil, fmt.Errorf("place %v: %w", c, ErrOccupied)
	}

	r := newRoom(c, p)
	g.rooms[c] = r
	g.order = append(g.order, c)

	if p.StartRoom {
		g.startRoom = r
	}
	if p.BossRoom {
		g.bossRoom = r
	}

	g.link(r)
	return r, nil
}

func (g *Grid) link(r *Room) {
	for _, dir := range AllDirections() {
		adj, ok := g.TryGet(Step(r.Coord, dir))
		if !ok {
			continue
		}
		r.enableDoor(dir)
		adj.enableDoor(dir.Opposite())
	}
}

// Neighbor returns the room adjacent to r in the given direction, or nil
func (g *Grid) Neighbor(r *Room, dir Direction) *Room {
	if r == nil || !dir.IsValid() {
		return nil
	}
	adj, _ := g.TryGet(Step(r.Coord, dir))
	return adj
}

// OccupiedSides returns the directions around c that hold a room
func (g *Grid) OccupiedSides(c Coordinate) mapset.Set[Direction] {
	sides := mapset.New[Direction]()
	for _, dir := range AllDirections() {
		if g.Has(Step(c, dir)) {
			sides.Put(dir)
		}
	}
	return sides
}

// IsSurrounded returns true if all four neighbor coordinates of c are occupied
func (g *Grid) IsSurrounded(c Coordinate) bool {
	return g.OccupiedSides(c).Size() == len(AllDirections())
}

// WouldSurround returns true if the room at c would have all four neighbors
// occupied once the coordinate in direction extra is occupied as well.
// An empty coordinate can never be surrounded.
func (g *Grid) WouldSurround(c Coordinate, extra Direction) bool {
	if !g.Has(c) {
		return false
	}
	sides := g.OccupiedSides(c)
	if extra.IsValid() {
		sides.Put(extra)
	}
	return sides.Size() == len(AllDirections())
}

// Freeze locks the topology; further Place calls fail with ErrFrozen
func (g *Grid) Freeze() {
	g.frozen = true
}

// Frozen reports whether the topology is locked
func (g *Grid) Frozen() bool {
	return g.frozen
}

// StartRoom returns the start room
func (g *Grid) StartRoom() *Room {
	return g.startRoom
}

// BossRoom returns the boss room
func (g *Grid) BossRoom() *Room {
	return g.bossRoom
}

// ActiveRoom returns the room currently marked active, or nil
func (g *Grid) ActiveRoom() *Room {
	for _, c := range g.order {
		if r := g.rooms[c]; r.Active {
			return r
		}
	}
	return nil
}

// Coordinates returns the placed coordinates in placement order
func (g *Grid) Coordinates() []Coordinate {
	out := make([]Coordinate, len(g.order))
	copy(out, g.order)
	return out
}

// At returns the i-th placed room in placement order
func (g *Grid) At(i int) *Room {
	return g.rooms[g.order[i]]
}

// ForEachRoom calls fn for every room in placement order
func (g *Grid) ForEachRoom(fn func(r *Room)) {
	for _, c := range g.order {
		fn(g.rooms[c])
	}
}

// Bounds returns the lattice index bounds of the placed rooms
func (g *Grid) Bounds() (minI, minJ, maxI, maxJ int) {
	for n, c := range g.order {
		i, j := c.LatticeIndex()
		if n == 0 {
			minI, maxI, minJ, maxJ = i, i, j, j
			continue
		}
		minI, maxI = min(minI, i), max(maxI, i)
		minJ, maxJ = min(minJ, j), max(maxJ, j)
	}
	return minI, minJ, maxI, maxJ
}

// Validate checks the graph for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.startRoom == nil {
		return "Grid has no start room"
	}
	if g.bossRoom == nil {
		return "Grid has no boss room"
	}
	if g.startRoom == g.bossRoom {
		return "Start room is also the boss room"
	}

	return g.CheckDoors()
}

// CheckDoors verifies that every door is Disabled exactly when no neighbor
// lies behind it. Returns an error description or empty string.
func (g *Grid) CheckDoors() string {
	for _, c := range g.order {
		r := g.rooms[c]
		for _, dir := range AllDirections() {
			if r.HasDoor(dir) != g.Has(Step(c, dir)) {
				return fmt.Sprintf("Room %v door %v disagrees with topology", c, dir)
			}
		}
	}
	return ""
}
