// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"roomcrawl/pkg/engine/world"
)

// Reachable returns every room coordinate connected to from through enabled doors
func Reachable(g *world.Grid, from world.Coordinate) mapset.Set[world.Coordinate] {
	visited := mapset.New[world.Coordinate]()
	if !g.Has(from) {
		return visited
	}

	q := queue.New[world.Coordinate]()
	q.Enqueue(from)
	visited.Put(from)

	for !q.Empty() {
		c := q.Dequeue()
		room, _ := g.TryGet(c)
		for _, dir := range world.AllDirections() {
			if !room.HasDoor(dir) {
				continue
			}
			next := world.Step(c, dir)
			if visited.Has(next) || !g.Has(next) {
				continue
			}
			visited.Put(next)
			q.Enqueue(next)
		}
	}
	return visited
}

// Check runs every structural check on a generated grid and returns the problems found
func Check(g *world.Grid) []string {
	var problems []string
	if msg := g.Validate(); msg != "" {
		problems = append(problems, msg)
	}
	if msg := CheckConnectivity(g); msg != "" {
		problems = append(problems, msg)
	}
	problems = append(problems, CheckSurrounded(g)...)
	return problems
}

// CheckConnectivity verifies that the boss and every other room can be reached from the start room
func CheckConnectivity(g *world.Grid) string {
	start := g.StartRoom()
	if start == nil {
		return "Grid has no start room"
	}
	seen := Reachable(g, start.Coord)
	if boss := g.BossRoom(); boss != nil && !seen.Has(boss.Coord) {
		return fmt.Sprintf("Boss room %v unreachable from start %v", boss.Coord, start.Coord)
	}
	if seen.Size() != g.Len() {
		return fmt.Sprintf("Only %d of %d rooms reachable from start", seen.Size(), g.Len())
	}
	return ""
}

// CheckSurrounded reports every room whose four neighbors are all occupied
func CheckSurrounded(g *world.Grid) []string {
	var problems []string
	g.ForEachRoom(func(r *world.Room) {
		if g.IsSurrounded(r.Coord) {
			problems = append(problems, fmt.Sprintf("Room %v is surrounded", r.Coord))
		}
	})
	return problems
}
