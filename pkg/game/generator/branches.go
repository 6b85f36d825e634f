package generator

import (
	"roomcrawl/pkg/engine/world"
)

// AddBranches grows dead-end chains off random placed rooms until the room
// count reaches the target. Each chain has a length drawn from
// [MinBranchSize, MaxBranchSize] and is abandoned as soon as it stalls.
// At most MaxAttempts roots are tried before giving up with a *GenerationError.
func (g *Generator) AddBranches() error {
	attempts := 0
	for g.params.TargetRoomCount > g.roomCount {
		if attempts >= g.params.MaxAttempts {
			return &GenerationError{Placed: g.roomCount, Target: g.params.TargetRoomCount, Attempts: attempts}
		}
		attempts++

		location := g.randomRoom()
		if location == g.params.End {
			continue
		}

		length := g.params.MinBranchSize + g.rng.Intn(g.params.MaxBranchSize-g.params.MinBranchSize+1)
		for i := 0; i < length && g.params.TargetRoomCount > g.roomCount; i++ {
			next, err := g.PlaceRandomNeighboringRoom(location)
			if err != nil {
				return err
			}
			if next == location {
				break
			}
			location = next
		}
	}
	return nil
}

// PlaceRandomNeighboringRoom tries the four neighbors of location in random
// order and places a room on the first one that is free, not already
// surrounded, and would not close in any of its own neighbors. It returns the
// new room's coordinate, or location unchanged when no direction qualifies.
func (g *Generator) PlaceRandomNeighboringRoom(location world.Coordinate) (world.Coordinate, error) {
	directions := world.AllDirections()
	g.rng.Shuffle(len(directions), func(i, j int) {
		directions[i], directions[j] = directions[j], directions[i]
	})

	for _, dir := range directions {
		candidate := world.Step(location, dir)
		if !g.canPlaceBranchRoom(candidate) {
			continue
		}
		if _, err := g.placeRoom(candidate, world.Placement{Template: g.Templates.RandomTemplate(g.rng)}); err != nil {
			return location, err
		}
		g.roomCount++
		return candidate, nil
	}
	return location, nil
}

func (g *Generator) canPlaceBranchRoom(candidate world.Coordinate) bool {
	if g.grid.Has(candidate) || g.grid.IsSurrounded(candidate) {
		return false
	}
	// The neighbor on side dir sees the candidate on its opposite side
	for _, dir := range world.AllDirections() {
		if g.grid.WouldSurround(world.Step(candidate, dir), dir.Opposite()) {
			return false
		}
	}
	return true
}

func (g *Generator) randomRoom() world.Coordinate {
	return g.grid.At(g.rng.Intn(g.grid.Len())).Coord
}
