package generator

import (
	"roomcrawl/pkg/engine/world"
)

// GenerateMainPath places the start and boss rooms and walks from start to
// end, placing a room on every step. Each step moves one room along an axis
// that still has distance left, so the walk never backtracks and ends after
// exactly Manhattan(start, end) / RoomSize steps.
func (g *Generator) GenerateMainPath(start, end world.Coordinate) error {
	if start == end {
		return ErrStartIsBoss
	}

	// Start and boss bypass the surround checks; the boss room may be a dead end
	if _, err := g.placeRoom(start, world.Placement{Template: g.Templates.StartTemplate(), StartRoom: true}); err != nil {
		return err
	}
	if _, err := g.placeRoom(end, world.Placement{Template: g.Templates.BossTemplate(), BossRoom: true}); err != nil {
		return err
	}

	current := start
	for current != end {
		next := world.Step(current, g.weightedDirection(current, end))
		if next != end {
			if _, err := g.placeRoom(next, world.Placement{Template: g.Templates.RandomTemplate(g.rng)}); err != nil {
				return err
			}
			g.roomCount++
		}
		current = next
	}
	return nil
}

// weightedDirection picks the next step toward target. When both axes still
// have distance left, X is chosen with probability |dx| / (|dx| + |dy|).
func (g *Generator) weightedDirection(current, target world.Coordinate) world.Direction {
	delta := target.Sub(current)

	horizontal := world.Left
	if delta.X > 0 {
		horizontal = world.Right
	}
	vertical := world.Down
	if delta.Y > 0 {
		vertical = world.Up
	}

	if delta.X == 0 {
		return vertical
	}
	if delta.Y == 0 {
		return horizontal
	}

	absX, absY := abs(delta.X), abs(delta.Y)
	xProbability := float64(absX) / float64(absX+absY)
	if g.rng.Float64() < xProbability {
		return horizontal
	}
	return vertical
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
