package generator

import (
	"fmt"
	"math/rand"

	"roomcrawl/pkg/engine/world"
)

// PickBossCoordinate chooses a boss room coordinate endDistance lattice steps
// (Manhattan) away from the origin. The X share is drawn from [0, endDistance)
// so the boss never lies on the X axis, and each axis is mirrored at random.
func PickBossCoordinate(rng *rand.Rand, endDistance int) (world.Coordinate, error) {
	if endDistance < 1 {
		return world.Coordinate{}, fmt.Errorf("%w: end distance %d", ErrInvalidParams, endDistance)
	}
	x := rng.Intn(endDistance)
	y := endDistance - x
	if rng.Float64() > 0.5 {
		x = -x
	}
	if rng.Float64() > 0.5 {
		y = -y
	}
	return world.Lattice(x, y), nil
}
