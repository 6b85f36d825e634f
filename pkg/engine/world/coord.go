package world

import (
	"fmt"
	"math"
)

// RoomSize is the lattice spacing in world units (16 tiles of 4 units).
const RoomSize = 16 * 4

// Coordinate is a room position in world units. Valid room coordinates are
// multiples of RoomSize on both axes.
type Coordinate struct {
	X int
	Y int
}

// Lattice returns the coordinate of lattice cell (i, j)
func Lattice(i, j int) Coordinate {
	return Coordinate{X: i * RoomSize, Y: j * RoomSize}
}

// Step returns the coordinate one room away from c in the given direction
func Step(c Coordinate, dir Direction) Coordinate {
	dx, dy := dir.Delta()
	return Coordinate{X: c.X + dx*RoomSize, Y: c.Y + dy*RoomSize}
}

// Sub returns the component-wise difference c - o
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y}
}

// Manhattan returns the Manhattan distance between c and o in world units
func (c Coordinate) Manhattan(o Coordinate) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// IsAligned reports whether c sits on the room lattice
func (c Coordinate) IsAligned() bool {
	return c.X%RoomSize == 0 && c.Y%RoomSize == 0
}

// LatticeIndex returns the lattice cell indices of an aligned coordinate
func (c Coordinate) LatticeIndex() (i, j int) {
	return c.X / RoomSize, c.Y / RoomSize
}

// Center returns the world-space center of the room at c
func (c Coordinate) Center() Vec2 {
	return Vec2{X: float64(c.X), Y: float64(c.Y)}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Vec2 is a continuous world-space position used by actors
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v offset by (dx, dy)
func (v Vec2) Add(dx, dy float64) Vec2 {
	return Vec2{X: v.X + dx, Y: v.Y + dy}
}

// RoomAt returns the lattice coordinate whose room contains v.
// Rooms are centered on their coordinate and span RoomSize on each axis.
func RoomAt(v Vec2) Coordinate {
	return Coordinate{X: snap(v.X), Y: snap(v.Y)}
}

func snap(f float64) int {
	half := float64(RoomSize) / 2
	return int(math.Floor((f+half)/RoomSize)) * RoomSize
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
