// Package generator builds lattice dungeons: a main path from the start room
// to the boss room, padded with dead-end branches up to a target room count.
package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"roomcrawl/pkg/engine/world"
)

var (
	// ErrGenerationFailed is wrapped by *GenerationError when branch growth runs out of attempts
	ErrGenerationFailed = errors.New("generation failed")
	// ErrStartIsBoss is returned when the start and boss coordinates coincide
	ErrStartIsBoss = errors.New("start and boss coordinates coincide")
	// ErrInvalidParams is returned for parameters the generator cannot work with
	ErrInvalidParams = errors.New("invalid generation parameters")
)

// GenerationError reports a branch phase that could not reach its target
type GenerationError struct {
	Placed   int
	Target   int
	Attempts int
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: placed %d of %d rooms after %d branch attempts", e.Placed, e.Target, e.Attempts)
}

func (e *GenerationError) Unwrap() error {
	return ErrGenerationFailed
}

// ContentFactory instantiates the static content of a placed room.
// The generator only names the template, it never looks inside.
type ContentFactory interface {
	Instantiate(c world.Coordinate, template string) error
}

// TemplatePicker hands out template names for the rooms being placed
type TemplatePicker interface {
	StartTemplate() string
	BossTemplate() string
	RandomTemplate(rng *rand.Rand) string
}

// Params are the inputs of one generation pass
type Params struct {
	Start           world.Coordinate
	End             world.Coordinate
	TargetRoomCount int
	MinBranchSize   int
	MaxBranchSize   int
	// MaxAttempts bounds the number of branch roots tried
	MaxAttempts int
}

// Validate checks the parameters before any room is placed
func (p Params) Validate() error {
	switch {
	case !p.Start.IsAligned() || !p.End.IsAligned():
		return fmt.Errorf("%w: %v", ErrInvalidParams, world.ErrUnaligned)
	case p.Start == p.End:
		return ErrStartIsBoss
	case p.TargetRoomCount < 0:
		return fmt.Errorf("%w: negative target room count", ErrInvalidParams)
	case p.MinBranchSize < 1 || p.MaxBranchSize < p.MinBranchSize:
		return fmt.Errorf("%w: branch size range [%d, %d]", ErrInvalidParams, p.MinBranchSize, p.MaxBranchSize)
	case p.MaxAttempts < 1:
		return fmt.Errorf("%w: max attempts must be at least 1", ErrInvalidParams)
	}
	return nil
}

// Generator places rooms on a fresh grid. It is not safe for concurrent use;
// one generator runs one pass at a time.
type Generator struct {
	Templates TemplatePicker
	Content   ContentFactory

	rng       *rand.Rand
	grid      *world.Grid
	params    Params
	roomCount int
}

// New creates a generator drawing from rng. content may be nil.
func New(rng *rand.Rand, templates TemplatePicker, content ContentFactory) *Generator {
	return &Generator{
		Templates: templates,
		Content:   content,
		rng:       rng,
		grid:      world.NewGrid(),
	}
}

// Name returns the name of this generator
func (g *Generator) Name() string {
	return "Weighted Walk"
}

// Grid returns the grid of the current pass
func (g *Generator) Grid() *world.Grid {
	return g.grid
}

// RoomCount returns the number of rooms placed besides the start and boss rooms
func (g *Generator) RoomCount() int {
	return g.roomCount
}

// Reset starts a new pass on an empty grid
func (g *Generator) Reset(p Params) {
	g.grid = world.NewGrid()
	g.params = p
	g.roomCount = 0
}

// Generate runs a full pass: main path, then branches. The returned grid is frozen.
func (g *Generator) Generate(p Params) (*world.Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g.Reset(p)

	if err := g.GenerateMainPath(p.Start, p.End); err != nil {
		return nil, err
	}
	if err := g.AddBranches(); err != nil {
		return nil, err
	}

	g.grid.Freeze()
	if msg := g.grid.Validate(); msg != "" {
		return nil, fmt.Errorf("generated invalid grid: %s", msg)
	}
	return g.grid, nil
}

// placeRoom puts a room on the grid and asks the content factory to build it
func (g *Generator) placeRoom(c world.Coordinate, p world.Placement) (*world.Room, error) {
	r, err := g.grid.Place(c, p)
	if err != nil {
		return nil, err
	}
	if g.Content != nil {
		if err := g.Content.Instantiate(c, p.Template); err != nil {
			return nil, err
		}
	}
	return r, nil
}
