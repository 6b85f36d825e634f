package state

import (
	"github.com/google/uuid"

	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/config"
)

// Growth applied to the run after every boss room is cleared
const (
	RoomCountStep        = 6
	BranchMaxCountStep   = 1
	EndDistanceStep      = 2
	HealthMultiplierStep = 0.5
)

// RunState holds the progress counters of one run. They survive level
// regenerations and only change when a boss room is cleared.
type RunState struct {
	RunID uuid.UUID

	RoomCount        int
	BranchMinCount   int
	BranchMaxCount   int
	EndDistance      int
	HealthMultiplier float64

	Level         int // Current level/floor number
	BossesCleared int

	base config.Progress
}

// NewRunState creates a run starting from the given progress values
func NewRunState(base config.Progress) *RunState {
	r := &RunState{base: base}
	r.Init()
	return r
}

// Init starts a fresh run: new id, counters back to their starting values
func (r *RunState) Init() {
	r.RunID = uuid.New()
	r.RoomCount = r.base.RoomCount
	r.BranchMinCount = r.base.BranchMinCount
	r.BranchMaxCount = r.base.BranchMaxCount
	r.EndDistance = r.base.EndDistance
	r.HealthMultiplier = r.base.HealthMultiplier
	r.Level = 1
	r.BossesCleared = 0
}

// Reset abandons the current run and starts a new one
func (r *RunState) Reset() {
	r.Init()
}

// AdvanceAfterBoss grows the next dungeon and increments the level counter
func (r *RunState) AdvanceAfterBoss() {
	r.RoomCount += RoomCountStep
	r.BranchMaxCount += BranchMaxCountStep
	r.EndDistance += EndDistanceStep
	r.HealthMultiplier += HealthMultiplierStep
	r.BossesCleared++
	r.Level++
}

// Progress returns the current counters in config form
func (r *RunState) Progress() config.Progress {
	return config.Progress{
		RoomCount:        r.RoomCount,
		BranchMinCount:   r.BranchMinCount,
		BranchMaxCount:   r.BranchMaxCount,
		EndDistance:      r.EndDistance,
		HealthMultiplier: r.HealthMultiplier,
	}
}

// Game represents the state of one play session
type Game struct {
	Grid *world.Grid

	Run *RunState

	// Seed used to generate the current level
	Seed int64

	Messages []string
}

// NewGame creates a new game instance for the given run
func NewGame(run *RunState) *Game {
	return &Game{
		Run:      run,
		Messages: make([]string, 0),
	}
}

// Level returns the current level number
func (g *Game) Level() int {
	return g.Run.Level
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
