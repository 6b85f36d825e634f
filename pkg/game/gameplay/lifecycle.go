package gameplay

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/actors"
	"roomcrawl/pkg/game/config"
	"roomcrawl/pkg/game/generator"
	"roomcrawl/pkg/game/state"
	"roomcrawl/pkg/game/templates"
)

// NewSession creates a session for a fresh run and builds its first level.
// A zero seed picks a time based one.
func NewSession(cfg config.Config, catalog templates.Catalog, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		Game:    state.NewGame(state.NewRunState(cfg.Progress)),
		Config:  cfg,
		Catalog: catalog,
		Content: templates.NewFactory(catalog),
		Player:  actors.NewPlayer(cfg.PlayerMaxHealth, cfg.PlayerSpeed),
		Camera:  actors.NewCamera(cfg.CameraSpeed, world.Coordinate{}),
		Items:   actors.NewItemChoices(rand.New(rand.NewSource(seed))),
	}
	s.Rooms = &Rooms{
		Game:          s.Game,
		Player:        s.Player,
		Items:         s.Items,
		Content:       s.Content,
		HealAmount:    cfg.HealAmount,
		OnBossCleared: s.queueSceneChange,
	}

	if err := s.BuildLevel(seed, cfg.GenerationRetries); err != nil {
		return nil, err
	}
	return s, nil
}

// GenerateGrid generates a dungeon for the run's current progress from seed.
// The content factory is reset and refilled for the new grid.
func GenerateGrid(run *state.RunState, catalog templates.Catalog, content *templates.Factory, maxAttempts int, seed int64) (*world.Grid, error) {
	rng := rand.New(rand.NewSource(seed))

	content.Reset()
	content.HealthMultiplier = run.HealthMultiplier

	end, err := generator.PickBossCoordinate(rng, run.EndDistance)
	if err != nil {
		return nil, err
	}
	gen := generator.New(rng, catalog, content)
	return gen.Generate(generator.Params{
		Start:           world.Coordinate{},
		End:             end,
		TargetRoomCount: run.RoomCount,
		MinBranchSize:   run.BranchMinCount,
		MaxBranchSize:   run.BranchMaxCount,
		MaxAttempts:     maxAttempts,
	})
}

// BuildLevel generates the level for the current run state. Failed
// generations are retried with the next seed, up to retries attempts.
func (s *Session) BuildLevel(seed int64, retries int) error {
	retries = max(retries, 1)

	var lastErr error
	for attempt := 0; attempt < retries; attempt++ {
		try := seed + int64(attempt)
		grid, err := GenerateGrid(s.Game.Run, s.Catalog, s.Content, s.Config.MaxBranchAttempts, try)
		if err == nil {
			s.Game.Seed = try
			s.startLevel(grid)
			return nil
		}
		if !errors.Is(err, generator.ErrGenerationFailed) {
			return err
		}
		log.Printf("Level %d generation failed with seed %d: %v", s.Game.Run.Level, try, err)
		lastErr = err
	}
	return fmt.Errorf("level %d: %d attempts: %w", s.Game.Run.Level, retries, lastErr)
}

// startLevel puts the player in the start room of a freshly generated grid
func (s *Session) startLevel(grid *world.Grid) {
	s.Game.Grid = grid
	s.oracle = world.DoorOracle{Grid: grid}
	s.scenePending = false
	s.sceneTimer = 0
	s.dead = false

	s.Items.Reset()
	s.Player.Health = s.Player.MaxHealth
	s.Player.UnlockInput()

	s.Coordinator = NewCoordinator(grid, s.Rooms, s.Player, s.Camera, s.Config.DoorPushDistance, s.Config.TransitionTimeout)
	s.Coordinator.Reset(grid.StartRoom())

	s.Game.ClearMessages()
	logMessage(s.Game, "Level %d: %d rooms.", s.Game.Run.Level, grid.Len())
	logMessage(s.Game, "Find and defeat the guardian.")
}

// ResetLevel rebuilds the current level from the same seed
func (s *Session) ResetLevel() error {
	if err := s.BuildLevel(s.Game.Seed, 1); err != nil {
		return err
	}
	logMessage(s.Game, "Level reset!")
	return nil
}

// AdvanceLevel generates the next level with a fresh seed
func (s *Session) AdvanceLevel() error {
	return s.BuildLevel(time.Now().UnixNano(), s.Config.GenerationRetries)
}

// Restart abandons the run and starts over from level 1
func (s *Session) Restart() error {
	s.Game.Run.Reset()
	return s.BuildLevel(time.Now().UnixNano(), s.Config.GenerationRetries)
}
