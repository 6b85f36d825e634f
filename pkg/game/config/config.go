// Package config holds the tunables of a run: generation sizes, door and
// camera timings, healing and the progress values a fresh run starts with.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults
const (
	DefaultHealAmount        = 30.0
	DefaultDoorPushDistance  = 10.0
	DefaultCameraSpeed       = 85.0 // world units per second
	DefaultTransitionTimeout = 5.0  // seconds
	DefaultSceneChangeDelay  = 2.0  // seconds
	DefaultMaxBranchAttempts = 512
	DefaultGenerationRetries = 8
	DefaultPlayerSpeed       = 48.0
	DefaultPlayerMaxHealth   = 100.0
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Progress is the starting point of the run progress counters
type Progress struct {
	RoomCount        int     `yaml:"room_count"`
	BranchMinCount   int     `yaml:"branch_min_count"`
	BranchMaxCount   int     `yaml:"branch_max_count"`
	EndDistance      int     `yaml:"end_distance"`
	HealthMultiplier float64 `yaml:"health_multiplier"`
}

// Config is the full set of run tunables
type Config struct {
	HealAmount        float64 `yaml:"heal_amount"`
	DoorPushDistance  float64 `yaml:"door_push_distance"`
	CameraSpeed       float64 `yaml:"camera_speed"`
	TransitionTimeout float64 `yaml:"transition_timeout"`
	SceneChangeDelay  float64 `yaml:"scene_change_delay"`
	MaxBranchAttempts int     `yaml:"max_branch_attempts"`
	GenerationRetries int     `yaml:"generation_retries"`
	PlayerSpeed       float64 `yaml:"player_speed"`
	PlayerMaxHealth   float64 `yaml:"player_max_health"`

	Progress Progress `yaml:"progress"`

	// TemplatesFile optionally points at a room template catalogue
	TemplatesFile string `yaml:"templates_file"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		HealAmount:        DefaultHealAmount,
		DoorPushDistance:  DefaultDoorPushDistance,
		CameraSpeed:       DefaultCameraSpeed,
		TransitionTimeout: DefaultTransitionTimeout,
		SceneChangeDelay:  DefaultSceneChangeDelay,
		MaxBranchAttempts: DefaultMaxBranchAttempts,
		GenerationRetries: DefaultGenerationRetries,
		PlayerSpeed:       DefaultPlayerSpeed,
		PlayerMaxHealth:   DefaultPlayerMaxHealth,
		Progress: Progress{
			RoomCount:        5,
			BranchMinCount:   1,
			BranchMaxCount:   2,
			EndDistance:      4,
			HealthMultiplier: 0.5,
		},
	}
}

// Parse overlays YAML data on the defaults and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads a YAML config file. An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Validate checks the tunables for values the generator or the session cannot work with
func (c Config) Validate() error {
	switch {
	case c.HealAmount < 0:
		return fmt.Errorf("%w: heal_amount must not be negative", ErrInvalid)
	case c.DoorPushDistance < 0:
		return fmt.Errorf("%w: door_push_distance must not be negative", ErrInvalid)
	case c.CameraSpeed <= 0:
		return fmt.Errorf("%w: camera_speed must be positive", ErrInvalid)
	case c.TransitionTimeout <= 0:
		return fmt.Errorf("%w: transition_timeout must be positive", ErrInvalid)
	case c.SceneChangeDelay < 0:
		return fmt.Errorf("%w: scene_change_delay must not be negative", ErrInvalid)
	case c.MaxBranchAttempts < 1:
		return fmt.Errorf("%w: max_branch_attempts must be at least 1", ErrInvalid)
	case c.GenerationRetries < 1:
		return fmt.Errorf("%w: generation_retries must be at least 1", ErrInvalid)
	case c.PlayerSpeed <= 0 || c.PlayerMaxHealth <= 0:
		return fmt.Errorf("%w: player speed and health must be positive", ErrInvalid)
	}
	return c.Progress.Validate()
}

// Validate checks the progress counters
func (p Progress) Validate() error {
	switch {
	case p.RoomCount < 0:
		return fmt.Errorf("%w: room_count must not be negative", ErrInvalid)
	case p.BranchMinCount < 1:
		return fmt.Errorf("%w: branch_min_count must be at least 1", ErrInvalid)
	case p.BranchMaxCount < p.BranchMinCount:
		return fmt.Errorf("%w: branch_max_count %d below branch_min_count %d", ErrInvalid, p.BranchMaxCount, p.BranchMinCount)
	case p.EndDistance < 1:
		return fmt.Errorf("%w: end_distance must be at least 1", ErrInvalid)
	}
	return nil
}
