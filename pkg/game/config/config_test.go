package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
}

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("heal_amount: 12\nprogress:\n  room_count: 9\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.HealAmount != 12 {
		t.Errorf("HealAmount = %v, want 12", cfg.HealAmount)
	}
	if cfg.Progress.RoomCount != 9 {
		t.Errorf("Progress.RoomCount = %d, want 9", cfg.Progress.RoomCount)
	}
	// Untouched values keep their defaults
	if cfg.CameraSpeed != DefaultCameraSpeed {
		t.Errorf("CameraSpeed = %v, want default %v", cfg.CameraSpeed, DefaultCameraSpeed)
	}
	if cfg.Progress.EndDistance != 4 {
		t.Errorf("Progress.EndDistance = %d, want 4", cfg.Progress.EndDistance)
	}
}

func TestParse_RejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"branch range":   "progress:\n  branch_min_count: 3\n  branch_max_count: 2\n",
		"camera speed":   "camera_speed: 0\n",
		"attempts":       "max_branch_attempts: 0\n",
		"end distance":   "progress:\n  end_distance: 0\n",
		"negative heal":  "heal_amount: -1\n",
		"retries":        "generation_retries: 0\n",
		"timeout":        "transition_timeout: 0\n",
		"negative delay": "scene_change_delay: -2\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(data)); !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalid", data, err)
			}
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("heal_amount: [")); err == nil {
		t.Error("Parse(malformed) error = nil, want error")
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil || cfg != Default() {
		t.Errorf("Load(\"\") = %+v, %v; want defaults", cfg, err)
	}

	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("scene_change_delay: 0.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.SceneChangeDelay != 0.5 {
		t.Errorf("SceneChangeDelay = %v, want 0.5", cfg.SceneChangeDelay)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}
