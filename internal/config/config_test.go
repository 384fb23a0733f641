package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"curve/internal/game"
)

func writeEnv(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "curve.env")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Missing default env file should not fail: %v", err)
	}
	if cfg.Settings != game.DefaultSettings() {
		t.Errorf("Expected default settings, got %+v", cfg.Settings)
	}
	if !cfg.Audio || cfg.Debug {
		t.Errorf("Expected audio on and debug off, got %+v", cfg)
	}
}

func TestLoadDefaultEnvFileFromWorkingDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, DefaultEnvFile), []byte("CURVE_RADIUS=2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Settings.Radius != 2 {
		t.Errorf("Expected radius 2 from .env, got %d", cfg.Settings.Radius)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := writeEnv(t, `# match tuning
CURVE_WIDTH=640
CURVE_HEIGHT=480
CURVE_VELOCITY=3
CURVE_ROUND_PAUSE=250ms
CURVE_GAP_EVERY=90
CURVE_GAP_LENGTH=8
CURVE_SEED=12345
CURVE_AUDIO=false
CURVE_DEBUG=true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	s := cfg.Settings
	if s.Width != 640 || s.Height != 480 || s.Velocity != 3 {
		t.Errorf("Unexpected geometry %+v", s)
	}
	if s.RoundPause != 250*time.Millisecond {
		t.Errorf("Expected 250ms pause, got %v", s.RoundPause)
	}
	if s.GapEvery != 90 || s.GapLength != 8 || s.Seed != 12345 {
		t.Errorf("Unexpected gaps/seed %+v", s)
	}
	if cfg.Audio || !cfg.Debug {
		t.Errorf("Expected audio off and debug on, got %+v", cfg)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeEnv(t, "CURVE_FPS=30\nCURVE_RADIUS=4\n")
	t.Setenv("CURVE_FPS", "120")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Settings.FrameRate != 120 {
		t.Errorf("Expected environment to win, got %d", cfg.Settings.FrameRate)
	}
	if cfg.Settings.Radius != 4 {
		t.Errorf("Expected radius from file, got %d", cfg.Settings.Radius)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"malformed int", "CURVE_WIDTH", "wide"},
		{"malformed float", "CURVE_VELOCITY", "fast"},
		{"malformed bool", "CURVE_AUDIO", "maybe"},
		{"malformed duration", "CURVE_ROUND_PAUSE", "1 second"},
		{"negative seed", "CURVE_SEED", "-1"},
		{"zero fps", "CURVE_FPS", "0"},
		{"gap longer than period", "CURVE_GAP_EVERY", "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv("CURVE_GAP_LENGTH", "")
			if tt.key == "CURVE_GAP_EVERY" {
				t.Setenv("CURVE_GAP_LENGTH", "5")
			}
			t.Setenv(tt.key, tt.val)
			_, err := Load("")
			if !errors.Is(err, game.ErrInvalidSettings) {
				t.Errorf("Expected ErrInvalidSettings, got %v", err)
			}
		})
	}
}

func TestLoadTurningCircleTooTight(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CURVE_RADIUS", "80")
	if _, err := Load(""); !errors.Is(err, game.ErrTurningCircleTooTight) {
		t.Errorf("Expected ErrTurningCircleTooTight, got %v", err)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	if !errors.Is(err, game.ErrInvalidSettings) {
		t.Errorf("Expected error for a missing named file, got %v", err)
	}
}
