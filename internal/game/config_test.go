package game

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultSettingsValid(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("Defaults should validate: %v", err)
	}
	if s.FrameInterval() != time.Second/60 {
		t.Errorf("Expected 60 fps interval, got %v", s.FrameInterval())
	}
	k := s.Kinematics()
	if k.TurningVelocity != DefaultTurnFactor*DefaultVelocity {
		t.Errorf("Turning velocity should scale with velocity, got %v", k.TurningVelocity)
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
		err    error
	}{
		{"zero width", func(s *Settings) { s.Width = 0 }, ErrInvalidSettings},
		{"negative velocity", func(s *Settings) { s.Velocity = -2 }, ErrInvalidSettings},
		{"negative turn factor", func(s *Settings) { s.TurnFactor = -0.1 }, ErrInvalidSettings},
		{"zero radius", func(s *Settings) { s.Radius = 0 }, ErrInvalidSettings},
		{"zero fps", func(s *Settings) { s.FrameRate = 0 }, ErrInvalidSettings},
		{"negative pause", func(s *Settings) { s.RoundPause = -time.Second }, ErrInvalidSettings},
		{"gap too long", func(s *Settings) { s.GapEvery, s.GapLength = 10, 10 }, ErrInvalidSettings},
		{"fat snake", func(s *Settings) { s.Radius = 70 }, ErrTurningCircleTooTight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)
			if err := s.Validate(); !errors.Is(err, tt.err) {
				t.Errorf("Expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestResolveBufferDelay(t *testing.T) {
	s := DefaultSettings()
	s.BufferDelay = 9
	if d, err := s.ResolveBufferDelay(); err != nil || d != 9 {
		t.Errorf("Explicit delay should win, got %d (%v)", d, err)
	}
	s.BufferDelay = 0
	if d, err := s.ResolveBufferDelay(); err != nil || d != 3 {
		t.Errorf("Expected derived delay 3, got %d (%v)", d, err)
	}
}

func TestValidatePlayers(t *testing.T) {
	for n := -1; n <= 5; n++ {
		err := ValidatePlayers(n)
		want := n >= MinPlayers && n <= MaxPlayers
		if (err == nil) != want {
			t.Errorf("ValidatePlayers(%d): got %v", n, err)
		}
		if err != nil && !errors.Is(err, ErrInvalidPlayerCount) {
			t.Errorf("ValidatePlayers(%d): expected ErrInvalidPlayerCount, got %v", n, err)
		}
	}
}
