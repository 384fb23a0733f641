package game

import (
	"errors"
	"fmt"
	"time"
)

// Play area defaults (in pixels).
const (
	DefaultWidth  = 500
	DefaultHeight = 500
)

// Player limits. MaxPlayers is bounded by the colour and key tables.
const (
	MinPlayers = 2
	MaxPlayers = 3
)

// Snake defaults. Velocity is in pixels per frame; the turning velocity is a
// fixed fraction of it so the turning circle keeps its radius at any speed.
const (
	DefaultVelocity   = 2.2
	DefaultTurnFactor = 0.03
	DefaultRadius     = 3
)

// Timing defaults.
const (
	DefaultFrameRate  = 60
	DefaultRoundPause = time.Second
)

// Score bar layout (in pixels).
const (
	ScoreBarUnit   = 5
	ScoreBarHeight = 30
)

var (
	ErrInvalidPlayerCount    = errors.New("player count out of range")
	ErrInvalidSettings       = errors.New("invalid settings")
	ErrTurningCircleTooTight = errors.New("turning circle too tight for snake radius")
)

// Settings holds every tunable of a match.
type Settings struct {
	Width, Height int

	Velocity   float64
	TurnFactor float64
	Radius     int

	// BufferDelay is the number of frames a trail pixel waits before it
	// becomes collidable. Zero derives it from the kinematics.
	BufferDelay uint64

	// GapEvery and GapLength (frames) punch periodic holes in the trails.
	// GapEvery == 0 disables gaps.
	GapEvery  int
	GapLength int

	FrameRate  int
	RoundPause time.Duration

	// Seed feeds spawn randomness. Zero seeds from the clock.
	Seed uint64
}

func DefaultSettings() Settings {
	return Settings{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Velocity:   DefaultVelocity,
		TurnFactor: DefaultTurnFactor,
		Radius:     DefaultRadius,
		FrameRate:  DefaultFrameRate,
		RoundPause: DefaultRoundPause,
	}
}

// Validate checks ranges and that a usable buffer delay exists.
func (s Settings) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: play area %dx%d", ErrInvalidSettings, s.Width, s.Height)
	case s.Velocity <= 0:
		return fmt.Errorf("%w: velocity %v must be positive", ErrInvalidSettings, s.Velocity)
	case s.TurnFactor < 0:
		return fmt.Errorf("%w: turn factor %v must not be negative", ErrInvalidSettings, s.TurnFactor)
	case s.Radius <= 0:
		return fmt.Errorf("%w: radius %d must be positive", ErrInvalidSettings, s.Radius)
	case s.FrameRate <= 0:
		return fmt.Errorf("%w: frame rate %d must be positive", ErrInvalidSettings, s.FrameRate)
	case s.RoundPause < 0:
		return fmt.Errorf("%w: round pause %v must not be negative", ErrInvalidSettings, s.RoundPause)
	case s.GapEvery < 0 || s.GapLength < 0:
		return fmt.Errorf("%w: negative gap schedule", ErrInvalidSettings)
	case s.GapEvery > 0 && s.GapLength >= s.GapEvery:
		return fmt.Errorf("%w: gap length %d must be shorter than gap period %d", ErrInvalidSettings, s.GapLength, s.GapEvery)
	}
	if _, err := s.ResolveBufferDelay(); err != nil {
		return err
	}
	return nil
}

// Kinematics returns the per-snake motion parameters.
func (s Settings) Kinematics() Kinematics {
	return Kinematics{
		Velocity:        s.Velocity,
		TurningVelocity: s.TurnFactor * s.Velocity,
		Radius:          s.Radius,
	}
}

// Viewport returns the play area transform.
func (s Settings) Viewport() Viewport {
	return Viewport{Width: s.Width, Height: s.Height}
}

// FrameInterval is the wall-clock duration of one simulation step.
func (s Settings) FrameInterval() time.Duration {
	return time.Second / time.Duration(s.FrameRate)
}

// ResolveBufferDelay returns the configured delay, deriving it when unset.
func (s Settings) ResolveBufferDelay() (uint64, error) {
	if s.BufferDelay > 0 {
		return s.BufferDelay, nil
	}
	return DeriveBufferDelay(s.Kinematics())
}

// ValidatePlayers checks a player count against the supported range.
func ValidatePlayers(n int) error {
	if n < MinPlayers || n > MaxPlayers {
		return fmt.Errorf("%w: got %d, want %d to %d", ErrInvalidPlayerCount, n, MinPlayers, MaxPlayers)
	}
	return nil
}
