package game

import "time"

// Clock supplies wall-clock time for real-time pacing such as the round
// pause. Simulation progress never depends on it.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic system clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
