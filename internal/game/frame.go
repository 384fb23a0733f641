package game

// Body is what the environment draws for one player this frame.
type Body struct {
	Player int
	Colour Colour
	Paints []Paint
	Dead   bool
}

// Frame is the per-frame view of a match handed to the renderer. Slices
// alias match state and are only valid until the next Tick.
type Frame struct {
	State  GameState
	Round  int
	Count  uint64
	Scores []int
	Paused bool
	Bodies []Body

	// Laid are the trail pixels queued by the step that ran this tick;
	// empty when no step ran.
	Laid []Paint
}

// Frame exports the current state for rendering.
func (m *Match) Frame() Frame {
	r := m.round
	f := Frame{
		State:  m.state,
		Round:  m.roundNo,
		Count:  r.Frame(),
		Scores: m.Scores(),
		Paused: m.state == StatePaused,
		Bodies: make([]Body, len(r.snakes)),
	}
	for i, sn := range r.snakes {
		f.Bodies[i] = Body{
			Player: i,
			Colour: sn.Colour(),
			Paints: r.LastDisc(i),
			Dead:   r.Dead(i),
		}
	}
	if m.stepped {
		f.Laid = r.Laid()
	}
	return f
}
