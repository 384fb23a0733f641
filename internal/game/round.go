package game

// StepResult summarises one simulation step of a round.
type StepResult struct {
	Deaths   []Death
	Alive    int
	Over     bool
	Survivor int // sole survivor of a finished round, -1 if none
}

// Death records a player eliminated this step.
type Death struct {
	Player int
	Cause  DeathCause
}

// Round owns all per-round simulation state. Snake slots are stable for the
// round's lifetime; dead snakes stay in place and stop being updated.
type Round struct {
	vp     Viewport
	frame  uint64
	snakes []*Snake
	causes []DeathCause

	bitmap *TrailBitmap
	queue  *TrailQueue

	gapEvery, gapLength int

	// laid holds the trail pixels queued during the last step; discs the
	// last body drawn per snake.
	laid  []Paint
	discs [][]Paint
}

// NewRound starts a round over a fresh bitmap and queue.
func NewRound(s Settings, snakes []*Snake) (*Round, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	delay, err := s.ResolveBufferDelay()
	if err != nil {
		return nil, err
	}
	r := &Round{
		vp:        s.Viewport(),
		snakes:    snakes,
		causes:    make([]DeathCause, len(snakes)),
		bitmap:    NewTrailBitmap(s.Width, s.Height),
		queue:     NewTrailQueue(delay),
		gapEvery:  s.GapEvery,
		gapLength: s.GapLength,
		discs:     make([][]Paint, len(snakes)),
	}
	for i, sn := range snakes {
		r.discs[i] = sn.Disc(r.vp)
	}
	return r, nil
}

func (r *Round) Frame() uint64          { return r.frame }
func (r *Round) Snakes() []*Snake       { return r.snakes }
func (r *Round) Bitmap() *TrailBitmap   { return r.bitmap }
func (r *Round) Queue() *TrailQueue     { return r.queue }
func (r *Round) Viewport() Viewport     { return r.vp }
func (r *Round) Dead(i int) bool        { return r.causes[i] != CauseNone }
func (r *Round) Cause(i int) DeathCause { return r.causes[i] }
func (r *Round) Laid() []Paint          { return r.laid }
func (r *Round) LastDisc(i int) []Paint { return r.discs[i] }

// Alive counts the snakes still in play.
func (r *Round) Alive() int {
	n := 0
	for _, c := range r.causes {
		if c == CauseNone {
			n++
		}
	}
	return n
}

// inGap reports whether snake i leaves a hole this frame. Players are
// staggered across the gap period.
func (r *Round) inGap(i int) bool {
	if r.gapEvery <= 0 || r.gapLength <= 0 {
		return false
	}
	phase := (r.frame + uint64(i*r.gapEvery/len(r.snakes))) % uint64(r.gapEvery)
	return phase >= uint64(r.gapEvery-r.gapLength)
}

// Step advances the round by one frame. turns is indexed by player; missing
// entries mean no turn.
func (r *Round) Step(turns []TurnDirection) StepResult {
	res := StepResult{Survivor: -1}
	r.laid = r.laid[:0]

	for i, sn := range r.snakes {
		if r.Dead(i) {
			continue
		}
		sn.Translate()
		if i < len(turns) {
			sn.Turn(turns[i])
		}
	}

	for i, sn := range r.snakes {
		if r.Dead(i) {
			continue
		}
		r.discs[i] = sn.AppendDisc(r.discs[i][:0], r.vp)
		if !r.inGap(i) {
			start := r.queue.Len()
			sn.EnqueueTrail(r.frame, r.vp, r.queue)
			r.appendLaid(start)
		}

		switch {
		case sn.CollidesWithTrail(r.vp, r.bitmap):
			r.causes[i] = CauseTrail
		case sn.OutOfBounds(r.vp):
			r.causes[i] = CauseWall
		}
		if r.causes[i] != CauseNone {
			res.Deaths = append(res.Deaths, Death{Player: i, Cause: r.causes[i]})
		}
	}

	res.Alive = r.Alive()
	if res.Alive <= 1 {
		res.Over = true
		for i := range r.snakes {
			if !r.Dead(i) {
				res.Survivor = i
			}
		}
		return res
	}

	r.queue.Promote(r.frame, r.bitmap)
	r.frame++
	return res
}

// appendLaid copies queue entries from index start onward into laid.
func (r *Round) appendLaid(start int) {
	for i := r.queue.head + start; i < len(r.queue.entries); i++ {
		e := r.queue.entries[i]
		r.laid = append(r.laid, Paint{Pixel: e.Pixel, Colour: e.Colour})
	}
}
