package game

import (
	"fmt"
	"time"
)

// Input is everything the environment reports for one frame.
type Input struct {
	Turns       []TurnDirection // per player slot
	TogglePause bool
	Quit        bool
}

// Match runs an unbounded sequence of rounds over persistent scores.
type Match struct {
	settings Settings
	players  int
	scores   []int

	state       GameState
	round       *Round
	roundNo     int
	endingUntil time.Time
	stepped     bool

	clock   Clock
	spawner Spawner
	rng     *Rand
	events  *EventBus
	seed    uint64
	seeded  bool
}

type Option func(*Match)

func WithClock(c Clock) Option       { return func(m *Match) { m.clock = c } }
func WithSpawner(s Spawner) Option   { return func(m *Match) { m.spawner = s } }
func WithEvents(eb *EventBus) Option { return func(m *Match) { m.events = eb } }

// WithSeed fixes spawn randomness, overriding Settings.Seed.
func WithSeed(seed uint64) Option {
	return func(m *Match) { m.seed, m.seeded = seed, true }
}

// NewMatch validates the configuration and starts the first round.
func NewMatch(players int, s Settings, opts ...Option) (*Match, error) {
	if err := ValidatePlayers(players); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	m := &Match{
		settings: s,
		players:  players,
		scores:   make([]int, players),
		clock:    SystemClock{},
		spawner:  RandomSpawner,
		events:   NewEventBus(),
		seed:     s.Seed,
		seeded:   s.Seed != 0,
	}
	for _, opt := range opts {
		opt(m)
	}
	if !m.seeded {
		m.seed = uint64(m.clock.Now().UnixNano())
	}
	m.rng = NewRand(m.seed)
	if err := m.startRound(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Match) State() GameState   { return m.state }
func (m *Match) Round() *Round      { return m.round }
func (m *Match) RoundNumber() int   { return m.roundNo }
func (m *Match) Players() int       { return m.players }
func (m *Match) Events() *EventBus  { return m.events }
func (m *Match) Settings() Settings { return m.settings }

// Done reports that the match has stopped and the caller may exit.
func (m *Match) Done() bool { return m.state == StateExit }

// Scores returns a copy of the tally.
func (m *Match) Scores() []int {
	out := make([]int, len(m.scores))
	copy(out, m.scores)
	return out
}

func (m *Match) startRound() error {
	snakes := m.spawner(m.players, m.settings.Viewport(), m.settings.Kinematics(), m.rng)
	if len(snakes) != m.players {
		return fmt.Errorf("spawner returned %d snakes for %d players", len(snakes), m.players)
	}
	r, err := NewRound(m.settings, snakes)
	if err != nil {
		return err
	}
	m.round = r
	m.roundNo++
	m.state = StatePlaying
	m.emit(Event{Type: EventRoundStarted, Player: -1})
	return nil
}

func (m *Match) emit(e Event) {
	e.Round = m.roundNo
	e.Frame = m.round.Frame()
	m.events.Emit(e)
}

// Tick runs one frame of the state machine. It never blocks. An error
// means a new round could not be set up.
func (m *Match) Tick(in Input) error {
	m.stepped = false
	if m.state == StateExit {
		return nil
	}
	if in.Quit {
		m.state = StateExit
		m.emit(Event{Type: EventMatchExit, Player: -1})
		return nil
	}

	switch m.state {
	case StatePlaying:
		if in.TogglePause {
			m.state = StatePaused
			m.emit(Event{Type: EventPaused, Player: -1})
			return nil
		}
		m.step(in.Turns)

	case StatePaused:
		if in.TogglePause {
			m.state = StatePlaying
			m.emit(Event{Type: EventResumed, Player: -1})
		}

	case StateRoundEnding:
		if !m.clock.Now().Before(m.endingUntil) {
			return m.startRound()
		}
	}
	return nil
}

func (m *Match) step(turns []TurnDirection) {
	res := m.round.Step(turns)
	m.stepped = true
	for _, d := range res.Deaths {
		m.emit(Event{Type: EventSnakeDied, Player: d.Player, Cause: d.Cause})
	}
	if !res.Over {
		return
	}
	if res.Survivor >= 0 {
		m.scores[res.Survivor]++
	}
	m.state = StateRoundEnding
	m.endingUntil = m.clock.Now().Add(m.settings.RoundPause)
	m.emit(Event{Type: EventRoundOver, Player: res.Survivor})
}
