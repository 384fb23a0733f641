package game

type EventType int

const (
	EventSnakeDied EventType = iota
	EventRoundOver
	EventRoundStarted
	EventPaused
	EventResumed
	EventMatchExit
)

func (t EventType) String() string {
	switch t {
	case EventSnakeDied:
		return "snake-died"
	case EventRoundOver:
		return "round-over"
	case EventRoundStarted:
		return "round-started"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventMatchExit:
		return "match-exit"
	}
	return "unknown"
}

// DeathCause says what killed a snake.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseTrail
	CauseWall
)

func (c DeathCause) String() string {
	switch c {
	case CauseTrail:
		return "trail"
	case CauseWall:
		return "wall"
	}
	return "none"
}

type Event struct {
	Type   EventType
	Round  int
	Frame  uint64
	Player int // dying player, or round winner (-1 for none)
	Cause  DeathCause
}

type EventHandler func(Event)

// EventBus delivers match events synchronously on the simulation thread.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventSnakeDied; t <= EventMatchExit; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
