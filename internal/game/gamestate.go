package game

type GameState int

const (
	StatePlaying     GameState = iota
	StatePaused                // simulation frozen, rendering continues
	StateRoundEnding           // round decided, waiting out the round pause
	StateExit                  // quit requested; terminal
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateRoundEnding:
		return "round-ending"
	case StateExit:
		return "exit"
	}
	return "unknown"
}
