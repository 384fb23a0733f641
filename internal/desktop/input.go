package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"curve/internal/game"
)

// KeyBinding is the pair of turning keys of one player slot.
type KeyBinding struct {
	Left, Right glfw.Key
}

// DefaultBindings maps player slots to keys: 1/Q, Left/Right, G/H.
var DefaultBindings = [game.MaxPlayers]KeyBinding{
	{Left: glfw.Key1, Right: glfw.KeyQ},
	{Left: glfw.KeyLeft, Right: glfw.KeyRight},
	{Left: glfw.KeyG, Right: glfw.KeyH},
}

const (
	keyPause = glfw.KeySpace
	keyQuit  = glfw.KeyEscape
)

// Input samples held keys and detects presses across frames.
type Input struct {
	bindings []KeyBinding
	prevKeys map[glfw.Key]bool
	turns    []game.TurnDirection
}

func NewInput(players int) *Input {
	return &Input{
		bindings: DefaultBindings[:players],
		prevKeys: make(map[glfw.Key]bool),
		turns:    make([]game.TurnDirection, players),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func held(window *glfw.Window, key glfw.Key) bool {
	return window.GetKey(key) == glfw.Press
}

// Sample reads one frame of intents. The returned Turns slice is reused by
// the next call.
func (in *Input) Sample(window *glfw.Window) game.Input {
	for i, b := range in.bindings {
		in.turns[i] = game.ResolveTurn(held(window, b.Left), held(window, b.Right))
	}
	return game.Input{
		Turns:       in.turns,
		TogglePause: in.JustPressed(window, keyPause),
		Quit:        window.ShouldClose() || held(window, keyQuit),
	}
}
