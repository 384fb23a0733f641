package render

import (
	"testing"

	"curve/internal/game"
)

func paint(x, y int, c game.Colour) game.Paint {
	return game.Paint{Pixel: game.Pixel{X: x, Y: y}, Colour: c}
}

func TestCanvasClipping(t *testing.T) {
	c := NewCanvas(4, 3)
	c.Set(-1, 0, game.RGB{R: 1})
	c.Set(4, 0, game.RGB{R: 1})
	c.FillRect(2, 1, 10, 10, game.RGB{G: 9})
	if c.At(3, 2) != (game.RGB{G: 9}) || c.At(1, 1) != (game.RGB{}) {
		t.Error("FillRect should clip to the canvas")
	}
	if c.At(-1, 0) != (game.RGB{}) {
		t.Error("Out-of-range reads should return zero")
	}
	if c.Pixels[(2*4+3)*4+3] != 255 {
		t.Error("Painted pixels must be opaque")
	}
}

func TestComposerTrailLayerPersists(t *testing.T) {
	c := NewComposer(50, 50)
	red := game.PlayerColours[0]

	out := c.Compose(game.Frame{Round: 1, Laid: []game.Paint{paint(40, 40, red)}})
	if out.At(40, 40) != red.RGB() {
		t.Fatal("Expected laid pixel to be painted")
	}
	out = c.Compose(game.Frame{Round: 1})
	if out.At(40, 40) != red.RGB() {
		t.Error("Trail should persist between frames")
	}
	out = c.Compose(game.Frame{Round: 2})
	if out.At(40, 40) != game.Palette.Background {
		t.Error("Trail layer should clear on a new round")
	}
}

func TestComposerScoreBars(t *testing.T) {
	c := NewComposer(100, 100)
	f := game.Frame{
		Round:  1,
		Scores: []int{2, 0, 1},
		Bodies: []game.Body{
			{Player: 0, Colour: game.PlayerColours[0]},
			{Player: 1, Colour: game.PlayerColours[1]},
			{Player: 2, Colour: game.PlayerColours[2]},
		},
	}
	out := c.Compose(f)

	if out.At(2*game.ScoreBarUnit-1, 0) != game.PlayerColours[0].RGB() {
		t.Error("Player 0 should have two score blocks")
	}
	if out.At(2*game.ScoreBarUnit, 0) != game.Palette.Background {
		t.Error("Player 0 bar too long")
	}
	if out.At(0, game.ScoreBarHeight) != game.Palette.Background {
		t.Error("Player 1 has no points")
	}
	y := 2*game.ScoreBarHeight + game.ScoreBarHeight - 1
	if out.At(game.ScoreBarUnit-1, y) != game.PlayerColours[2].RGB() {
		t.Error("Player 2 should have one score block in the third row")
	}
}

func TestComposerBodies(t *testing.T) {
	c := NewComposer(50, 50)
	green := game.PlayerColours[1]
	f := game.Frame{
		Round: 1,
		Bodies: []game.Body{
			{Player: 0, Colour: game.PlayerColours[0], Paints: []game.Paint{paint(10, 10, game.PlayerColours[0])}, Dead: true},
			{Player: 1, Colour: green, Paints: []game.Paint{paint(20, 20, green), paint(-3, 99, green)}},
		},
	}
	out := c.Compose(f)
	if got := out.At(10, 10); got != (game.RGB{R: 127}) {
		t.Errorf("Dead body should be drawn at half brightness, got %+v", got)
	}
	if got := out.At(20, 20); got != green.RGB() {
		t.Errorf("Live body should be drawn at full brightness, got %+v", got)
	}
}

func TestComposerPauseIndicator(t *testing.T) {
	c := NewComposer(100, 100)
	out := c.Compose(game.Frame{Round: 1, Paused: true})
	left := 50 - pauseBarGap/2 - 1
	right := 50 + pauseBarGap/2
	if out.At(left, 50) != game.Palette.Pause || out.At(right, 50) != game.Palette.Pause {
		t.Error("Expected two pause bars around the centre")
	}
	if out.At(50, 50) != game.Palette.Background {
		t.Error("Expected a gap between the pause bars")
	}

	out = c.Compose(game.Frame{Round: 1})
	if out.At(left, 50) != game.Palette.Background {
		t.Error("Pause bars should vanish when resumed")
	}
}

func TestComposeMatch(t *testing.T) {
	m, err := game.NewMatch(2, game.DefaultSettings(), game.WithSeed(3))
	if err != nil {
		t.Fatal(err)
	}
	c := NewComposer(game.DefaultWidth, game.DefaultHeight)
	for i := 0; i < 5; i++ {
		if err := m.Tick(game.Input{}); err != nil {
			t.Fatal(err)
		}
		c.Compose(m.Frame())
	}
	out := c.Compose(m.Frame())
	for i, sn := range m.Round().Snakes() {
		p := m.Round().Viewport().ToPixel(sn.Position())
		if out.At(p.X, p.Y) == game.Palette.Background {
			t.Errorf("Snake %d head not drawn at %+v", i, p)
		}
	}
}
