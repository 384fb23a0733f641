package render

import "curve/internal/game"

// Pause indicator geometry (in pixels).
const (
	pauseBarWidth  = 12
	pauseBarHeight = 48
	pauseBarGap    = 12
)

// Composer turns match frames into pictures. Trails accumulate on a
// persistent layer so each frame only paints what was laid since the last.
type Composer struct {
	trails *Canvas
	out    *Canvas
	round  int
}

func NewComposer(width, height int) *Composer {
	c := &Composer{
		trails: NewCanvas(width, height),
		out:    NewCanvas(width, height),
	}
	c.trails.Fill(game.Palette.Background)
	return c
}

// Compose draws f and returns the output canvas, which is reused by the
// next call.
func (c *Composer) Compose(f game.Frame) *Canvas {
	if f.Round != c.round {
		c.trails.Fill(game.Palette.Background)
		c.round = f.Round
	}
	for _, p := range f.Laid {
		c.trails.Set(p.Pixel.X, p.Pixel.Y, p.Colour.RGB())
	}

	c.out.CopyFrom(c.trails)
	c.drawScores(f)
	for _, b := range f.Bodies {
		c.drawBody(b)
	}
	if f.Paused {
		c.drawPause()
	}
	return c.out
}

// drawScores stacks one row per player from the top-left corner, one
// block per point.
func (c *Composer) drawScores(f game.Frame) {
	for i, score := range f.Scores {
		if i >= len(f.Bodies) {
			break
		}
		col := f.Bodies[i].Colour.RGB()
		c.out.FillRect(0, i*game.ScoreBarHeight, score*game.ScoreBarUnit, game.ScoreBarHeight, col)
	}
}

// drawBody paints a live head at full colour and a dead one dimmed.
func (c *Composer) drawBody(b game.Body) {
	col := b.Colour
	if b.Dead {
		col = col.WithBrightness(col.Brightness / 2)
	}
	rgb := col.RGB()
	for _, p := range b.Paints {
		c.out.Set(p.Pixel.X, p.Pixel.Y, rgb)
	}
}

func (c *Composer) drawPause() {
	cx, cy := c.out.Width/2, c.out.Height/2
	y := cy - pauseBarHeight/2
	c.out.FillRect(cx-pauseBarGap/2-pauseBarWidth, y, pauseBarWidth, pauseBarHeight, game.Palette.Pause)
	c.out.FillRect(cx+pauseBarGap/2, y, pauseBarWidth, pauseBarHeight, game.Palette.Pause)
}
