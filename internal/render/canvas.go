package render

import "curve/internal/game"

// Canvas is a Width x Height RGBA8 pixel buffer, row 0 at the top.
type Canvas struct {
	Width, Height int

	Pixels []uint8 // RGBA8

	NeedsUpload bool
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:       width,
		Height:      height,
		Pixels:      make([]uint8, width*height*4),
		NeedsUpload: true,
	}
}

func (c *Canvas) pixOff(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return 0, false
	}
	return (y*c.Width + x) * 4, true
}

// Set paints one opaque pixel. Out-of-range writes are dropped.
func (c *Canvas) Set(x, y int, col game.RGB) {
	o, ok := c.pixOff(x, y)
	if !ok {
		return
	}
	c.Pixels[o+0] = col.R
	c.Pixels[o+1] = col.G
	c.Pixels[o+2] = col.B
	c.Pixels[o+3] = 255
	c.NeedsUpload = true
}

func (c *Canvas) At(x, y int) game.RGB {
	o, ok := c.pixOff(x, y)
	if !ok {
		return game.RGB{}
	}
	return game.RGB{R: c.Pixels[o], G: c.Pixels[o+1], B: c.Pixels[o+2]}
}

func (c *Canvas) Fill(col game.RGB) {
	for o := 0; o < len(c.Pixels); o += 4 {
		c.Pixels[o+0] = col.R
		c.Pixels[o+1] = col.G
		c.Pixels[o+2] = col.B
		c.Pixels[o+3] = 255
	}
	c.NeedsUpload = true
}

// FillRect paints the rectangle clipped to the canvas.
func (c *Canvas) FillRect(x, y, w, h int, col game.RGB) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, c.Width), min(y+h, c.Height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.Set(px, py, col)
		}
	}
}

// CopyFrom overwrites c with src; sizes must match.
func (c *Canvas) CopyFrom(src *Canvas) {
	copy(c.Pixels, src.Pixels)
	c.NeedsUpload = true
}
