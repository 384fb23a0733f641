package game

import "math"

// Pixel is an integer screen coordinate; rows grow downward.
type Pixel struct {
	X, Y int
}

// Viewport converts between world space and pixel space for a play area of
// Width x Height pixels.
type Viewport struct {
	Width, Height int
}

// ToPixel maps a world position to the pixel containing it. Flooring keeps
// positions just outside the left/top edges off-screen instead of folding
// them onto row or column 0.
func (vp Viewport) ToPixel(v Vec2) Pixel {
	return Pixel{
		X: int(math.Floor(v.X + float64(vp.Width/2))),
		Y: int(math.Floor(-v.Y + float64(vp.Height/2))),
	}
}

// ToWorld returns the world position of the top-left corner of p.
func (vp Viewport) ToWorld(p Pixel) Vec2 {
	return Vec2{
		X: float64(p.X - vp.Width/2),
		Y: float64(vp.Height/2 - p.Y),
	}
}

func (vp Viewport) Contains(p Pixel) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < vp.Width && p.Y < vp.Height
}

// SpawnArea returns the world-space bounds of the central half of the play
// area: min is the bottom-left corner, max the top-right.
func (vp Viewport) SpawnArea() (min, max Vec2) {
	topLeft := vp.ToWorld(Pixel{X: vp.Width / 4, Y: vp.Height / 4})
	bottomRight := vp.ToWorld(Pixel{X: vp.Width * 3 / 4, Y: vp.Height * 3 / 4})
	return Vec2{X: topLeft.X, Y: bottomRight.Y}, Vec2{X: bottomRight.X, Y: topLeft.Y}
}
