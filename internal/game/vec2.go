package game

import "math"

// vecEpsilon is the tolerance used by Vec2.Eq.
const vecEpsilon = 1e-6

// Vec2 is a 2D world-space vector. The world origin is the window centre,
// +x points right and +y points up.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}
func (v Vec2) Div(k float64) Vec2 {
	return Vec2{X: v.X / k, Y: v.Y / k}
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec2) float64 { return a.X*b.X + a.Y*b.Y }

func (v Vec2) LenSquared() float64 { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Len() float64        { return math.Sqrt(v.LenSquared()) }

// Perpendicular returns v rotated a quarter turn counter-clockwise.
func (v Vec2) Perpendicular() Vec2 { return Vec2{X: -v.Y, Y: v.X} }

// Polar returns the magnitude and angle of v. The angle is in (-π, π] and
// is 0 for the zero vector.
func (v Vec2) Polar() (mag, angle float64) {
	return v.Len(), math.Atan2(v.Y, v.X)
}

// FromPolar builds a vector from a magnitude and an angle in radians.
func FromPolar(mag, angle float64) Vec2 {
	return Vec2{X: math.Cos(angle) * mag, Y: math.Sin(angle) * mag}
}

// Rotate turns v counter-clockwise around axis by angle radians.
func (v Vec2) Rotate(axis Vec2, angle float64) Vec2 {
	rel := v.Sub(axis)
	c, s := math.Cos(angle), math.Sin(angle)
	return axis.Add(Vec2{X: rel.X*c - rel.Y*s, Y: rel.X*s + rel.Y*c})
}

// Eq reports approximate equality, tolerant of float round-trips through
// the pixel grid.
func (v Vec2) Eq(o Vec2) bool {
	return math.Abs(v.X-o.X) < vecEpsilon && math.Abs(v.Y-o.Y) < vecEpsilon
}
