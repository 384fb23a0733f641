package game

import (
	"fmt"
	"math"
)

// Kinematics are the motion parameters shared by every snake of a match.
// Velocity is in pixels per frame, TurningVelocity in radians per frame.
type Kinematics struct {
	Velocity        float64
	TurningVelocity float64
	Radius          int
}

// TurningRadius is the radius of the circle driven at full lock.
func (k Kinematics) TurningRadius() float64 {
	if k.TurningVelocity == 0 {
		return math.Inf(1)
	}
	return k.Velocity / (2 * math.Sin(k.TurningVelocity/2))
}

// DeriveBufferDelay returns the smallest commit delay that keeps a snake
// from hitting its own fresh trail.
//
// Centres of consecutive frames at full lock lie on a circle, so centres a
// frames apart are v*sin(a*w/2)/sin(w/2) apart. A centre can only land in a
// cell of an older disc when that distance is below the disc radius plus a
// cell diagonal. Everything promoted to the bitmap is at least delay+1
// frames old when it is queried, so a delay covering that distance is
// enough for any path that curves no tighter than full lock.
func DeriveBufferDelay(k Kinematics) (uint64, error) {
	if k.Velocity <= 0 {
		return 0, fmt.Errorf("%w: velocity %v must be positive", ErrInvalidSettings, k.Velocity)
	}
	reach := float64(k.Radius) + math.Sqrt2
	w := k.TurningVelocity
	if w == 0 {
		return uint64(math.Ceil(reach / k.Velocity)), nil
	}
	if w >= math.Pi || reach >= 2*k.TurningRadius() {
		return 0, fmt.Errorf("%w: radius %d, turning radius %.2f", ErrTurningCircleTooTight, k.Radius, k.TurningRadius())
	}
	half := math.Sin(w / 2)
	frames := 2 / w * math.Asin(reach*half/k.Velocity)
	return uint64(math.Ceil(frames)), nil
}

// discOffsets lists the integer offsets covered by a disc of radius r,
// scanning [-r, r) on both axes.
func discOffsets(r int) []Vec2 {
	offsets := make([]Vec2, 0, 4*r*r)
	for x := -r; x < r; x++ {
		for y := -r; y < r; y++ {
			o := Vec2{X: float64(x), Y: float64(y)}
			if o.Len() < float64(r) {
				offsets = append(offsets, o)
			}
		}
	}
	return offsets
}
