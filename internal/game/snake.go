package game

import "math"

// TurnDirection is a per-frame steering intent.
type TurnDirection int

const (
	TurnNone TurnDirection = iota
	TurnLeft
	TurnRight
)

// ResolveTurn maps the two held keys of a player to an intent; holding both
// cancels out.
func ResolveTurn(left, right bool) TurnDirection {
	switch {
	case left && !right:
		return TurnLeft
	case right && !left:
		return TurnRight
	default:
		return TurnNone
	}
}

// Paint is one coloured pixel.
type Paint struct {
	Pixel  Pixel
	Colour Colour
}

// Snake is one player's head. Orientation is in radians, counter-clockwise
// from +x, and is left unbounded.
type Snake struct {
	position    Vec2
	orientation float64
	colour      Colour
	kin         Kinematics
	offsets     []Vec2
}

func NewSnake(position Vec2, orientation float64, colour Colour, kin Kinematics) *Snake {
	return &Snake{
		position:    position,
		orientation: orientation,
		colour:      colour,
		kin:         kin,
		offsets:     discOffsets(kin.Radius),
	}
}

func (s *Snake) Position() Vec2       { return s.position }
func (s *Snake) Orientation() float64 { return s.orientation }
func (s *Snake) Colour() Colour       { return s.colour }

// Translate moves the snake one frame along its heading.
func (s *Snake) Translate() {
	step := Vec2{X: math.Cos(s.orientation), Y: math.Sin(s.orientation)}
	s.position = s.position.Add(step.Scale(s.kin.Velocity))
}

// Turn rotates the heading by one frame of turning velocity.
func (s *Snake) Turn(dir TurnDirection) {
	switch dir {
	case TurnLeft:
		s.orientation += s.kin.TurningVelocity
	case TurnRight:
		s.orientation -= s.kin.TurningVelocity
	}
}

// Disc rasterises the body at the current position. Pixels may fall outside
// the viewport.
func (s *Snake) Disc(vp Viewport) []Paint {
	return s.AppendDisc(nil, vp)
}

// AppendDisc is Disc appending into dst.
func (s *Snake) AppendDisc(dst []Paint, vp Viewport) []Paint {
	for _, o := range s.offsets {
		dst = append(dst, Paint{Pixel: vp.ToPixel(s.position.Add(o)), Colour: s.colour})
	}
	return dst
}

// EnqueueTrail queues this frame's on-screen body pixels for promotion and
// returns how many were queued.
func (s *Snake) EnqueueTrail(frame uint64, vp Viewport, q *TrailQueue) int {
	n := 0
	for _, o := range s.offsets {
		p := vp.ToPixel(s.position.Add(o))
		if !vp.Contains(p) {
			continue
		}
		q.Enqueue(p, s.colour, frame)
		n++
	}
	return n
}

// CollidesWithTrail checks the centre pixel against the promoted bitmap.
// Leaving the play area is reported by OutOfBounds instead.
func (s *Snake) CollidesWithTrail(vp Viewport, bm *TrailBitmap) bool {
	p := vp.ToPixel(s.position)
	if !vp.Contains(p) {
		return false
	}
	return bm.Occupied(p.X, p.Y)
}

// OutOfBounds reports whether the centre pixel has left the play area.
func (s *Snake) OutOfBounds(vp Viewport) bool {
	return !vp.Contains(vp.ToPixel(s.position))
}
