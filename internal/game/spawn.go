package game

// Spawner places the snakes of a new round.
type Spawner func(players int, vp Viewport, kin Kinematics, rng *Rand) []*Snake

// RandomSpawner drops snakes uniformly inside the central half of the play
// area with random headings.
func RandomSpawner(players int, vp Viewport, kin Kinematics, rng *Rand) []*Snake {
	min, max := vp.SpawnArea()
	snakes := make([]*Snake, players)
	for i := range snakes {
		pos := Vec2{X: rng.RangeF(min.X, max.X), Y: rng.RangeF(min.Y, max.Y)}
		snakes[i] = NewSnake(pos, rng.Angle(), PlayerColours[i], kin)
	}
	return snakes
}
