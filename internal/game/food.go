package game

import "math/rand"

// Food is the single consumable item on the grid.
type Food struct {
	Pos Position
}

// Respawn places the food on a uniformly random free cell. Cells listed in
// occupied are rejected and resampled, up to foodRespawnAttempts tries.
// When the budget is exhausted the food falls back to (0,0) regardless of
// occupancy. On a nearly full grid that can drop the food onto the snake,
// which may then re-eat it immediately; the fallback is a safety valve, not
// a normal path. Only the food's own position is mutated.
func (f *Food) Respawn(rng *rand.Rand, occupied []Position) {
	for i := 0; i < foodRespawnAttempts; i++ {
		p := Position{X: rng.Intn(GridWidth), Y: rng.Intn(GridHeight)}
		free := true
		for _, cell := range occupied {
			if p.Equals(cell) {
				free = false
				break
			}
		}
		if free {
			f.Pos = p
			return
		}
	}
	f.Pos = Position{X: 0, Y: 0}
}
