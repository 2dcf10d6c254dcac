package sim

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Food is a passive pellet. It never moves and never absorbs anything.
type Food struct {
	Circle
}

// RandomFood places a pellet uniformly inside [0,w) x [0,h).
func RandomFood(rng *rand.Rand, bounds mgl64.Vec2) Food {
	return Food{Circle: Circle{
		Center: randomPoint(rng, bounds),
		Radius: FoodRadius,
	}}
}

func randomPoint(rng *rand.Rand, bounds mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{rng.Float64() * bounds.X(), rng.Float64() * bounds.Y()}
}

// nearestFood returns the index of the live pellet closest to p.
// Ties keep the first pellet encountered.
func nearestFood(p mgl64.Vec2, food []Food) (int, bool) {
	best := -1
	bestD2 := 0.0
	for i := range food {
		if food[i].Absorbed {
			continue
		}
		d2 := distSq(p, food[i].Center)
		if best < 0 || d2 < bestD2 {
			best = i
			bestD2 = d2
		}
	}
	return best, best >= 0
}
