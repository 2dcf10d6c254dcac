package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// dangerReach is how many player radii of clearance the autopilot keeps from
// the edge of a larger creature.
const dangerReach = 3.0

// Autopilot picks a steering target for the player. It runs from the nearest
// larger creature that is close enough to matter, otherwise it heads for the
// nearest thing it is strictly bigger than. With no player the world centre
// is returned; with nothing to do the player's own centre (no movement).
func Autopilot(w *World) mgl64.Vec2 {
	p := w.player
	if p == nil {
		return w.bounds.Mul(0.5)
	}

	threatIdx, threatD2 := -1, math.MaxFloat64
	prey, preyD2, found := p.Center, math.MaxFloat64, false

	for i := range w.creatures {
		c := &w.creatures[i]
		d2 := distSq(p.Center, c.Center)
		switch {
		case c.Radius > p.Radius:
			reach := c.Radius + p.Radius*dangerReach
			if d2 < reach*reach && d2 < threatD2 {
				threatIdx, threatD2 = i, d2
			}
		case c.Radius < p.Radius:
			if d2 < preyD2 {
				prey, preyD2, found = c.Center, d2, true
			}
		}
	}

	if threatIdx >= 0 {
		away := p.Center.Sub(w.creatures[threatIdx].Center)
		if away.Dot(away) == 0 {
			away = mgl64.Vec2{1, 0}
		}
		return clampToBounds(p.Center.Add(away.Normalize().Mul(p.Radius*dangerReach)), w.bounds)
	}

	if FoodRadius < p.Radius {
		if i, ok := nearestFood(p.Center, w.food); ok {
			if d2 := distSq(p.Center, w.food[i].Center); d2 < preyD2 {
				prey, found = w.food[i].Center, true
			}
		}
	}
	if !found {
		return p.Center
	}
	return prey
}

func clampToBounds(p, bounds mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		math.Max(0, math.Min(p.X(), bounds.X())),
		math.Max(0, math.Min(p.Y(), bounds.Y())),
	}
}
