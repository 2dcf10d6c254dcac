package sim

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Creature is an autonomous circle that hunts the nearest pellet.
type Creature struct {
	Circle
	Speed float64
	ID    int // stable across removals; used for log labels only
}

// RandomCreature places a fresh creature uniformly inside bounds.
func RandomCreature(rng *rand.Rand, bounds mgl64.Vec2, id int) Creature {
	return Creature{
		Circle: Circle{Center: randomPoint(rng, bounds), Radius: CreatureRadius},
		Speed:  CreatureSpeed,
		ID:     id,
	}
}

// Update resolves this creature against the player and every opponent, then
// moves toward the nearest pellet and tries to eat it.
//
// opps must not contain c itself. The step loop hands each creature only the
// creatures after it, so every pair is checked once per frame.
func (c *Creature) Update(fr *Frame, food []Food, player *Player, opps []Creature) {
	if c.Absorbed {
		return
	}
	self := creatureRef(c.ID)

	if player != nil {
		if cost, ok := c.TryAbsorb(&player.Circle); ok {
			c.Speed -= cost
			fr.absorbed(self, playerRef, c.Radius, cost)
		}
		if cost, ok := player.TryAbsorb(&c.Circle); ok {
			player.Speed -= cost
			fr.absorbed(playerRef, self, player.Radius, cost)
		}
	}

	for i := range opps {
		o := &opps[i]
		if cost, ok := c.TryAbsorb(&o.Circle); ok {
			c.Speed -= cost
			fr.absorbed(self, creatureRef(o.ID), c.Radius, cost)
		}
		if cost, ok := o.TryAbsorb(&c.Circle); ok {
			o.Speed -= cost
			fr.absorbed(creatureRef(o.ID), self, o.Radius, cost)
		}
	}

	if c.Absorbed {
		return
	}
	idx, ok := nearestFood(c.Center, food)
	if !ok {
		return
	}
	f := &food[idx]
	c.Center = moveToward(c.Center, f.Center, c.Speed*fr.Elapsed)
	if cost, ok := c.TryAbsorb(&f.Circle); ok {
		c.Speed -= cost
		fr.absorbed(self, foodRef, c.Radius, cost)
	}
}
