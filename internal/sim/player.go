package sim

import "github.com/go-gl/mathgl/mgl64"

// Player is the user-steered circle.
type Player struct {
	Circle
	Speed        float64
	AbsorbedFood int
}

// NewPlayer creates a player at center with the starting radius and speed.
func NewPlayer(center mgl64.Vec2) Player {
	return Player{
		Circle: Circle{Center: center, Radius: PlayerRadius},
		Speed:  PlayerSpeed,
	}
}

// Update steers toward target, recentres the camera on the new position and
// eats every pellet the player now covers. Speed has no floor.
func (p *Player) Update(fr *Frame, target mgl64.Vec2, food []Food, cam Camera) {
	p.Center = moveToward(p.Center, target, p.Speed*fr.Elapsed)
	cam.SetTarget(p.Center)

	for i := range food {
		if cost, ok := p.TryAbsorb(&food[i].Circle); ok {
			p.AbsorbedFood++
			p.Speed -= cost
			fr.absorbed(playerRef, foodRef, p.Radius, cost)
		}
	}
}
