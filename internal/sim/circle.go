package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Circle is the body every entity is built around.
type Circle struct {
	Center   mgl64.Vec2
	Radius   float64
	Absorbed bool
}

// Intersects reports whether the two circles touch or overlap.
// Squared distances keep the sqrt off the hot path.
func (c *Circle) Intersects(o *Circle) bool {
	d := c.Center.Sub(o.Center)
	sum := c.Radius + o.Radius
	return d.Dot(d) <= sum*sum
}

// TryAbsorb lets c consume o when both are live, they intersect, and c is
// strictly larger. On success o is marked absorbed, c takes the radius
// sqrt(R²+r²), and the returned cost is what the caller subtracts from c's
// speed. Growth is R minus the merged radius, so the cost is never positive
// and absorbing actually speeds the absorber up.
func (c *Circle) TryAbsorb(o *Circle) (float64, bool) {
	if c.Absorbed || o.Absorbed {
		return 0, false
	}
	if !c.Intersects(o) || c.Radius <= o.Radius {
		return 0, false
	}

	o.Absorbed = true

	growth := c.Radius - math.Sqrt(c.Radius*c.Radius+o.Radius*o.Radius)
	c.Radius -= growth

	return growth * growthCostFactor, true
}

// moveToward advances center toward target by step units. A target sitting
// exactly on the center has no direction and leaves the center unchanged.
func moveToward(center, target mgl64.Vec2, step float64) mgl64.Vec2 {
	d := target.Sub(center)
	if d.Dot(d) == 0 {
		return center
	}
	return center.Add(d.Normalize().Mul(step))
}

// distSq is the squared distance between two points.
func distSq(a, b mgl64.Vec2) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}
