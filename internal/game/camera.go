package game

import "github.com/go-gl/mathgl/mgl64"

const (
	minZoom = 0.25
	maxZoom = 4.0
)

// Camera maps world space onto the window. The simulation moves its target
// through SetTarget; the host owns zoom.
type Camera struct {
	Target mgl64.Vec2 // world point drawn at the viewport centre
	Zoom   float64    // screen pixels per world unit

	viewW float64
	viewH float64
}

// NewCamera starts centred on the middle of the viewport, so world and
// screen coordinates line up until the first SetTarget.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{
		Target: mgl64.Vec2{float64(viewW) / 2, float64(viewH) / 2},
		Zoom:   1,
		viewW:  float64(viewW),
		viewH:  float64(viewH),
	}
}

// SetTarget implements sim.Camera.
func (c *Camera) SetTarget(p mgl64.Vec2) {
	c.Target = p
}

// WorldToScreen returns the screen position of a world point.
//
//	screen = (world - target) * zoom + view/2
func (c *Camera) WorldToScreen(p mgl64.Vec2) (float64, float64) {
	return (p.X()-c.Target.X())*c.Zoom + c.viewW/2,
		(p.Y()-c.Target.Y())*c.Zoom + c.viewH/2
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(x, y float64) mgl64.Vec2 {
	return mgl64.Vec2{
		(x-c.viewW/2)/c.Zoom + c.Target.X(),
		(y-c.viewH/2)/c.Zoom + c.Target.Y(),
	}
}

// ZoomBy multiplies the zoom, clamped to [minZoom, maxZoom].
func (c *Camera) ZoomBy(factor float64) {
	c.Zoom *= factor
	if c.Zoom < minZoom {
		c.Zoom = minZoom
	}
	if c.Zoom > maxZoom {
		c.Zoom = maxZoom
	}
}

// Visible reports whether a circle at p with radius r touches the viewport.
func (c *Camera) Visible(p mgl64.Vec2, r float64) bool {
	x, y := c.WorldToScreen(p)
	sr := r * c.Zoom
	return x+sr >= 0 && y+sr >= 0 && x-sr <= c.viewW && y-sr <= c.viewH
}
