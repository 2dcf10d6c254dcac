package sim

import "github.com/go-gl/mathgl/mgl64"

// Camera is the view the simulation recentres each frame. Hosts implement it
// with whatever transform they draw through.
type Camera interface {
	SetTarget(p mgl64.Vec2)
}

// FollowPoint is a Camera that only remembers its target. Headless runs and
// tests use it.
type FollowPoint struct {
	Target mgl64.Vec2
}

// SetTarget implements Camera.
func (f *FollowPoint) SetTarget(p mgl64.Vec2) {
	f.Target = p
}
