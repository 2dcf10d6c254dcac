package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAutopilot_FleesNearbyThreat(t *testing.T) {
	ts := NewTestSim(
		WithPlayerAt(500, 500, 10),
		WithCreatureAt(530, 500, 20),
		WithCreatureAt(480, 500, 4), // prey, but the threat wins
	)

	got := Autopilot(ts.World)
	if math.Abs(got.X()-470) > eps || math.Abs(got.Y()-500) > eps {
		t.Fatalf("flee target: got %v want (470,500)", got)
	}
}

func TestAutopilot_IgnoresDistantThreat(t *testing.T) {
	ts := NewTestSim(
		WithPlayerAt(500, 500, 10),
		WithCreatureAt(900, 500, 20),
		WithCreatureAt(600, 500, 5),
	)

	if got := Autopilot(ts.World); got != (mgl64.Vec2{600, 500}) {
		t.Fatalf("chase target: got %v want (600,500)", got)
	}
}

func TestAutopilot_PrefersNearestPrey(t *testing.T) {
	ts := NewTestSim(
		WithPlayerAt(500, 500, 10),
		WithCreatureAt(600, 500, 5),
		WithFoodAt(520, 500),
		WithFoodAt(700, 500),
	)
	if got := Autopilot(ts.World); got != (mgl64.Vec2{520, 500}) {
		t.Fatalf("target: got %v want nearest food (520,500)", got)
	}
}

func TestAutopilot_NoPlayerOrNothingToDo(t *testing.T) {
	gone := NewTestSim(WithBounds(200, 100), WithCreatureAt(10, 10, 5), WithoutPlayer())
	if got := Autopilot(gone.World); got != (mgl64.Vec2{100, 50}) {
		t.Fatalf("no player: got %v want world centre", got)
	}

	// A player no bigger than a pellet has nothing it can eat.
	idle := NewTestSim(WithPlayerAt(50, 50, FoodRadius), WithFoodAt(60, 50))
	if got := Autopilot(idle.World); got != (mgl64.Vec2{50, 50}) {
		t.Fatalf("idle: got %v want own centre", got)
	}
}

func TestAutopilot_FleeTargetStaysInBounds(t *testing.T) {
	ts := NewTestSim(
		WithBounds(1000, 1000),
		WithPlayerAt(5, 500, 10),
		WithCreatureAt(30, 500, 20),
	)
	got := Autopilot(ts.World)
	if got.X() < 0 || got.Y() < 0 || got.X() > 1000 || got.Y() > 1000 {
		t.Fatalf("flee target out of bounds: %v", got)
	}
}
