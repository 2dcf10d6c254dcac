package sim

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// TestSim is a headless driver around Game with deterministic seeding and
// hand-placed entities. Tests and the headless reporter use it.
type TestSim struct {
	Bounds   mgl64.Vec2
	Viewport mgl64.Vec2
	Elapsed  float64 // seconds fed to every Step
	Steer    func(*World) mgl64.Vec2

	Game   *Game
	World  *World
	Camera *FollowPoint
	Log    *EventLog

	rng      *rand.Rand
	populate bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra    simOptionKind = iota // bounds, seed, verbose, timing: applied first
	simOptPopulate                      // random population: needs bounds and rng
	simOptEntity                        // hand-placed entities: appended after the population
	simOptPost                          // removals: applied last
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithBounds sets the world size.
func WithBounds(w, h float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Bounds = mgl64.Vec2{w, h}
	}}
}

// WithViewport sets the viewport whose centre the random player spawns at.
func WithViewport(w, h float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Viewport = mgl64.Vec2{w, h}
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- simulation only
	}}
}

// WithVerbose enables per-tick log entries.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Log = NewEventLog(v)
	}}
}

// WithElapsed sets the frame time fed to every step. Zero freezes movement
// while still resolving absorptions.
func WithElapsed(seconds float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Elapsed = seconds
	}}
}

// WithAutopilot steers the player with Autopilot instead of holding position.
func WithAutopilot() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Steer = Autopilot
	}}
}

// WithRandomPopulation fills the world the way NewWorld does.
func WithRandomPopulation() SimOption {
	return SimOption{simOptPopulate, func(ts *TestSim) {
		ts.populate = true
	}}
}

// WithPlayerAt places the player at (x,y) with radius r, replacing any existing one.
func WithPlayerAt(x, y, r float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		p := NewPlayer(mgl64.Vec2{x, y})
		p.Radius = r
		ts.World.player = &p
	}}
}

// WithoutPlayer starts the world with the player already gone.
func WithoutPlayer() SimOption {
	return SimOption{simOptPost, func(ts *TestSim) {
		ts.World.player = nil
	}}
}

// WithCreatureAt appends a creature at (x,y) with radius r.
func WithCreatureAt(x, y, r float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.World.creatures = append(ts.World.creatures, Creature{
			Circle: Circle{Center: mgl64.Vec2{x, y}, Radius: r},
			Speed:  CreatureSpeed,
			ID:     ts.World.allocID(),
		})
	}}
}

// WithFoodAt appends a pellet at (x,y).
func WithFoodAt(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.World.food = append(ts.World.food, Food{Circle: Circle{
			Center: mgl64.Vec2{x, y},
			Radius: FoodRadius,
		}})
	}}
}

// NewTestSim constructs a TestSim from the given options in ordered passes:
//  1. Infrastructure (bounds, viewport, seed, verbose, timing)
//  2. Random population, if requested
//  3. Hand-placed player, creatures and food
//  4. Removals
//
// Without WithRandomPopulation the world starts empty apart from what the
// options place; food is topped up by the first Step.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		Bounds:   mgl64.Vec2{DefaultWorldSize, DefaultWorldSize},
		Viewport: mgl64.Vec2{800, 600},
		Elapsed:  1.0 / 60,
		Steer:    holdPosition,
		Camera:   &FollowPoint{},
		Log:      NewEventLog(false),
		rng:      rand.New(rand.NewSource(1)), // #nosec G404 -- harness default
	}
	apply := func(kind simOptionKind) {
		for _, o := range opts {
			if o.kind == kind {
				o.fn(ts)
			}
		}
	}

	apply(simOptInfra)
	apply(simOptPopulate)
	if ts.populate {
		ts.World = NewWorld(ts.Bounds, ts.Viewport.Mul(0.5), ts.rng)
	} else {
		ts.World = newEmptyWorld(ts.Bounds, ts.rng)
	}
	apply(simOptEntity)
	apply(simOptPost)

	ts.Game = NewGame(ts.World, ts.Camera, ts.Log)
	return ts
}

// holdPosition steers the player at itself, so it never moves.
func holdPosition(w *World) mgl64.Vec2 {
	if p, ok := w.Player(); ok {
		return p.Center
	}
	return w.bounds.Mul(0.5)
}

// Step advances one frame using the configured Steer policy.
func (ts *TestSim) Step() {
	ts.Game.Step(ts.Elapsed, ts.Steer(ts.World))
}

// RunTicks advances the simulation n frames.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Step()
	}
}

// RunUntil advances up to maxTicks frames, stopping early once predicate
// holds. Returns the tick at which it held, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Step()
		if predicate(ts) {
			return ts.Game.Tick()
		}
	}
	return -1
}

// Resolved is a RunUntil predicate that holds once the game is won or lost.
func Resolved(ts *TestSim) bool {
	return ts.Game.Phase().Terminal()
}
