package sim

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Game wraps a World with the win/lose state machine.
type Game struct {
	phase  Phase
	world  *World
	camera Camera
	log    *EventLog
	stats  Stats
	tick   int
}

// NewGame starts a game in PhasePlaying. log may be nil.
func NewGame(world *World, camera Camera, log *EventLog) *Game {
	g := &Game{
		phase:  PhasePlaying,
		world:  world,
		camera: camera,
		log:    log,
	}
	g.stats.Creatures = world.NumCreatures()
	return g
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// World returns the simulated world. Hosts should treat it as read-only.
func (g *Game) World() *World { return g.world }

// Tick returns the number of steps simulated so far.
func (g *Game) Tick() int { return g.tick }

// Stats returns a copy of the run counters.
func (g *Game) Stats() Stats { return g.stats }

// Step advances the simulation by one frame. elapsed is in seconds and target
// is the world-space point the player steers toward. Once the game has been
// won or lost Step does nothing.
func (g *Game) Step(elapsed float64, target mgl64.Vec2) {
	if g.phase.Terminal() {
		return
	}
	g.tick++
	g.stats.Ticks++
	g.stats.Seconds += elapsed

	w := g.world
	fr := &Frame{Tick: g.tick, Elapsed: elapsed, Log: g.log, Stats: &g.stats}

	// 1. PLAYER: steer and eat, or follow the biggest creature once the player is gone.
	if w.player != nil {
		w.player.Update(fr, target, w.food, g.camera)
	} else if c, ok := w.largestCreature(); ok {
		g.camera.SetTarget(c.Center)
		if g.log != nil {
			g.log.AddVerbose(g.tick, creatureRef(c.ID).Label(), "camera", "follow",
				fmt.Sprintf("(%.1f,%.1f)", c.Center.X(), c.Center.Y()), c.Radius)
		}
	}

	// 2. CREATURES: creature i-1 acts against the suffix [i:], so every pair
	// is checked exactly once and the actor never aliases an opponent.
	for i := 0; i <= len(w.creatures); i++ {
		done, rest := w.creatures[:i], w.creatures[i:]
		if len(done) == 0 {
			continue
		}
		done[len(done)-1].Update(fr, w.food, w.player, rest)
	}

	// 3+4. REMOVE: absorbed creatures, food and player.
	hadPlayer := w.player != nil
	w.sweep()
	if hadPlayer && w.player == nil && g.log != nil {
		g.log.Add(g.tick, playerRef.Label(), "world", "player_lost", "player absorbed", 0)
	}

	// 5. RESPAWN
	if n := w.Maintain(); n > 0 {
		g.stats.FoodRespawned += n
		if g.log != nil {
			g.log.AddVerbose(g.tick, "--", "world", "respawn", fmt.Sprintf("%d food", n), float64(n))
		}
	}
	g.stats.Creatures = w.NumCreatures()

	if checkInvariants {
		if err := w.Validate(); err != nil {
			panic(fmt.Sprintf("sim: invariant violated at tick %d: %v", g.tick, err))
		}
	}

	// 6. RESOLVE
	if next := resolvePhase(w.player != nil, w.NumCreatures()); next != g.phase {
		if g.log != nil {
			g.log.Add(g.tick, "--", "phase", "change", fmt.Sprintf("%s → %s", g.phase, next), 0)
		}
		g.phase = next
	}
}
