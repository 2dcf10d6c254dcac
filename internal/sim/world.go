package sim

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// World owns every entity. Entities are stored by value and never reference
// each other.
type World struct {
	bounds    mgl64.Vec2
	food      []Food
	player    *Player // nil once the player has been absorbed
	creatures []Creature
	rng       *rand.Rand
	nextID    int
}

// NewWorld populates a world: FoodTarget pellets, one player at viewCenter and
// CreatureCount creatures, all positioned with rng.
func NewWorld(bounds, viewCenter mgl64.Vec2, rng *rand.Rand) *World {
	w := newEmptyWorld(bounds, rng)
	w.Maintain()
	p := NewPlayer(viewCenter)
	w.player = &p
	for i := 0; i < CreatureCount; i++ {
		w.creatures = append(w.creatures, RandomCreature(rng, bounds, w.allocID()))
	}
	return w
}

func newEmptyWorld(bounds mgl64.Vec2, rng *rand.Rand) *World {
	return &World{
		bounds: bounds,
		food:   make([]Food, 0, foodTarget(bounds)),
		rng:    rng,
	}
}

func foodTarget(bounds mgl64.Vec2) int {
	return int(math.Floor(bounds.X() / 2))
}

func (w *World) allocID() int {
	id := w.nextID
	w.nextID++
	return id
}

// Bounds returns the world size.
func (w *World) Bounds() mgl64.Vec2 {
	return w.bounds
}

// FoodTarget is the pellet count restored every frame: floor(width/2).
func (w *World) FoodTarget() int {
	return foodTarget(w.bounds)
}

// Maintain tops food back up to FoodTarget, one random pellet at a time, and
// returns how many were spawned. Excess food is never removed.
func (w *World) Maintain() int {
	spawned := 0
	for len(w.food) < w.FoodTarget() {
		w.food = append(w.food, RandomFood(w.rng, w.bounds))
		spawned++
	}
	return spawned
}

// sweep drops absorbed entities from the live collections and clears an
// absorbed player. Returns the number of creatures removed.
func (w *World) sweep() int {
	before := len(w.creatures)
	keptC := w.creatures[:0]
	for _, c := range w.creatures {
		if !c.Absorbed {
			keptC = append(keptC, c)
		}
	}
	clear(w.creatures[len(keptC):])
	w.creatures = keptC

	keptF := w.food[:0]
	for _, f := range w.food {
		if !f.Absorbed {
			keptF = append(keptF, f)
		}
	}
	clear(w.food[len(keptF):])
	w.food = keptF

	if w.player != nil && w.player.Absorbed {
		w.player = nil
	}
	return before - len(w.creatures)
}

// Player returns a copy of the player and whether one is present.
func (w *World) Player() (Player, bool) {
	if w.player == nil {
		return Player{}, false
	}
	return *w.player, true
}

// NumCreatures returns the number of live creatures.
func (w *World) NumCreatures() int {
	return len(w.creatures)
}

// NumFood returns the number of live pellets.
func (w *World) NumFood() int {
	return len(w.food)
}

// largestCreature returns the creature with the greatest radius. A strict
// greater-than scan keeps the first of several equal maxima.
func (w *World) largestCreature() (Creature, bool) {
	if len(w.creatures) == 0 {
		return Creature{}, false
	}
	best := 0
	for i := 1; i < len(w.creatures); i++ {
		if w.creatures[i].Radius > w.creatures[best].Radius {
			best = i
		}
	}
	return w.creatures[best], true
}

// Snapshot is a read-only copy of the live entities.
type Snapshot struct {
	Bounds    mgl64.Vec2
	Food      []Food
	Player    *Player
	Creatures []Creature
}

// Snapshot copies the live entities. Mutating the result does not affect the world.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Bounds:    w.bounds,
		Food:      append([]Food(nil), w.food...),
		Creatures: append([]Creature(nil), w.creatures...),
	}
	if w.player != nil {
		p := *w.player
		s.Player = &p
	}
	return s
}

// Standing is one leaderboard row.
type Standing struct {
	Label  string
	Radius float64
}

// Leaderboard ranks every creature ("Creature N" by 1-based position in the
// live collection) and the player, largest first, keeping the top k.
// Equal radii keep collection order with the player last.
func (w *World) Leaderboard(k int) []Standing {
	rows := make([]Standing, 0, len(w.creatures)+1)
	for i, c := range w.creatures {
		rows = append(rows, Standing{Label: fmt.Sprintf("Creature %d", i+1), Radius: c.Radius})
	}
	if w.player != nil {
		rows = append(rows, Standing{Label: "Player", Radius: w.player.Radius})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Radius > rows[j].Radius
	})
	if k >= 0 && k < len(rows) {
		rows = rows[:k]
	}
	return rows
}

// Validate checks the invariants that must hold after every completed step.
func (w *World) Validate() error {
	var errs []error
	if len(w.food) != w.FoodTarget() {
		errs = append(errs, fmt.Errorf("food count %d, want %d", len(w.food), w.FoodTarget()))
	}
	for i, f := range w.food {
		if f.Absorbed {
			errs = append(errs, fmt.Errorf("food %d is absorbed but still live", i))
		}
		if f.Radius <= 0 {
			errs = append(errs, fmt.Errorf("food %d has radius %.3f", i, f.Radius))
		}
	}
	for i, c := range w.creatures {
		if c.Absorbed {
			errs = append(errs, fmt.Errorf("creature %d (C%d) is absorbed but still live", i, c.ID))
		}
		if c.Radius <= 0 {
			errs = append(errs, fmt.Errorf("creature %d (C%d) has radius %.3f", i, c.ID, c.Radius))
		}
	}
	if p := w.player; p != nil {
		if p.Absorbed {
			errs = append(errs, errors.New("player is absorbed but still present"))
		}
		if p.Radius <= 0 {
			errs = append(errs, fmt.Errorf("player has radius %.3f", p.Radius))
		}
	}
	return errors.Join(errs...)
}
