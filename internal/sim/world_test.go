package sim

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewWorld_DefaultPopulation(t *testing.T) {
	bounds := mgl64.Vec2{2048, 2048}
	view := mgl64.Vec2{400, 300}
	w := NewWorld(bounds, view, rand.New(rand.NewSource(3))) // #nosec G404 -- test

	if got := w.FoodTarget(); got != 1024 {
		t.Fatalf("food target: got %d want 1024", got)
	}
	if got := w.NumFood(); got != 1024 {
		t.Fatalf("food: got %d want 1024", got)
	}
	if got := w.NumCreatures(); got != 99 {
		t.Fatalf("creatures: got %d want 99", got)
	}

	p, ok := w.Player()
	if !ok {
		t.Fatalf("expected a player")
	}
	if p.Center != view || p.Radius != PlayerRadius || p.Speed != PlayerSpeed || p.AbsorbedFood != 0 {
		t.Fatalf("unexpected player: %+v", p)
	}

	seen := map[int]bool{}
	for _, c := range w.creatures {
		if c.Radius != CreatureRadius || c.Speed != CreatureSpeed {
			t.Fatalf("unexpected creature: %+v", c)
		}
		if c.Center.X() < 0 || c.Center.X() >= 2048 || c.Center.Y() < 0 || c.Center.Y() >= 2048 {
			t.Fatalf("creature C%d spawned out of bounds at %v", c.ID, c.Center)
		}
		if seen[c.ID] {
			t.Fatalf("duplicate creature ID %d", c.ID)
		}
		seen[c.ID] = true
	}
	for _, f := range w.food {
		if f.Radius != FoodRadius {
			t.Fatalf("food radius: got %.2f want %.2f", f.Radius, FoodRadius)
		}
		if f.Center.X() < 0 || f.Center.X() >= 2048 || f.Center.Y() < 0 || f.Center.Y() >= 2048 {
			t.Fatalf("food spawned out of bounds at %v", f.Center)
		}
	}

	if err := w.Validate(); err != nil {
		t.Fatalf("fresh world invalid: %v", err)
	}
}

func TestFoodTarget_FloorsHalfWidth(t *testing.T) {
	cases := []struct {
		width float64
		want  int
	}{
		{2048, 1024},
		{101, 50},
		{1.5, 0},
		{0, 0},
	}
	for _, tc := range cases {
		w := newEmptyWorld(mgl64.Vec2{tc.width, 10}, rand.New(rand.NewSource(1))) // #nosec G404 -- test
		if got := w.FoodTarget(); got != tc.want {
			t.Errorf("width %.1f: got %d want %d", tc.width, got, tc.want)
		}
	}
}

func TestMaintain_TopsUpFood(t *testing.T) {
	w := newEmptyWorld(mgl64.Vec2{40, 40}, rand.New(rand.NewSource(9))) // #nosec G404 -- test

	if n := w.Maintain(); n != 20 {
		t.Fatalf("first maintain spawned %d, want 20", n)
	}
	w.food = w.food[:12]
	if n := w.Maintain(); n != 8 {
		t.Fatalf("second maintain spawned %d, want 8", n)
	}
	if n := w.Maintain(); n != 0 {
		t.Fatalf("maintain on a full world spawned %d", n)
	}
	if w.NumFood() != 20 {
		t.Fatalf("food: got %d want 20", w.NumFood())
	}
}

func TestMaintain_NeverRemovesExcess(t *testing.T) {
	w := newEmptyWorld(mgl64.Vec2{4, 4}, rand.New(rand.NewSource(9))) // #nosec G404 -- test
	for i := 0; i < 5; i++ {
		w.food = append(w.food, Food{Circle: circleAt(1, 1, FoodRadius)})
	}
	w.Maintain()
	if w.NumFood() != 5 {
		t.Fatalf("maintain changed an over-full food set to %d", w.NumFood())
	}
}

func TestLeaderboard_SortsAndLabels(t *testing.T) {
	ts := NewTestSim(
		WithCreatureAt(0, 0, 3),
		WithCreatureAt(100, 0, 9),
		WithCreatureAt(200, 0, 5),
		WithPlayerAt(300, 0, 7),
	)

	got := ts.World.Leaderboard(10)
	want := []Standing{
		{"Creature 2", 9},
		{"Player", 7},
		{"Creature 3", 5},
		{"Creature 1", 3},
	}
	if len(got) != len(want) {
		t.Fatalf("leaderboard length: got %d want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: got %+v want %+v", i, got[i], want[i])
		}
	}

	top2 := ts.World.Leaderboard(2)
	if len(top2) != 2 || top2[0].Label != "Creature 2" || top2[1].Label != "Player" {
		t.Fatalf("top 2: got %v", top2)
	}
}

func TestLeaderboard_TiesKeepCollectionOrder(t *testing.T) {
	ts := NewTestSim(
		WithCreatureAt(0, 0, 6),
		WithCreatureAt(100, 0, 6),
		WithPlayerAt(300, 0, 6),
	)
	got := ts.World.Leaderboard(3)
	labels := []string{got[0].Label, got[1].Label, got[2].Label}
	if strings.Join(labels, ",") != "Creature 1,Creature 2,Player" {
		t.Fatalf("tie order: got %v", labels)
	}
}

func TestLeaderboard_WithoutPlayer(t *testing.T) {
	ts := NewTestSim(WithCreatureAt(0, 0, 4), WithoutPlayer())
	got := ts.World.Leaderboard(10)
	if len(got) != 1 || got[0].Label != "Creature 1" {
		t.Fatalf("leaderboard without player: got %v", got)
	}
}

func TestLargestCreature_FirstMaxWins(t *testing.T) {
	ts := NewTestSim(
		WithCreatureAt(0, 0, 4),
		WithCreatureAt(100, 0, 9),
		WithCreatureAt(200, 0, 9),
	)
	c, ok := ts.World.largestCreature()
	if !ok {
		t.Fatalf("expected a largest creature")
	}
	if c.Center != (mgl64.Vec2{100, 0}) {
		t.Fatalf("expected the first of the tied maxima, got %v", c.Center)
	}

	empty := NewTestSim()
	if _, ok := empty.World.largestCreature(); ok {
		t.Fatalf("expected no largest creature in an empty world")
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	ts := NewTestSim(
		WithPlayerAt(10, 10, 10),
		WithCreatureAt(50, 50, 8),
		WithFoodAt(90, 90),
	)
	snap := ts.World.Snapshot()
	snap.Player.Radius = 99
	snap.Creatures[0].Radius = 99
	snap.Food[0].Absorbed = true

	p, _ := ts.World.Player()
	if p.Radius != 10 || ts.World.creatures[0].Radius != 8 || ts.World.food[0].Absorbed {
		t.Fatalf("mutating a snapshot leaked into the world")
	}
}

func TestValidate_ReportsViolations(t *testing.T) {
	ts := NewTestSim(
		WithBounds(4, 4),
		WithPlayerAt(10, 10, 10),
		WithCreatureAt(50, 50, 8),
		WithFoodAt(1, 1),
		WithFoodAt(2, 2),
	)
	if err := ts.World.Validate(); err != nil {
		t.Fatalf("expected a valid world, got %v", err)
	}

	ts.World.creatures[0].Absorbed = true
	ts.World.player.Absorbed = true
	ts.World.food = ts.World.food[:1]

	err := ts.World.Validate()
	if err == nil {
		t.Fatalf("expected invariant violations")
	}
	msg := err.Error()
	for _, want := range []string{"food count 1, want 2", "C0", "player is absorbed"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}
