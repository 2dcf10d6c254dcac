package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/Garsondee/Absorb/internal/config"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 7
	return New(cfg)
}

func TestNew_PopulatesWorld(t *testing.T) {
	g := newTestGame(t)
	w := g.sim.World()
	if w.NumCreatures() != 99 {
		t.Fatalf("expected 99 creatures, got %d", w.NumCreatures())
	}
	if w.NumFood() != w.FoodTarget() {
		t.Fatalf("food %d, want %d", w.NumFood(), w.FoodTarget())
	}
	p, ok := w.Player()
	if !ok {
		t.Fatalf("expected a player")
	}
	if p.Center.X() != 400 || p.Center.Y() != 300 {
		t.Fatalf("player should spawn at the viewport centre, got %v", p.Center)
	}
}

func TestCopyReport_WritesClipboard(t *testing.T) {
	g := newTestGame(t)
	var got string
	g.writeClipboard = func(s string) error {
		got = s
		return nil
	}
	g.copyReport()
	if !strings.HasPrefix(got, "--- Absorb round report ---") {
		t.Fatalf("unexpected clipboard contents:\n%s", got)
	}
	if g.status != "report copied to clipboard" || g.statusTicks != statusTicks {
		t.Fatalf("status not set: %q (%d)", g.status, g.statusTicks)
	}
}

func TestCopyReport_ReportsClipboardError(t *testing.T) {
	g := newTestGame(t)
	g.writeClipboard = func(string) error { return errors.New("no xclip") }
	g.copyReport()
	if !strings.Contains(g.status, "no xclip") {
		t.Fatalf("expected the error in the status line, got %q", g.status)
	}
}

func TestLayout_IsViewSize(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Fatalf("Layout: got %dx%d want 800x600", w, h)
	}
}
