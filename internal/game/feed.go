package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Absorb/internal/sim"
)

const (
	feedWidth      = 260
	feedLineHeight = 15
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Tick    int
	Actor   string // "P" or "C17"
	Message string
}

// Feed is a ring buffer of recent absorptions rendered on-screen.
type Feed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewFeed creates a feed holding the last size entries.
func NewFeed(size int) *Feed {
	if size < 1 {
		size = 1
	}
	return &Feed{entries: make([]FeedEntry, size)}
}

// Add appends an entry, overwriting the oldest once full.
func (f *Feed) Add(tick int, actor, msg string) {
	f.entries[f.head] = FeedEntry{Tick: tick, Actor: actor, Message: msg}
	f.head = (f.head + 1) % len(f.entries)
	if f.count < len(f.entries) {
		f.count++
	}
}

// Recent returns entries oldest first.
func (f *Feed) Recent() []FeedEntry {
	n := len(f.entries)
	out := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		out[i] = f.entries[(f.head-f.count+i+n)%n]
	}
	return out
}

// Consume copies the interesting entries of a step log into the feed.
// Pellet absorptions and per-tick bookkeeping are skipped.
func (f *Feed) Consume(entries []sim.LogEntry) {
	for _, e := range entries {
		switch {
		case e.Category == "absorb" && e.Key != "food":
			f.Add(e.Tick, e.Actor, fmt.Sprintf("%s ate %s", e.Actor, e.Value))
		case e.Category == "world" && e.Key == "player_lost":
			f.Add(e.Tick, e.Actor, "player absorbed")
		case e.Category == "phase":
			f.Add(e.Tick, e.Actor, e.Value)
		}
	}
}

// Draw renders the feed bottom-left, newest line at the bottom.
func (f *Feed) Draw(screen *ebiten.Image, face text.Face, x, bottom int) {
	entries := f.Recent()
	if len(entries) == 0 {
		return
	}
	h := len(entries)*feedLineHeight + 6
	top := bottom - h
	vector.FillRect(screen, float32(x), float32(top), feedWidth, float32(h), color.RGBA{R: 10, G: 12, B: 20, A: 160}, false)

	y := top + 3
	for _, e := range entries {
		dot := creatureColor
		if e.Actor == "P" {
			dot = playerColor
		}
		vector.FillRect(screen, float32(x+5), float32(y+4), 4, 6, dot, false)
		drawText(screen, fmt.Sprintf("%5d %s", e.Tick, e.Message), face, float64(x+14), float64(y), color.White, text.AlignStart)
		y += feedLineHeight
	}
}
