// Package term runs the simulation in a terminal with tcell. The player
// steers toward the mouse cursor; the frame time is measured between ticks,
// so slow terminals still advance the world at real speed.
package term

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Garsondee/Absorb/internal/config"
	"github.com/Garsondee/Absorb/internal/sim"
)

// host owns the simulation and the input state between ticks.
type host struct {
	cfg       config.Config
	game      *sim.Game
	cam       *cellCamera
	log       *sim.EventLog
	autopilot bool

	// Last reported mouse cell, or the screen centre before any motion.
	mouseX, mouseY int
}

func newHost(cfg config.Config, cols, rows int) *host {
	rng := rand.New(rand.NewSource(cfg.Seed)) // #nosec G404 -- game only
	cam := newCellCamera(cols, rows)
	log := sim.NewEventLog(cfg.Verbose)
	bounds := mgl64.Vec2{cfg.WorldWidth, cfg.WorldHeight}
	world := sim.NewWorld(bounds, cam.viewCenter(), rng)
	return &host{
		cfg:       cfg,
		game:      sim.NewGame(world, cam, log),
		cam:       cam,
		log:       log,
		autopilot: cfg.Autopilot,
		mouseX:    cols / 2,
		mouseY:    rows / 2,
	}
}

// handleKey reacts to a key press. Returns false when the user asked to quit.
func (h *host) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return false
		case 'a', 'A':
			h.autopilot = !h.autopilot
		}
	}
	return true
}

func (h *host) moveMouse(x, y int) {
	h.mouseX, h.mouseY = x, y
}

func (h *host) resize(cols, rows int) {
	h.cam.resize(cols, rows)
}

// step advances the world by elapsed seconds toward the current steer target.
func (h *host) step(elapsed float64) {
	target := h.cam.toWorld(h.mouseX, h.mouseY)
	if h.autopilot {
		target = sim.Autopilot(h.game.World())
	}
	h.game.Step(elapsed, target)
	h.log.Reset()
}

// Run opens the terminal and plays until the user quits.
func Run(cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	cols, rows := screen.Size()
	h := newHost(cfg, cols, rows)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TPS))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, eventChan, done)

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !h.handleKey(ev.Key(), ev.Rune()) {
					return nil
				}
			case *tcell.EventMouse:
				h.moveMouse(ev.Position())
			case *tcell.EventResize:
				h.resize(ev.Size())
				screen.Sync()
			}

		case now := <-ticker.C:
			h.step(now.Sub(last).Seconds())
			last = now
			render(screen, h.cam, h.game, h.autopilot, cfg.LeaderboardSize)
			screen.Show()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done is
// closed.
func pollEvents(src interface{ PollEvent() tcell.Event }, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}
