package game

import (
	"fmt"
	"math/rand"

	"github.com/atotto/clipboard"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Absorb/internal/config"
	"github.com/Garsondee/Absorb/internal/sim"
)

// statusTicks is how long a status line stays on screen (~2s at 60TPS).
const statusTicks = 120

// Game is the windowed host. It implements ebiten.Game and drives one
// sim.Game step per Update.
type Game struct {
	cfg    config.Config
	sim    *sim.Game
	camera *Camera
	log    *sim.EventLog
	feed   *Feed
	face   text.Face

	autopilot bool

	// Transient status line, e.g. after copying the report.
	status      string
	statusTicks int

	// writeClipboard is swapped out in tests.
	writeClipboard func(string) error
}

// New builds a fresh world from cfg and wraps it for ebiten.
func New(cfg config.Config) *Game {
	rng := rand.New(rand.NewSource(cfg.Seed)) // #nosec G404 -- game only
	cam := NewCamera(cfg.ViewWidth, cfg.ViewHeight)
	log := sim.NewEventLog(cfg.Verbose)
	bounds := mgl64.Vec2{cfg.WorldWidth, cfg.WorldHeight}
	world := sim.NewWorld(bounds, cam.Target, rng)

	return &Game{
		cfg:            cfg,
		sim:            sim.NewGame(world, cam, log),
		camera:         cam,
		log:            log,
		feed:           NewFeed(cfg.FeedSize),
		face:           text.NewGoXFace(basicfont.Face7x13),
		autopilot:      cfg.Autopilot,
		writeClipboard: clipboard.WriteAll,
	}
}

// Update handles input and advances the simulation one step. After a win or
// loss sim.Game.Step is a no-op, so the final state stays frozen on screen.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleInput()

	g.sim.Step(1/float64(ebiten.TPS()), g.steerTarget())

	g.feed.Consume(g.log.Entries())
	g.log.Reset()

	if g.statusTicks > 0 {
		g.statusTicks--
	}
	return nil
}

// handleInput processes edge-triggered keys and zoom.
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.autopilot = !g.autopilot
		g.setStatus(fmt.Sprintf("autopilot %s", onOff(g.autopilot)))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyReport()
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		if wy > 0 {
			g.camera.ZoomBy(1.1)
		} else {
			g.camera.ZoomBy(1 / 1.1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.camera.ZoomBy(1.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.camera.ZoomBy(0.8)
	}
}

// steerTarget is the world point the player heads for this frame: the
// cursor through the camera, or the autopilot's pick.
func (g *Game) steerTarget() mgl64.Vec2 {
	if g.autopilot {
		return sim.Autopilot(g.sim.World())
	}
	mx, my := ebiten.CursorPosition()
	return g.camera.ScreenToWorld(float64(mx), float64(my))
}

// copyReport puts the round report on the system clipboard.
func (g *Game) copyReport() {
	report := sim.Report(g.sim, g.cfg.LeaderboardSize)
	if err := g.writeClipboard(report); err != nil {
		g.setStatus(fmt.Sprintf("clipboard: %v", err))
		return
	}
	g.setStatus("report copied to clipboard")
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTicks = statusTicks
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.ViewWidth, g.cfg.ViewHeight
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
