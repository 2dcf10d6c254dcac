package game

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Absorb/internal/sim"
)

var (
	skyColor      = color.RGBA{R: 102, G: 191, B: 255, A: 255}
	arenaColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	foodColor     = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	creatureColor = color.RGBA{R: 255, G: 161, B: 0, A: 255}
	playerColor   = color.RGBA{R: 0, G: 82, B: 172, A: 255}
	winColor      = color.RGBA{R: 0, G: 228, B: 48, A: 255}
	loseColor     = color.RGBA{R: 230, G: 41, B: 55, A: 255}
)

const (
	// labelMinPx is the smallest on-screen radius that still gets a radius label.
	labelMinPx     = 6
	faceHeight     = 13 // basicfont.Face7x13 line height
	leaderboardW   = 160
	leaderboardRow = 20
	hudLineHeight  = 16
	bannerScale    = 6
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	g.drawWorld(screen)

	if g.sim.Phase().Terminal() {
		g.drawBanner(screen)
	} else {
		g.drawHUD(screen)
		g.drawLeaderboard(screen)
		g.feed.Draw(screen, g.face, 4, g.cfg.ViewHeight-4)
	}

	if g.statusTicks > 0 {
		drawText(screen, g.status, g.face, float64(g.cfg.ViewWidth)/2, float64(g.cfg.ViewHeight-24), color.Black, text.AlignCenter)
	}
}

// drawWorld renders the arena and every live entity through the camera.
func (g *Game) drawWorld(screen *ebiten.Image) {
	snap := g.sim.World().Snapshot()
	cam := g.camera

	x0, y0 := cam.WorldToScreen(mgl64.Vec2{0, 0})
	vector.FillRect(screen, float32(x0), float32(y0),
		float32(snap.Bounds.X()*cam.Zoom), float32(snap.Bounds.Y()*cam.Zoom), arenaColor, false)

	for _, f := range snap.Food {
		g.drawCircle(screen, f.Circle, foodColor)
	}
	for _, c := range snap.Creatures {
		g.drawCircle(screen, c.Circle, creatureColor)
	}
	if snap.Player != nil {
		g.drawCircle(screen, snap.Player.Circle, playerColor)
	}
}

// drawCircle fills a circle and labels it with its integer radius.
func (g *Game) drawCircle(screen *ebiten.Image, c sim.Circle, clr color.Color) {
	if !g.camera.Visible(c.Center, c.Radius) {
		return
	}
	x, y := g.camera.WorldToScreen(c.Center)
	r := c.Radius * g.camera.Zoom
	vector.FillCircle(screen, float32(x), float32(y), float32(r), clr, true)

	if r < labelMinPx {
		return
	}
	// Alignment offsets are applied before GeoM, so the label stays centred
	// at any scale.
	op := &text.DrawOptions{}
	op.GeoM.Scale(r/faceHeight, r/faceHeight)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.Black)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, fmt.Sprintf("%d", int(c.Radius)), g.face, op)
}

// drawHUD prints the status lines top-left.
func (g *Game) drawHUD(screen *ebiten.Image) {
	w := g.sim.World()
	lines := []string{
		fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()),
		fmt.Sprintf("Creatures: %d", w.NumCreatures()),
	}
	if p, ok := w.Player(); ok {
		lines = append(lines,
			fmt.Sprintf("Player Radius: %.2f", p.Radius),
			fmt.Sprintf("Food eaten: %d", p.AbsorbedFood),
		)
	} else {
		lines = append(lines, "Spectating the largest creature")
	}
	if g.autopilot {
		lines = append(lines, "Autopilot: on (A)")
	}
	for i, line := range lines {
		drawText(screen, line, g.face, 6, float64(4+i*hudLineHeight), color.Black, text.AlignStart)
	}
}

// drawLeaderboard lists the largest circles along the right edge.
func (g *Game) drawLeaderboard(screen *ebiten.Image) {
	x := float64(g.cfg.ViewWidth - leaderboardW)
	for i, row := range g.sim.World().Leaderboard(g.cfg.LeaderboardSize) {
		clr := color.Color(color.Black)
		if row.Label == "Player" {
			clr = playerColor
		}
		drawText(screen, sim.FormatStanding(i, row), g.face, x, float64(4+i*leaderboardRow), clr, text.AlignStart)
	}
}

// drawBanner shows the final result at the centre of the screen.
func (g *Game) drawBanner(screen *ebiten.Image) {
	msg, clr := "You Lose!", loseColor
	if g.sim.Phase() == sim.PhaseWin {
		msg, clr = "You Win!", winColor
	}
	cx := float64(g.cfg.ViewWidth) / 2
	cy := float64(g.cfg.ViewHeight) / 2

	op := &text.DrawOptions{}
	op.GeoM.Scale(bannerScale, bannerScale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, msg, g.face, op)

	drawText(screen, "C: copy report   Esc: quit", g.face, cx, cy+bannerScale*faceHeight, color.Black, text.AlignCenter)
}

// drawText draws one line of 1x text at (x,y) with the given horizontal alignment.
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(dst, s, face, op)
}
