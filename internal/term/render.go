package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Garsondee/Absorb/internal/sim"
)

// canvas is the part of tcell.Screen the renderer draws through.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

var (
	styleBackground = tcell.StyleDefault.Background(tcell.NewRGBColor(102, 191, 255))
	styleArena      = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	styleFood       = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.NewRGBColor(230, 41, 55))
	styleCreature   = tcell.StyleDefault.Background(tcell.NewRGBColor(255, 161, 0)).Foreground(tcell.ColorBlack)
	stylePlayer     = tcell.StyleDefault.Background(tcell.NewRGBColor(0, 82, 172)).Foreground(tcell.ColorWhite)
	styleHUD        = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleWin        = tcell.StyleDefault.Background(tcell.NewRGBColor(0, 228, 48)).Foreground(tcell.ColorBlack).Bold(true)
	styleLose       = tcell.StyleDefault.Background(tcell.NewRGBColor(230, 41, 55)).Foreground(tcell.ColorWhite).Bold(true)
)

const (
	glyphFood     = '·'
	glyphCreature = 'o'
	glyphPlayer   = '@'
)

// render draws one frame of the world, HUD and leaderboard onto cv.
func render(cv canvas, cam *cellCamera, g *sim.Game, autopilot bool, top int) {
	cols, rows := cv.Size()
	snap := g.World().Snapshot()

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			style := styleBackground
			if insideBounds(cam.toWorld(x, y), snap.Bounds) {
				style = styleArena
			}
			cv.SetContent(x, y, ' ', nil, style)
		}
	}

	for _, f := range snap.Food {
		fillCircle(cv, cam, f.Circle, glyphFood, styleFood)
	}
	for _, c := range snap.Creatures {
		fillCircle(cv, cam, c.Circle, glyphCreature, styleCreature)
	}
	if snap.Player != nil {
		fillCircle(cv, cam, snap.Player.Circle, glyphPlayer, stylePlayer)
	}

	if g.Phase().Terminal() {
		drawBanner(cv, g.Phase())
		return
	}
	drawHUD(cv, snap, autopilot)
	drawLeaderboard(cv, g.World().Leaderboard(top))
}

func insideBounds(p, bounds mgl64.Vec2) bool {
	return p.X() >= 0 && p.Y() >= 0 && p.X() <= bounds.X() && p.Y() <= bounds.Y()
}

// fillCircle paints every on-screen cell whose centre lies inside c. A circle
// smaller than a cell still gets its own glyph at its centre cell.
func fillCircle(cv canvas, cam *cellCamera, c sim.Circle, glyph rune, style tcell.Style) {
	cols, rows := cv.Size()
	cx, cy := cam.toCell(c.Center)
	rc := int(c.Radius/unitsPerCol) + 1
	rr := int(c.Radius/unitsPerRow) + 1
	r2 := c.Radius * c.Radius

	for y := cy - rr; y <= cy+rr; y++ {
		if y < 0 || y >= rows {
			continue
		}
		for x := cx - rc; x <= cx+rc; x++ {
			if x < 0 || x >= cols {
				continue
			}
			d := cam.toWorld(x, y).Sub(c.Center)
			if d.Dot(d) <= r2 {
				cv.SetContent(x, y, ' ', nil, style)
			}
		}
	}
	if cx >= 0 && cx < cols && cy >= 0 && cy < rows {
		cv.SetContent(cx, cy, glyph, nil, style)
	}
}

func drawHUD(cv canvas, snap sim.Snapshot, autopilot bool) {
	line := fmt.Sprintf(" creatures:%d", len(snap.Creatures))
	if snap.Player != nil {
		line += fmt.Sprintf(" radius:%.2f food:%d", snap.Player.Radius, snap.Player.AbsorbedFood)
	} else {
		line += " spectating"
	}
	if autopilot {
		line += " [autopilot]"
	}
	line += " | a:autopilot q:quit "
	putString(cv, 0, 0, line, styleHUD)
}

func drawLeaderboard(cv canvas, board []sim.Standing) {
	cols, _ := cv.Size()
	const width = 22
	x := cols - width
	if x < 0 {
		x = 0
	}
	for i, row := range board {
		putString(cv, x, i+1, fmt.Sprintf("%-*s", width, sim.FormatStanding(i, row)), styleHUD)
	}
}

func drawBanner(cv canvas, phase sim.Phase) {
	msg, style := "  You Lose!  ", styleLose
	if phase == sim.PhaseWin {
		msg, style = "  You Win!  ", styleWin
	}
	cols, rows := cv.Size()
	putString(cv, (cols-len(msg))/2, rows/2, msg, style)
	hint := " q: quit "
	putString(cv, (cols-len(hint))/2, rows/2+1, hint, styleHUD)
}

// putString writes s left to right from (x,y), clipped to the canvas.
func putString(cv canvas, x, y int, s string, style tcell.Style) {
	cols, rows := cv.Size()
	if y < 0 || y >= rows {
		return
	}
	for _, r := range s {
		if x >= cols {
			return
		}
		if x >= 0 {
			cv.SetContent(x, y, r, nil, style)
		}
		x++
	}
}
