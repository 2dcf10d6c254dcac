package term

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Terminal cells are roughly twice as tall as they are wide, so a row covers
// twice the world distance of a column.
const (
	unitsPerCol = 8.0
	unitsPerRow = 16.0
)

// cellCamera maps world space onto a grid of terminal cells.
type cellCamera struct {
	target     mgl64.Vec2
	cols, rows int
}

func newCellCamera(cols, rows int) *cellCamera {
	c := &cellCamera{}
	c.resize(cols, rows)
	c.target = c.viewCenter()
	return c
}

// SetTarget implements sim.Camera.
func (c *cellCamera) SetTarget(p mgl64.Vec2) {
	c.target = p
}

func (c *cellCamera) resize(cols, rows int) {
	c.cols, c.rows = cols, rows
}

// viewCenter is the world point under the middle cell while the camera still
// sits at its starting position.
func (c *cellCamera) viewCenter() mgl64.Vec2 {
	return mgl64.Vec2{float64(c.cols) * unitsPerCol / 2, float64(c.rows) * unitsPerRow / 2}
}

// toCell returns the cell containing world point p. The result may lie off
// screen.
func (c *cellCamera) toCell(p mgl64.Vec2) (int, int) {
	x := (p.X()-c.target.X())/unitsPerCol + float64(c.cols)/2
	y := (p.Y()-c.target.Y())/unitsPerRow + float64(c.rows)/2
	return int(math.Floor(x)), int(math.Floor(y))
}

// toWorld returns the world point at the centre of cell (col,row).
func (c *cellCamera) toWorld(col, row int) mgl64.Vec2 {
	return mgl64.Vec2{
		(float64(col)+0.5-float64(c.cols)/2)*unitsPerCol + c.target.X(),
		(float64(row)+0.5-float64(c.rows)/2)*unitsPerRow + c.target.Y(),
	}
}

