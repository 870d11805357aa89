package render

import (
	"math"

	"github.com/lixenwraith/ringball/parameter"
	"github.com/lixenwraith/ringball/vmath"
)

// Viewport maps world units onto terminal cells below the HUD
// World x is stretched by CellAspect so circles stay round on tall cells
type Viewport struct {
	Scale   float64 // cells per world unit, vertical
	OffsetX float64
	OffsetY float64
}

// FitViewport centers a worldW x worldH field in a width x height screen
func FitViewport(width, height int, worldW, worldH float64) Viewport {
	rows := float64(height - parameter.HUDRows)
	cols := float64(width)
	if rows <= 0 || cols <= 0 {
		return Viewport{}
	}
	scale := math.Min(rows/worldH, cols/(worldW*parameter.CellAspect))
	return Viewport{
		Scale:   scale,
		OffsetX: (cols - worldW*scale*parameter.CellAspect) / 2,
		OffsetY: float64(parameter.HUDRows) + (rows-worldH*scale)/2,
	}
}

// ToCell converts a world point to a cell
func (v Viewport) ToCell(p vmath.Vec2) (int, int) {
	x := v.OffsetX + p.X*v.Scale*parameter.CellAspect
	y := v.OffsetY + p.Y*v.Scale
	return int(math.Floor(x)), int(math.Floor(y))
}

// ToWorld converts a cell center back to world coordinates
func (v Viewport) ToWorld(x, y int) vmath.Vec2 {
	if v.Scale == 0 {
		return vmath.Vec2{}
	}
	return vmath.V2(
		(float64(x)+0.5-v.OffsetX)/(v.Scale*parameter.CellAspect),
		(float64(y)+0.5-v.OffsetY)/v.Scale,
	)
}

// CellsX returns the horizontal cell span of a world length
func (v Viewport) CellsX(d float64) float64 {
	return d * v.Scale * parameter.CellAspect
}

// CellsY returns the vertical cell span of a world length
func (v Viewport) CellsY(d float64) float64 {
	return d * v.Scale
}
