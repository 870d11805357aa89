package match

import (
	"math"

	"github.com/lixenwraith/ringball/vmath"
)

// Goal is the scoring slot riding the rim
// Angle grows without bound; comparisons wrap it
type Goal struct {
	Angle         float64
	Width         float64 // chord length of the mouth
	Height        float64 // depth of the scoring band around the rim
	RotationSpeed float64
}

// HalfAngle is the angular half-width of the mouth at radius
func (g Goal) HalfAngle(radius float64) float64 {
	return math.Atan2(g.Width/2, radius)
}

// Contains reports whether pos lies in the scoring band and inside the mouth
func (g Goal) Contains(center vmath.Vec2, radius float64, pos vmath.Vec2) bool {
	rel := pos.Sub(center)
	if math.Abs(rel.Len()-radius) >= g.Height {
		return false
	}
	diff := vmath.WrapAngle(rel.Angle() - g.Angle)
	w := g.HalfAngle(radius)
	return diff < w || diff > vmath.TwoPi-w
}
