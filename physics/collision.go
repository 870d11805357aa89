package physics

import "github.com/lixenwraith/ringball/vmath"

// Contact describes two overlapping circles
type Contact struct {
	Normal   vmath.Vec2 // unit vector from a toward b
	Angle    float64    // angle of Normal
	Distance float64    // center distance
	Overlap  float64    // (ra + rb) - Distance
}

// Overlap tests circles (a, ra) and (b, rb); ok is false when they do not touch
// Coincident centers resolve along angle 0
func Overlap(a vmath.Vec2, ra float64, b vmath.Vec2, rb float64) (Contact, bool) {
	d := b.Sub(a)
	dist := d.Len()
	if dist >= ra+rb {
		return Contact{}, false
	}
	angle := d.Angle()
	return Contact{
		Normal:   vmath.FromAngle(angle, 1),
		Angle:    angle,
		Distance: dist,
		Overlap:  ra + rb - dist,
	}, true
}

// PushOut moves pos along the contact normal by the overlap so the circles just touch
func PushOut(pos vmath.Vec2, c Contact) vmath.Vec2 {
	return pos.Add(c.Normal.Scale(c.Overlap))
}
