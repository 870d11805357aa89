package vmath

import "math"

// Vec2 is a float64 2D vector value
// All operations return new values; holders own their copy
type Vec2 struct {
	X, Y float64
}

// V2 constructs a Vec2
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns the vector of length r pointing at angle (radians)
func FromAngle(angle, r float64) Vec2 {
	return Vec2{X: math.Cos(angle) * r, Y: math.Sin(angle) * r}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by k
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Clone returns an independent copy
func (v Vec2) Clone() Vec2 {
	return v
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the Euclidean length
func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Dist returns the distance between two points
func (v Vec2) Dist(o Vec2) float64 {
	return o.Sub(v).Len()
}

// Angle returns atan2(y, x) in (-π, π]
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Normalize returns the unit vector and true, or the zero vector and false for zero length
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Y / l}, true
}

// Reflect returns the velocity reflected off a surface with unit normal n
// v' = v - 2(v·n)n
func (v Vec2) Reflect(n Vec2) Vec2 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
