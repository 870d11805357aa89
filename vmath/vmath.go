// Package vmath holds the float 2D vector math shared by the simulation
package vmath

import "math"

// TwoPi is a full turn in radians
const TwoPi = 2 * math.Pi

// WrapAngle maps an angle into [0, 2π)
// Uses truncated remainder like math.Mod, then lifts negatives by one turn
func WrapAngle(a float64) float64 {
	r := math.Mod(a, TwoPi)
	if r < 0 {
		r += TwoPi
	}
	return r
}

// Lerp interpolates between a and b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApproxEqual reports |a-b| <= eps
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
