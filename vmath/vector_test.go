package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVec2ArithmeticReturnsNewValues(t *testing.T) {
	a := V2(1, 2)
	b := V2(3, -4)

	sum := a.Add(b)
	if sum != V2(4, -2) {
		t.Errorf("Expected (4,-2), got %v", sum)
	}
	if a != V2(1, 2) {
		t.Errorf("Add mutated receiver: %v", a)
	}

	scaled := a.Scale(3)
	if scaled != V2(3, 6) {
		t.Errorf("Expected (3,6), got %v", scaled)
	}

	c := a.Clone()
	c.X = 99
	if a.X != 1 {
		t.Error("Clone shares state with original")
	}

	if d := b.Sub(a); d != V2(2, -6) {
		t.Errorf("Expected (2,-6), got %v", d)
	}
}

func TestVec2Length(t *testing.T) {
	v := V2(3, 4)
	if v.Len() != 5 {
		t.Errorf("Expected length 5, got %v", v.Len())
	}
	if v.LenSq() != 25 {
		t.Errorf("Expected squared length 25, got %v", v.LenSq())
	}
	if d := V2(100, 100).Dist(V2(200, 100)); d != 100 {
		t.Errorf("Expected distance 100, got %v", d)
	}
}

func TestNormalizeZeroSafe(t *testing.T) {
	n, ok := V2(0, 0).Normalize()
	if ok || !n.IsZero() {
		t.Errorf("Expected zero vector and false, got %v %v", n, ok)
	}

	n, ok = V2(0, -7).Normalize()
	if !ok || !ApproxEqual(n.Y, -1, eps) || n.X != 0 {
		t.Errorf("Expected (0,-1), got %v %v", n, ok)
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name   string
		v, n   Vec2
		expect Vec2
	}{
		{"head on", V2(5, 0), V2(1, 0), V2(-5, 0)},
		{"glancing", V2(3, 4), V2(1, 0), V2(-3, 4)},
		{"tangent", V2(0, 2), V2(1, 0), V2(0, 2)},
		{"diagonal", V2(1, 1), V2(math.Sqrt2/2, math.Sqrt2/2), V2(-1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Reflect(tt.n)
			if !ApproxEqual(got.X, tt.expect.X, eps) || !ApproxEqual(got.Y, tt.expect.Y, eps) {
				t.Errorf("Expected %v, got %v", tt.expect, got)
			}
			if !ApproxEqual(got.Len(), tt.v.Len(), eps) {
				t.Errorf("Reflection changed speed: %v -> %v", tt.v.Len(), got.Len())
			}
		})
	}
}

func TestFromAngleAndAngle(t *testing.T) {
	v := FromAngle(math.Pi/2, 10)
	if !ApproxEqual(v.X, 0, eps) || !ApproxEqual(v.Y, 10, eps) {
		t.Errorf("Expected (0,10), got %v", v)
	}
	if !ApproxEqual(v.Angle(), math.Pi/2, eps) {
		t.Errorf("Expected π/2, got %v", v.Angle())
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{TwoPi + 0.25, 0.25},
		{-TwoPi - 0.25, TwoPi - 0.25},
	}
	for _, tt := range tests {
		got := WrapAngle(tt.in)
		if !ApproxEqual(got, tt.want, 1e-12) {
			t.Errorf("WrapAngle(%v): expected %v, got %v", tt.in, tt.want, got)
		}
		if got < 0 || got >= TwoPi {
			t.Errorf("WrapAngle(%v) = %v outside [0, 2π)", tt.in, got)
		}
	}
}

func TestClampAndLerp(t *testing.T) {
	if Clamp(5, 0, 1) != 1 || Clamp(-5, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp bounds wrong")
	}
	if Lerp(10, 20, 0.25) != 12.5 {
		t.Errorf("Expected 12.5, got %v", Lerp(10, 20, 0.25))
	}
}
