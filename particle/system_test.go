package particle

import (
	"math"
	"testing"

	"github.com/lixenwraith/ringball/engine"
	"github.com/lixenwraith/ringball/vmath"
)

func TestEmitSamplesRanges(t *testing.T) {
	s := NewSystem(engine.NewRandom(1))
	s.Emit(vmath.V2(10, 20), 500, "#fff")

	if s.Len() != 500 {
		t.Fatalf("Expected 500 particles, got %d", s.Len())
	}
	for i, p := range s.Particles() {
		if p.Pos != vmath.V2(10, 20) {
			t.Fatalf("Particle %d spawned at %v", i, p.Pos)
		}
		if p.Vel.X < -2 || p.Vel.X >= 2 || p.Vel.Y < -2 || p.Vel.Y >= 2 {
			t.Errorf("Particle %d velocity out of [-2,2): %v", i, p.Vel)
		}
		if p.Decay < 0.01 || p.Decay >= 0.03 {
			t.Errorf("Particle %d decay out of range: %v", i, p.Decay)
		}
		if p.Size < 2 || p.Size >= 5 {
			t.Errorf("Particle %d size out of range: %v", i, p.Size)
		}
		if p.Life != 1 || p.Alpha != 1 {
			t.Errorf("Particle %d expected life/alpha 1, got %v/%v", i, p.Life, p.Alpha)
		}
		if p.Color != "#fff" {
			t.Errorf("Particle %d color %q", i, p.Color)
		}
	}
}

func TestParticleUpdateOrder(t *testing.T) {
	p := Particle{
		Vel:   vmath.V2(1, 0),
		Acc:   vmath.V2(1, 1),
		Life:  1,
		Decay: 0.25,
	}
	p.Update()

	// velocity integrated before position, damped after
	if p.Pos != vmath.V2(2, 1) {
		t.Errorf("Expected position (2,1), got %v", p.Pos)
	}
	if !vmath.ApproxEqual(p.Vel.X, 1.96, 1e-12) || !vmath.ApproxEqual(p.Vel.Y, 0.98, 1e-12) {
		t.Errorf("Expected damped velocity (1.96,0.98), got %v", p.Vel)
	}
	if p.Life != 0.75 || p.Alpha != 0.75 {
		t.Errorf("Expected life and alpha 0.75, got %v/%v", p.Life, p.Alpha)
	}
}

func TestLifeFollowsDecayUntilRemoval(t *testing.T) {
	// vx, vy, decay, size draws
	// decay 0.016 so life crosses zero between ticks 62 and 63
	rng := &engine.SequenceRandom{Values: []float64{0.5, 0.5, 0.3, 0}}
	s := NewSystem(rng)
	s.Emit(vmath.V2(0, 0), 1, "#fff")

	d := s.Particles()[0].Decay
	if !vmath.ApproxEqual(d, 0.016, 1e-12) {
		t.Fatalf("Expected decay 0.016, got %v", d)
	}

	for n := 1; n <= 80; n++ {
		s.Update()
		want := math.Max(0, 1-float64(n)*d)
		if want == 0 {
			if n != 63 {
				t.Fatalf("Expected expiry at tick 63, got %d", n)
			}
			if s.Len() != 0 {
				t.Fatalf("Tick %d: expected particle removed, %d remain", n, s.Len())
			}
			return
		}
		if s.Len() != 1 {
			t.Fatalf("Tick %d: particle removed early", n)
		}
		got := s.Particles()[0].Life
		if !vmath.ApproxEqual(got, want, 1e-9) {
			t.Fatalf("Tick %d: expected life %v, got %v", n, want, got)
		}
	}
	t.Fatal("Particle never expired")
}

func TestUpdateLeavesNoDeadParticles(t *testing.T) {
	s := NewSystem(engine.NewRandom(99))
	for tick := 0; tick < 200; tick++ {
		if tick%10 == 0 {
			s.Emit(vmath.V2(0, 0), 7, "#abc")
		}
		s.Update()
		for i, p := range s.Particles() {
			if p.Life <= 0 {
				t.Fatalf("Tick %d: particle %d survived with life %v", tick, i, p.Life)
			}
		}
	}
}

func TestParticlesReturnsCopy(t *testing.T) {
	s := NewSystem(engine.NewRandom(3))
	s.Emit(vmath.V2(1, 1), 2, "#fff")

	snap := s.Particles()
	snap[0].Life = -5
	if s.Particles()[0].Life != 1 {
		t.Error("Mutating snapshot changed the system")
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Expected empty system after Clear, got %d", s.Len())
	}
}
