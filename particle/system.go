package particle

import (
	"github.com/lixenwraith/ringball/engine"
	"github.com/lixenwraith/ringball/vmath"
)

// System owns an ordered set of particles; order only matters for draw layering
type System struct {
	particles []Particle
	rng       engine.Random
}

// NewSystem creates an empty system drawing randomness from rng
func NewSystem(rng engine.Random) *System {
	return &System{rng: rng}
}

// Emit appends count particles at pos
func (s *System) Emit(pos vmath.Vec2, count int, color string) {
	for i := 0; i < count; i++ {
		s.particles = append(s.particles, New(pos, color, s.rng))
	}
}

// Update advances every particle, then compacts out the expired ones in place
// After Update no member has Life <= 0
func (s *System) Update() {
	alive := s.particles[:0]
	for i := range s.particles {
		s.particles[i].Update()
		if !s.particles[i].Dead() {
			alive = append(alive, s.particles[i])
		}
	}
	// Release the tail so dropped particles are not retained
	for i := len(alive); i < len(s.particles); i++ {
		s.particles[i] = Particle{}
	}
	s.particles = alive
}

// Len returns the number of live particles
func (s *System) Len() int {
	return len(s.particles)
}

// Particles returns a copy in draw order
func (s *System) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Clear drops all particles
func (s *System) Clear() {
	s.particles = s.particles[:0]
}
