// Package particle implements short-lived decaying visual particles
package particle

import (
	"github.com/lixenwraith/ringball/engine"
	"github.com/lixenwraith/ringball/parameter"
	"github.com/lixenwraith/ringball/vmath"
)

// Particle is an ephemeral visual entity owned by exactly one System
type Particle struct {
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	Acc   vmath.Vec2
	Color string
	Life  float64 // starts at 1, removed at <= 0
	Decay float64 // life lost per tick
	Size  float64
	Alpha float64 // mirrors Life
}

// New creates a particle at pos with randomized velocity, decay and size
func New(pos vmath.Vec2, color string, rng engine.Random) Particle {
	half := parameter.ParticleSpeedSpread / 2
	return Particle{
		Pos: pos,
		Vel: vmath.V2(
			engine.Uniform(rng, -half, half),
			engine.Uniform(rng, -half, half),
		),
		Color: color,
		Life:  1,
		Alpha: 1,
		Decay: engine.Uniform(rng, parameter.ParticleDecayMin, parameter.ParticleDecayMax),
		Size:  engine.Uniform(rng, parameter.ParticleSizeMin, parameter.ParticleSizeMax),
	}
}

// Update advances one tick: integrate, decay, then damp velocity
func (p *Particle) Update() {
	p.Vel = p.Vel.Add(p.Acc)
	p.Pos = p.Pos.Add(p.Vel)
	p.Life -= p.Decay
	p.Alpha = p.Life
	p.Vel = p.Vel.Scale(parameter.ParticleDamping)
}

// Dead reports whether the particle has expired
func (p *Particle) Dead() bool {
	return p.Life <= 0
}
