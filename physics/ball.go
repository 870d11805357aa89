package physics

import (
	"github.com/lixenwraith/ringball/engine"
	"github.com/lixenwraith/ringball/parameter"
	"github.com/lixenwraith/ringball/vmath"
)

// Ball is the free body the player knocks around the arena
type Ball struct {
	Pos      vmath.Vec2
	Vel      vmath.Vec2
	Radius   float64
	MinSpeed float64
	MaxSpeed float64
}

// NewBall creates a resting ball at pos with default tuning
func NewBall(pos vmath.Vec2) *Ball {
	return &Ball{
		Pos:      pos,
		Radius:   parameter.BallRadius,
		MinSpeed: parameter.BallMinSpeed,
		MaxSpeed: parameter.BallMaxSpeed,
	}
}

// Update moves the ball by its velocity, then applies friction
func (b *Ball) Update() {
	b.Pos = b.Pos.Add(b.Vel)
	b.Vel = b.Vel.Scale(parameter.BallFriction)
}

// Speed returns the velocity magnitude
func (b *Ball) Speed() float64 {
	return b.Vel.Len()
}

// Stalled reports whether the ball is slower than MinSpeed
func (b *Ball) Stalled() bool {
	return b.Speed() < b.MinSpeed
}

// RandomizeVelocity relaunches with speed in [MinSpeed, MaxSpeed) and a uniform heading
func (b *Ball) RandomizeVelocity(rng engine.Random) {
	speed := engine.Uniform(rng, b.MinSpeed, b.MaxSpeed)
	angle := rng.Float64() * vmath.TwoPi
	b.Vel = vmath.FromAngle(angle, speed)
}

// Reset places the ball at pos at rest
func (b *Ball) Reset(pos vmath.Vec2) {
	b.Pos = pos
	b.Vel = vmath.Vec2{}
}
