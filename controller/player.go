package controller

import (
	"github.com/lixenwraith/ringball/parameter"
	"github.com/lixenwraith/ringball/vmath"
)

// Player is the steered disc
type Player struct {
	Pos      vmath.Vec2
	Vel      vmath.Vec2
	Acc      vmath.Vec2 // retained between ticks; unchanged when already on target
	Size     float64
	Friction float64
	Speed    float64 // acceleration magnitude
	Target   vmath.Vec2
	State    State
}

// NewPlayer creates a player at rest at pos, starting in chase with an expired timer
func NewPlayer(pos vmath.Vec2) *Player {
	return &Player{
		Pos:      pos,
		Size:     parameter.PlayerSize,
		Friction: parameter.PlayerFriction,
		Speed:    parameter.PlayerAcceleration,
		Target:   pos,
		State:    State{Mode: ModeChase},
	}
}

// Radius is the collision radius
func (p *Player) Radius() float64 {
	return p.Size / 2
}

// Update runs one controller tick: transition, target selection, steering
func (p *Player) Update(obs Observation) {
	obs.PlayerPos = p.Pos
	p.State = Transition(p.State, obs)
	p.Target = SelectTarget(p.State.Mode, obs)
	p.Steer()
}

// Steer accelerates toward Target, applies friction and moves
// A zero-length direction keeps the previous acceleration instead of producing NaN
func (p *Player) Steer() {
	if dir, ok := p.Target.Sub(p.Pos).Normalize(); ok {
		p.Acc = dir.Scale(p.Speed)
	}
	p.Vel = p.Vel.Add(p.Acc)
	p.Vel = p.Vel.Scale(p.Friction)
	p.Pos = p.Pos.Add(p.Vel)
}
