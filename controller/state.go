// Package controller drives the auto-piloted player disc
//
// Decision making is a timer-gated state machine expressed as a pure Transition
// function; steering integrates motion toward the selected target separately
package controller

import (
	"github.com/lixenwraith/ringball/parameter"
	"github.com/lixenwraith/ringball/vmath"
)

// Mode is the controller's current strategy
type Mode uint8

const (
	ModeChase Mode = iota
	ModeIntercept
	ModePosition
)

var modeNames = [...]string{
	ModeChase:     "chase",
	ModeIntercept: "intercept",
	ModePosition:  "position",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// State is the tagged controller state; Mode may only change once Timer has reached <= 0
type State struct {
	Mode  Mode
	Timer int
}

// Observation is what the controller sees at the start of a tick, before the ball moves
type Observation struct {
	PlayerPos   vmath.Vec2
	BallPos     vmath.Vec2
	BallVel     vmath.Vec2
	Center      vmath.Vec2
	ArenaRadius float64
	GoalAngle   float64
}

// Transition decrements the timer and, once it has run out, picks the next mode
//
//	ball speed < 0.5         -> position, 60 ticks
//	distance to ball > 100   -> chase, 30 ticks
//	otherwise (incl. == 100) -> intercept, 15 ticks
func Transition(s State, obs Observation) State {
	s.Timer--
	if s.Timer > 0 {
		return s
	}

	switch {
	case obs.BallVel.Len() < parameter.SlowBallSpeed:
		return State{Mode: ModePosition, Timer: parameter.PositionHoldTicks}
	case obs.PlayerPos.Dist(obs.BallPos) > parameter.ChaseDistance:
		return State{Mode: ModeChase, Timer: parameter.ChaseHoldTicks}
	default:
		return State{Mode: ModeIntercept, Timer: parameter.InterceptHoldTicks}
	}
}

// Predict extrapolates the ball linearly by ticks steps
func Predict(pos, vel vmath.Vec2, ticks float64) vmath.Vec2 {
	return pos.Add(vel.Scale(ticks))
}

// GoalPoint returns the point on the rim at the goal angle
func GoalPoint(center vmath.Vec2, radius, goalAngle float64) vmath.Vec2 {
	return center.Add(vmath.FromAngle(goalAngle, radius))
}

// SelectTarget returns where the player should steer for the given mode
// Position mode aims PositionOffset behind the ball on the goal->ball line, so a push carries it toward the goal
func SelectTarget(mode Mode, obs Observation) vmath.Vec2 {
	switch mode {
	case ModeIntercept:
		return Predict(obs.BallPos, obs.BallVel, parameter.PredictionTicks)
	case ModePosition:
		goal := GoalPoint(obs.Center, obs.ArenaRadius, obs.GoalAngle)
		angleToGoal := goal.Sub(obs.BallPos).Angle()
		return obs.BallPos.Sub(vmath.FromAngle(angleToGoal, parameter.PositionOffset))
	default:
		return obs.BallPos
	}
}
