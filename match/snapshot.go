package match

import (
	"time"

	"github.com/lixenwraith/ringball/controller"
	"github.com/lixenwraith/ringball/particle"
	"github.com/lixenwraith/ringball/score"
	"github.com/lixenwraith/ringball/theme"
	"github.com/lixenwraith/ringball/vmath"
)

// Body is the drawable part of a disc
type Body struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64
}

// Snapshot is a detached copy of a frame; sinks may keep or read it from any goroutine
type Snapshot struct {
	MatchID string
	Frame   uint64
	Now     time.Time

	Center vmath.Vec2
	Radius float64
	Goal   Goal

	Player     Body
	PlayerMode controller.Mode
	Target     vmath.Vec2
	Ball       Body

	// Draw order: Trail, Sparks, bodies, Burst
	Trail  []particle.Particle
	Sparks []particle.Particle
	Burst  []particle.Particle

	Shake      float64
	Flash      float64
	FlashColor string
	Theme      theme.Theme

	Score int
	Bests score.Bests

	Pointer    vmath.Vec2
	HasPointer bool

	Events []Event
}

// Has reports whether an event of kind occurred this frame
func (s Snapshot) Has(kind EventKind) bool {
	for _, e := range s.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
