package match

import "github.com/lixenwraith/ringball/vmath"

// EventKind tags something notable that happened during a tick
type EventKind uint8

const (
	EventCollision EventKind = iota
	EventGoal
	EventBounce
	EventRelaunch
)

var eventNames = [...]string{
	EventCollision: "collision",
	EventGoal:      "goal",
	EventBounce:    "bounce",
	EventRelaunch:  "relaunch",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is consumed by audio and logs
// Strength is the ball speed that produced it
type Event struct {
	Kind     EventKind
	Pos      vmath.Vec2
	Strength float64
}
