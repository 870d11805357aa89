package parameter

import "time"

// Game Loop
const (
	// FrameUpdateInterval is the update+render cadence (~60 FPS); all per-tick constants are tuned for it
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultFPS is the configured frame rate that yields FrameUpdateInterval
	DefaultFPS = 60

	// InboxSize is the capacity of the scheduler's input command queue
	InboxSize = 64
)
