package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
	AudioBufferSize = 100 * time.Millisecond
)

// Sound Cues
const (
	HitFrequency     = 660.0
	HitDuration      = 60 * time.Millisecond
	BounceFrequency  = 110.0
	BounceDuration   = 80 * time.Millisecond
	GoalBaseFreq     = 523.25
	GoalNoteDuration = 90 * time.Millisecond
	CueAttack        = 5 * time.Millisecond
	CueRelease       = 30 * time.Millisecond
	MasterVolume     = 0.25

	// MinBounceStrength: rim impacts slower than this stay silent
	MinBounceStrength = 1.0
)
