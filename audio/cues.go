package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/ringball/match"
	"github.com/lixenwraith/ringball/parameter"
	"github.com/lixenwraith/ringball/vmath"
)

// goalIntervals are the arpeggio steps over the base frequency (major triad, then octave)
var goalIntervals = [...]float64{1, 1.25, 1.5, 2}

// Cue builds the sound for an event, nil when the event is silent
func Cue(e match.Event, rate beep.SampleRate) beep.Streamer {
	switch e.Kind {
	case match.EventCollision:
		gain := parameter.MasterVolume * vmath.Clamp(e.Strength/(parameter.BallMaxSpeed*2), 0.2, 1)
		return Tone(parameter.HitFrequency, parameter.HitDuration, WaveSine, gain, rate,
			parameter.CueAttack, parameter.CueRelease)

	case match.EventGoal:
		notes := make([]beep.Streamer, 0, len(goalIntervals))
		for _, k := range goalIntervals {
			notes = append(notes, Tone(parameter.GoalBaseFreq*k, parameter.GoalNoteDuration, WaveTriangle,
				parameter.MasterVolume, rate, parameter.CueAttack, parameter.CueRelease))
		}
		return beep.Seq(notes...)

	case match.EventBounce:
		if e.Strength < parameter.MinBounceStrength {
			return nil
		}
		gain := parameter.MasterVolume * vmath.Clamp(e.Strength/parameter.BallMaxSpeed, 0.2, 1)
		return Tone(parameter.BounceFrequency, parameter.BounceDuration, WaveSquare, gain*0.5, rate,
			parameter.CueAttack, parameter.CueRelease)
	}
	return nil
}
