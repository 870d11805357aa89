package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/ringball/match"
	"github.com/lixenwraith/ringball/parameter"
)

// drain reads a streamer to the end, returning every left-channel sample
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			out = append(out, buf[j][0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("Streamer never drained")
	return nil
}

func TestOscillatorLengthAndRange(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveTriangle} {
		samples := drain(t, NewOscillator(440, 50*time.Millisecond, wave, sampleRate))
		if want := sampleRate.N(50 * time.Millisecond); len(samples) != want {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, want, len(samples))
		}
		for i, v := range samples {
			if v < -1 || v > 1 {
				t.Fatalf("Wave %d sample %d out of range: %v", wave, i, v)
			}
		}
	}
}

func TestEnvelopeRampsAndScales(t *testing.T) {
	const gain = 0.5
	dur := 100 * time.Millisecond
	s := NewEnvelope(NewOscillator(100, dur, WaveSquare, sampleRate), dur, 10*time.Millisecond, 10*time.Millisecond, gain, sampleRate)
	samples := drain(t, s)

	if samples[0] != 0 {
		t.Errorf("Expected silent first sample, got %v", samples[0])
	}
	mid := samples[len(samples)/2]
	if math.Abs(mid) != gain {
		t.Errorf("Expected full gain %v mid-note, got %v", gain, mid)
	}
	last := samples[len(samples)-1]
	if math.Abs(last) > gain/float64(sampleRate.N(10*time.Millisecond))+1e-12 {
		t.Errorf("Expected release to near silence, got %v", last)
	}
	for i, v := range samples {
		if math.Abs(v) > gain+1e-12 {
			t.Fatalf("Sample %d exceeds gain: %v", i, v)
		}
	}
}

func TestCueSelection(t *testing.T) {
	tests := []struct {
		name   string
		event  match.Event
		silent bool
		length time.Duration
	}{
		{"collision blip", match.Event{Kind: match.EventCollision, Strength: 6}, false, parameter.HitDuration},
		{"goal arpeggio", match.Event{Kind: match.EventGoal}, false, parameter.GoalNoteDuration * 4},
		{"hard bounce", match.Event{Kind: match.EventBounce, Strength: 5}, false, parameter.BounceDuration},
		{"soft bounce", match.Event{Kind: match.EventBounce, Strength: 0.5}, true, 0},
		{"relaunch", match.Event{Kind: match.EventRelaunch, Strength: 4}, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Cue(tt.event, sampleRate)
			if tt.silent {
				if s != nil {
					t.Error("Expected no cue")
				}
				return
			}
			if s == nil {
				t.Fatal("Expected a cue")
			}
			samples := drain(t, s)
			want := sampleRate.N(tt.length)
			if tt.event.Kind == match.EventGoal {
				want = 4 * sampleRate.N(parameter.GoalNoteDuration)
			}
			if len(samples) != want {
				t.Errorf("Expected %d samples, got %d", want, len(samples))
			}
			for i, v := range samples {
				if math.Abs(v) > parameter.MasterVolume+1e-12 {
					t.Fatalf("Sample %d louder than master volume: %v", i, v)
				}
			}
		})
	}
}

func TestSoundManagerWithoutDevice(t *testing.T) {
	sm := NewSoundManager(nil)
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	if sm.Enabled() {
		t.Error("Expected disabled before Initialize")
	}
	sm.Play([]match.Event{{Kind: match.EventGoal}})
	if err := sm.Render(match.Snapshot{Events: []match.Event{{Kind: match.EventCollision, Strength: 3}}}); err != nil {
		t.Errorf("Render returned %v", err)
	}
	sm.Cleanup()
}

func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got %v", err)
	}
	sm.Play([]match.Event{{Kind: match.EventBounce, Strength: 4}})
	sm.Cleanup()
	if sm.Enabled() {
		t.Error("Expected disabled after Cleanup")
	}
}
