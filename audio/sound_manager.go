// Package audio plays short synthesized cues for match events through beep
package audio

import (
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/ringball/match"
	"github.com/lixenwraith/ringball/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager mixes event cues onto the speaker
// Every method is safe without a working audio device; playback is simply skipped
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	logger      *slog.Logger
}

func NewSoundManager(logger *slog.Logger) *SoundManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker; calling it twice is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferSize)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues a cue for every audible event
func (sm *SoundManager) Play(events []match.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || len(events) == 0 {
		return
	}

	var cues []beep.Streamer
	for _, e := range events {
		if s := Cue(e, sampleRate); s != nil {
			cues = append(cues, s)
		}
	}
	if len(cues) == 0 {
		return
	}

	speaker.Lock()
	sm.mixer.Add(cues...)
	speaker.Unlock()
}

// Render lets the manager sit in the sink chain next to the terminal renderer
func (sm *SoundManager) Render(s match.Snapshot) error {
	sm.Play(s.Events)
	return nil
}

// Cleanup silences pending cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
	sm.logger.Debug("audio closed")
}
