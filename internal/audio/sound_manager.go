package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

const (
	sampleRate = beep.SampleRate(44100)

	// resampleQuality is passed to beep.Resample for sound files recorded
	// at a different rate.
	resampleQuality = 4
)

// SoundManager plays cues through a single mixer attached to the speaker.
// Cues loaded from WAV files take precedence over synthesized ones.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	samples     map[sim.Cue]*beep.Buffer
	volume      float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager at full volume.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		samples: make(map[sim.Cue]*beep.Buffer),
		volume:  1,
	}
}

// Initialize sets up the speaker. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no way to reopen a closed speaker, so it is only cleared
	sm.initialized = false
}

// SetMuted silences or restores playback.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// SetVolume sets the master volume in [0, 1].
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = core.ClampF(v, 0, 1)
}

// Play starts a cue without waiting for it. It does nothing before
// Initialize, after Cleanup or while muted.
func (sm *SoundManager) Play(cue sim.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := sm.streamer(cue)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(newVolume(s, sm.volume))
	speaker.Unlock()
}

// streamer returns a fresh stream for cue. Caller holds mu.
func (sm *SoundManager) streamer(cue sim.Cue) beep.Streamer {
	if buf, ok := sm.samples[cue]; ok {
		return buf.Streamer(0, buf.Len())
	}
	return Synthesize(cue, sampleRate)
}

// Loaded reports whether a sound file was loaded for cue.
func (sm *SoundManager) Loaded(cue sim.Cue) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	_, ok := sm.samples[cue]
	return ok
}

// LoadDir loads <cue>.wav files (start.wav, flap.wav, ...) from dir.
// Missing files are skipped; the cue keeps its synthesized sound.
// Returns the number of files loaded.
func (sm *SoundManager) LoadDir(dir string) (int, error) {
	var errs []error
	loaded := 0

	for _, cue := range sim.Cues {
		path := filepath.Join(dir, cue.String()+".wav")
		buf, err := decodeFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}

		sm.mu.Lock()
		sm.samples[cue] = buf
		sm.mu.Unlock()
		loaded++
	}

	return loaded, errors.Join(errs...)
}

// decodeFile reads a WAV file fully into memory at the speaker's sample rate.
func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf, nil
}
