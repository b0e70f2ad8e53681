// Package audio plays the theme music and the door sound effect.
// Audio is optional: every method is safe to call when the speaker never initialized.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"escaperoom/pkg/game/state"
)

const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	door        *beep.Buffer
	volume      float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager. Volume is the music level in [0,1].
func NewSoundManager(volume float64, muted bool) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		muted:  muted,
	}
}

// Initialize opens the speaker. A muted manager never touches the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.muted {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether sound can be heard
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.music != nil {
		speaker.Lock()
		sm.music.Paused = true
		speaker.Unlock()
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// LoadDoorSound decodes a WAV file into memory for repeated playback
func (sm *SoundManager) LoadDoorSound(data []byte) error {
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode door sound: %w", err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)

	sm.mu.Lock()
	sm.door = buf
	sm.mu.Unlock()
	return nil
}

// HasDoorSound reports whether a door sound is loaded
func (sm *SoundManager) HasDoorSound() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.door != nil && sm.door.Len() > 0
}

// PlayDoorOpen plays the door sound once
func (sm *SoundManager) PlayDoorOpen() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.door == nil {
		return
	}

	s := sm.door.Streamer(0, sm.door.Len())
	speaker.Lock()
	sm.mixer.Add(resampled(sm.door.Format().SampleRate, s))
	speaker.Unlock()
}

// PlayTheme decodes an MP3 and loops it forever at the configured volume.
// Starting a new theme stops the previous one.
func (sm *SoundManager) PlayTheme(data []byte) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}

	streamer, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("decode theme: %w", err)
	}

	base, silent := gain(sm.volume)
	looped := beep.Loop(-1, streamer)
	vol := &effects.Volume{
		Streamer: resampled(format.SampleRate, looped),
		Base:     2,
		Volume:   base,
		Silent:   silent,
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.music = &beep.Ctrl{Streamer: vol}
	sm.mixer.Add(sm.music)
	speaker.Unlock()

	slog.Debug("theme started", "sample_rate", format.SampleRate, "volume", sm.volume)
	return nil
}

// HandleCue plays the sound for a gameplay cue. A nil manager plays nothing.
func (sm *SoundManager) HandleCue(c state.Cue) {
	if sm == nil {
		return
	}
	switch c {
	case state.CueDoorOpen:
		sm.PlayDoorOpen()
	}
}

func resampled(from beep.SampleRate, s beep.Streamer) beep.Streamer {
	if from == sampleRate {
		return s
	}
	return beep.Resample(resampleQuality, from, sampleRate, s)
}

// gain converts a linear level in [0,1] to a base-2 exponent for effects.Volume
func gain(level float64) (exp float64, silent bool) {
	if level <= 0 {
		return 0, true
	}
	if level > 1 {
		level = 1
	}
	return math.Log2(level), false
}
