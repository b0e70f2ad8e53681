package audio

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escaperoom/pkg/game/state"
)

// wavBytes builds a silent 16-bit mono PCM file
func wavBytes(t *testing.T, samples int) []byte {
	t.Helper()
	var b bytes.Buffer
	le := binary.LittleEndian
	dataLen := uint32(samples * 2)

	b.WriteString("RIFF")
	require.NoError(t, binary.Write(&b, le, 36+dataLen))
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	for _, v := range []any{uint32(16), uint16(1), uint16(1), uint32(44100), uint32(88200), uint16(2), uint16(16)} {
		require.NoError(t, binary.Write(&b, le, v))
	}
	b.WriteString("data")
	require.NoError(t, binary.Write(&b, le, dataLen))
	b.Write(make([]byte, dataLen))
	return b.Bytes()
}

// TestSoundManagerGracefulDegradation verifies playback calls are safe without a speaker
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(0.5, false)

	assert.NotPanics(t, func() {
		sm.PlayDoorOpen()
		sm.HandleCue(state.CueDoorOpen)
		require.NoError(t, sm.PlayTheme([]byte("not an mp3")))
		sm.Cleanup()
	})
	assert.False(t, sm.Initialized())
}

func TestNilSoundManagerIgnoresCues(t *testing.T) {
	var sm *SoundManager
	assert.NotPanics(t, func() { sm.HandleCue(state.CueDoorOpen) })
}

func TestSoundManagerMutedNeverInitializes(t *testing.T) {
	sm := NewSoundManager(0.5, true)
	require.NoError(t, sm.Initialize())
	assert.False(t, sm.Initialized())
}

// TestSoundManagerInitialization may fail without an audio device; that is not a failure
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(0.5, false)
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	require.NoError(t, sm.Initialize(), "second initialization is a no-op")
	sm.Cleanup()
	assert.False(t, sm.Initialized())
}

func TestLoadDoorSound(t *testing.T) {
	sm := NewSoundManager(0.5, true)
	assert.False(t, sm.HasDoorSound())

	require.NoError(t, sm.LoadDoorSound(wavBytes(t, 441)))
	assert.True(t, sm.HasDoorSound())
}

func TestLoadDoorSoundRejectsGarbage(t *testing.T) {
	sm := NewSoundManager(0.5, true)
	err := sm.LoadDoorSound([]byte("garbage"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode door sound")
	assert.False(t, sm.HasDoorSound())
}

func TestGain(t *testing.T) {
	tests := []struct {
		level  float64
		exp    float64
		silent bool
	}{
		{1, 0, false},
		{0.5, -1, false},
		{0.25, -2, false},
		{0, 0, true},
		{-1, 0, true},
		{3, 0, false},
	}
	for _, tt := range tests {
		exp, silent := gain(tt.level)
		assert.InDelta(t, tt.exp, exp, 1e-9, "level %v", tt.level)
		assert.Equal(t, tt.silent, silent, "level %v", tt.level)
	}
}
