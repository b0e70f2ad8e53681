package anim

// Fader constants
const (
	FadeStep   = 12
	FadeOpaque = 255
)

// Fade directions
const (
	FadeIdle = 0
	FadeOut  = 1  // Alpha rising toward opaque
	FadeIn   = -1 // Alpha falling back to clear
)

// Fader is a fade-through-black gate around a scene switch.
// The target is committed by the caller when Step reports the opaque peak.
type Fader struct {
	Alpha     int
	Direction int
	Target    int
}

// Start begins fading out toward target, restarting any fade in progress
func (f *Fader) Start(target int) {
	f.Alpha = 0
	f.Direction = FadeOut
	f.Target = target
}

// Active reports whether a fade is running
func (f *Fader) Active() bool {
	return f.Direction != FadeIdle
}

// Step advances the fade by one frame.
// Returns true on the single frame where the fade reaches full opacity and turns around.
func (f *Fader) Step() bool {
	if f.Direction == FadeIdle {
		return false
	}

	f.Alpha += FadeStep * f.Direction
	if f.Alpha >= FadeOpaque {
		f.Alpha = FadeOpaque
		f.Direction = FadeIn
		return true
	}
	if f.Alpha <= 0 {
		f.Alpha = 0
		f.Direction = FadeIdle
	}
	return false
}
