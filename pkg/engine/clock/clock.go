// Package clock provides the monotonic millisecond time source used for animations.
package clock

import "time"

// Clock reports milliseconds elapsed since an arbitrary fixed origin
type Clock interface {
	NowMillis() int64
}

// System is a Clock backed by the monotonic wall clock
type System struct {
	start time.Time
}

// NewSystem creates a system clock whose origin is the moment of the call
func NewSystem() *System {
	return &System{start: time.Now()}
}

// NowMillis returns milliseconds since the clock was created.
// time.Since uses the monotonic reading, so wall clock jumps are ignored.
func (s *System) NowMillis() int64 {
	return time.Since(s.start).Milliseconds()
}

// Manual is a Clock that only moves when told to. Used by tests and replays.
type Manual struct {
	Now int64
}

// NowMillis returns the current manual time
func (m *Manual) NowMillis() int64 {
	return m.Now
}

// Advance moves the clock forward by ms milliseconds
func (m *Manual) Advance(ms int64) {
	m.Now += ms
}
