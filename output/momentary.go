package output

import (
	"errors"
	"fmt"
)

// DefaultHold is the number of ticks a momentary button stays pressed when
// no duration is configured.
const DefaultHold = 3

var ErrDuration = errors.New("momentary duration must be at least one tick")

// Momentary wraps a button so that a press is followed by an automatic
// release after a fixed number of ticks, even without an explicit Release.
type Momentary struct {
	inner     Button
	duration  int
	countdown int
}

// NewMomentary wraps inner. duration is the number of Update calls after a
// press at which the automatic release fires.
func NewMomentary(inner Button, duration int) (*Momentary, error) {
	if duration < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrDuration, duration)
	}
	return &Momentary{inner: inner, duration: duration}, nil
}

// Press presses the inner button and (re)arms the countdown. Pressing again
// before the countdown runs out extends the hold.
func (m *Momentary) Press() {
	m.inner.Press()
	m.countdown = m.duration
}

// Release releases the inner button and cancels a pending automatic release.
func (m *Momentary) Release() {
	m.inner.Release()
	m.countdown = 0
}

func (m *Momentary) Update() {
	m.inner.Update()
	if m.countdown > 0 {
		m.countdown--
		if m.countdown == 0 {
			m.inner.Release()
		}
	}
}

// Armed reports whether an automatic release is pending.
func (m *Momentary) Armed() bool { return m.countdown > 0 }
