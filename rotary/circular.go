package rotary

import (
	"fmt"

	"github.com/Alia5/knobpad/component"
	"github.com/Alia5/knobpad/output"
)

// span is a closed interval of knob positions. An empty span has lo > hi.
type span struct{ lo, hi float64 }

var noSpan = span{lo: 1, hi: 0}

func (s span) contains(v float64) bool { return v >= s.lo && v <= s.hi }

// window is the set of positions that count as the next step in one
// direction: a span next to the last position plus, near the ends and the
// middle of the track, a second span on the far side.
type window [2]span

func (w window) contains(v float64) bool { return w[0].contains(v) || w[1].contains(v) }

// Circular turns an endless (360 degree) potentiometer into step pulses on two
// buttons. The track is divided into a number of equal steps; each time the
// knob moves at least one step from the last accepted position a press and
// release of the matching button is queued.
type Circular struct {
	in   component.AnalogInput
	pump pump

	stepSize float64
	last     float64
	up, down window
}

func NewCircular(in component.AnalogInput, up, down output.Button, divisions int) (*Circular, error) {
	if divisions < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrDivisions, divisions)
	}
	c := &Circular{
		in:       in,
		pump:     pump{forward: up, backward: down},
		stepSize: 1 / float64(divisions),
	}
	c.retarget()
	return c, nil
}

func (c *Circular) Setup() error { return c.in.Setup() }

func (c *Circular) Update() {
	c.pump.updateButtons()
	c.pump.step()

	val := c.in.Read()
	switch {
	case c.down.contains(val):
		c.accept(val, Backward)
	case c.up.contains(val):
		c.accept(val, Forward)
	}
}

// Pending returns the number of queued up and down steps.
func (c *Circular) Pending() (up, down int) {
	return c.pump.pendingForward, c.pump.pendingBackward
}

// Position returns the last accepted knob position.
func (c *Circular) Position() float64 { return c.last }

func (c *Circular) accept(val float64, d Direction) {
	if d == Forward {
		c.pump.clear(Backward)
	} else {
		c.pump.clear(Forward)
	}
	c.pump.push(d)
	c.last = val
	c.retarget()
}

// retarget recomputes the up and down windows around the last position. The
// sensor's output is discontinuous at the wrap point, and the bands around
// the middle of the track keep both windows valid on either side of it.
func (c *Circular) retarget() {
	last, s := c.last, c.stepSize
	opposite := last + 0.5
	if opposite >= 1 {
		opposite -= 1
	}

	switch {
	// just above zero
	case last <= s:
		c.up = window{{last + s, opposite}, noSpan}
		c.down = window{{opposite, last - s + 1}, noSpan}
	// just below one
	case last >= 1-s:
		c.up = window{{last + s - 1, opposite}, noSpan}
		c.down = window{{opposite, last - s}, noSpan}
	// just before the middle
	case last >= 0.5-s && last <= 0.5:
		c.up = window{{last + s, opposite}, noSpan}
		c.down = window{{0, last - s}, {opposite, 1}}
	// just after the middle
	case last >= 0.5 && last <= 0.5+s:
		c.up = window{{last + s, 1}, {0, opposite}}
		c.down = window{{opposite, last - s}, noSpan}
	// first half
	case last <= 0.5:
		c.up = window{{last + s, opposite}, noSpan}
		c.down = window{{0, last - s}, {opposite, 1}}
	// second half
	default:
		c.up = window{{last + s, 1}, {0, opposite}}
		c.down = window{{opposite, last - s}, noSpan}
	}
}
