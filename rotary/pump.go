// Package rotary decodes knobs: potentiometers used as switches or as
// endless step encoders, and two-channel quadrature encoders.
//
// Steps are not pressed immediately. They are queued and a pump turns each
// queued step into a press on one tick and a release on the next, so the
// host never sees a press and its release in the same report.
package rotary

import (
	"errors"

	"github.com/Alia5/knobpad/output"
)

var (
	ErrThreshold  = errors.New("threshold must be within [0, 1]")
	ErrDivisions  = errors.New("divisions must be at least 1")
	ErrQueueLimit = errors.New("queue limit must be at least 1")
)

// Direction of a decoded step.
type Direction int

const (
	Idle Direction = iota
	Forward
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "idle"
	}
}

// pump holds the pending steps of one control and paces them out. Forward
// steps are serviced before backward ones and only one button is ever down.
type pump struct {
	forward, backward output.Button

	pendingForward  int
	pendingBackward int
	// limit caps each pending counter; 0 means uncapped.
	limit int

	inFlight Direction
}

// push queues one step in direction d. It returns false if the step was
// dropped because the queue for d is full.
func (p *pump) push(d Direction) bool {
	n := p.pending(d)
	if p.limit > 0 && *n >= p.limit {
		return false
	}
	*n++
	return true
}

// clear drops every pending step in direction d. A press already in flight
// is still released on the next tick.
func (p *pump) clear(d Direction) { *p.pending(d) = 0 }

func (p *pump) pending(d Direction) *int {
	if d == Backward {
		return &p.pendingBackward
	}
	return &p.pendingForward
}

func (p *pump) button(d Direction) output.Button {
	if d == Backward {
		return p.backward
	}
	return p.forward
}

// updateButtons forwards Update to both buttons.
func (p *pump) updateButtons() {
	p.forward.Update()
	p.backward.Update()
}

// step advances the pump by one tick: release the button pressed on the
// previous tick, or press the button for the next pending step.
func (p *pump) step() {
	if p.inFlight != Idle {
		p.button(p.inFlight).Release()
		if n := p.pending(p.inFlight); *n > 0 {
			*n--
		}
		p.inFlight = Idle
		return
	}
	switch {
	case p.pendingForward > 0:
		p.inFlight = Forward
	case p.pendingBackward > 0:
		p.inFlight = Backward
	default:
		return
	}
	p.button(p.inFlight).Press()
}
