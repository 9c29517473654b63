package rotary

import (
	"fmt"

	"github.com/Alia5/knobpad/component"
	"github.com/Alia5/knobpad/output"
)

// Transition codes recorded for channel edges.
const (
	rise1 = 1
	fall1 = -1
	rise2 = 2
	fall2 = -2
)

// Quadrature decodes a two-channel rotary encoder into step pulses on two
// buttons. Every edge on either channel is recorded as a transition code and
// a step is recognized from the last two codes: channel 2 falling then
// channel 1 falling is a backward step, channel 1 falling then channel 2
// falling a forward step. Any other pair is bounce or a partial detent and is
// ignored.
//
// At most queueLimit steps per direction wait for the pump; further steps are
// dropped.
type Quadrature struct {
	in1, in2 component.DigitalInput
	pump     pump

	primed       bool
	last1, last2 bool
	// most recent and previous transition codes; 0 means none
	code, prev int
	dropped    int
}

func NewQuadrature(in1, in2 component.DigitalInput, forward, backward output.Button, queueLimit int) (*Quadrature, error) {
	if queueLimit < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrQueueLimit, queueLimit)
	}
	return &Quadrature{
		in1:  in1,
		in2:  in2,
		pump: pump{forward: forward, backward: backward, limit: queueLimit},
	}, nil
}

func (q *Quadrature) Setup() error {
	return component.SetupAll(q.in1, q.in2)
}

func (q *Quadrature) Update() {
	q.pump.updateButtons()
	q.pump.step()

	v1, v2 := q.in1.Read(), q.in2.Read()
	if !q.primed {
		q.last1, q.last2, q.primed = v1, v2, true
		return
	}
	if v1 != q.last1 {
		q.record(edge(v1, rise1, fall1))
		q.last1 = v1
	}
	if v2 != q.last2 {
		q.record(edge(v2, rise2, fall2))
		q.last2 = v2
	}
}

// Pending returns the number of queued forward and backward steps.
func (q *Quadrature) Pending() (forward, backward int) {
	return q.pump.pendingForward, q.pump.pendingBackward
}

// Dropped returns how many recognized steps were discarded because the
// queue was full.
func (q *Quadrature) Dropped() int { return q.dropped }

func (q *Quadrature) record(code int) {
	q.prev, q.code = q.code, code

	var d Direction
	switch {
	case q.prev == fall2 && q.code == fall1:
		d = Backward
	case q.prev == fall1 && q.code == fall2:
		d = Forward
	default:
		return
	}
	if !q.pump.push(d) {
		q.dropped++
	}
	q.prev, q.code = 0, 0
}

func edge(level bool, rise, fall int) int {
	if level {
		return rise
	}
	return fall
}
