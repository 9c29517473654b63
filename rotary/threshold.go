package rotary

import (
	"fmt"

	"github.com/Alia5/knobpad/component"
	"github.com/Alia5/knobpad/output"
)

// Threshold adapts a plain potentiometer into an axis and two buttons. Turning
// the knob up through the threshold presses on and releases off; turning it
// back down does the opposite. Below the threshold the axis reads 0.0; above
// it the axis is rescaled so the threshold maps to 0.0 and the end stop to
// 1.0.
type Threshold struct {
	in        component.AnalogInput
	axis      output.Axis
	on, off   output.Button
	threshold float64
	last      float64
}

func NewThreshold(in component.AnalogInput, axis output.Axis, on, off output.Button, threshold float64) (*Threshold, error) {
	if !(threshold >= 0 && threshold <= 1) {
		return nil, fmt.Errorf("%w: got %v", ErrThreshold, threshold)
	}
	return &Threshold{
		in:        in,
		axis:      axis,
		on:        on,
		off:       off,
		threshold: threshold,
		last:      -1,
	}, nil
}

func (r *Threshold) Setup() error { return r.in.Setup() }

func (r *Threshold) Update() {
	r.on.Update()
	r.off.Update()

	val := r.in.Read()
	t := r.threshold
	switch {
	case val >= t && r.last < t:
		r.on.Press()
		r.off.Release()
	case val < t && r.last >= t:
		r.on.Release()
		r.off.Press()
	}
	r.axis.Report(r.scale(val))
	r.last = val
}

// On reports whether the knob was above the threshold on the last update.
func (r *Threshold) On() bool { return r.last >= r.threshold }

func (r *Threshold) scale(val float64) float64 {
	t := r.threshold
	switch {
	case val < t:
		return 0
	case t >= 1:
		return 1
	default:
		return (val - t) / (1 - t)
	}
}
