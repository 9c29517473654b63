package pin

import (
	"fmt"

	"github.com/Alia5/knobpad/component"
	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// PullUpInput is a GPIO configured as an input with the internal pull-up
// enabled. An open switch reads true.
type PullUpInput struct {
	p gpio.PinIn
}

func NewPullUpInput(p gpio.PinIn) *PullUpInput { return &PullUpInput{p: p} }

func (i *PullUpInput) Setup() error {
	if err := i.p.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return fmt.Errorf("%s: configure input: %w", i.p, err)
	}
	return nil
}

func (i *PullUpInput) Read() bool { return i.p.Read() == gpio.High }

// Output is a GPIO configured as a push-pull output. It is driven low on
// setup.
type Output struct {
	p gpio.PinOut
}

func NewOutput(p gpio.PinOut) *Output { return &Output{p: p} }

func (o *Output) Setup() error {
	if err := o.p.Out(gpio.Low); err != nil {
		return fmt.Errorf("%s: configure output: %w", o.p, err)
	}
	return nil
}

// Write drives the pin. Errors are dropped; Out only fails on a pin that
// Setup could not configure.
func (o *Output) Write(v bool) { _ = o.p.Out(gpio.Level(v)) }

// ADC normalizes an analog pin to [0.0, 1.0] using the range the pin
// reports. A failed conversion repeats the last good value.
type ADC struct {
	p      analog.PinADC
	lo, hi int32
	last   float64
}

func NewADC(p analog.PinADC) *ADC { return &ADC{p: p} }

func (a *ADC) Setup() error {
	lo, hi := a.p.Range()
	if hi.Raw <= lo.Raw {
		return fmt.Errorf("%s: empty sample range [%d, %d]", a.p, lo.Raw, hi.Raw)
	}
	a.lo, a.hi = lo.Raw, hi.Raw
	return nil
}

func (a *ADC) Read() float64 {
	s, err := a.p.Read()
	if err != nil {
		return a.last
	}
	v := float64(s.Raw-a.lo) / float64(a.hi-a.lo)
	a.last = min(max(v, 0), 1)
	return a.last
}

// PeriphBoard resolves GPIO names through the periph registry and analog
// names through a fixed table. host.Init must have run before pins are
// looked up.
type PeriphBoard struct {
	analogs map[string]analog.PinADC
}

func NewPeriphBoard(analogs map[string]analog.PinADC) *PeriphBoard {
	if analogs == nil {
		analogs = map[string]analog.PinADC{}
	}
	return &PeriphBoard{analogs: analogs}
}

func (b *PeriphBoard) DigitalInput(name string) (component.DigitalInput, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("%w: gpio %q", ErrUnknownPin, name)
	}
	return NewPullUpInput(p), nil
}

func (b *PeriphBoard) DigitalOutput(name string) (component.DigitalOutput, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("%w: gpio %q", ErrUnknownPin, name)
	}
	return NewOutput(p), nil
}

func (b *PeriphBoard) AnalogInput(name string) (component.AnalogInput, error) {
	p, ok := b.analogs[name]
	if !ok {
		return nil, fmt.Errorf("%w: analog %q", ErrUnknownPin, name)
	}
	return NewADC(p), nil
}
