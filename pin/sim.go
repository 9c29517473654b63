package pin

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Alia5/knobpad/component"
)

// SimInput is an in-memory digital input. It reads high until set otherwise,
// like an open pull-up line.
type SimInput struct {
	Level bool
	SetUp bool
	Reads int
}

func NewSimInput() *SimInput { return &SimInput{Level: true} }

func (p *SimInput) Setup() error {
	p.SetUp = true
	return nil
}

func (p *SimInput) Read() bool {
	p.Reads++
	return p.Level
}

// SimOutput is an in-memory digital output.
type SimOutput struct {
	Level bool
	SetUp bool
}

func (p *SimOutput) Setup() error {
	p.SetUp = true
	return nil
}

func (p *SimOutput) Write(v bool) { p.Level = v }

// SimAnalog is an in-memory analog input.
type SimAnalog struct {
	Value float64
	SetUp bool
}

func (p *SimAnalog) Setup() error {
	p.SetUp = true
	return nil
}

func (p *SimAnalog) Read() float64 { return p.Value }

// SimBoard hands out in-memory pins, creating each named pin on first use.
// Asking twice for the same name returns the same pin.
type SimBoard struct {
	Inputs  map[string]*SimInput
	Outputs map[string]*SimOutput
	Analogs map[string]*SimAnalog
}

func NewSimBoard() *SimBoard {
	return &SimBoard{
		Inputs:  map[string]*SimInput{},
		Outputs: map[string]*SimOutput{},
		Analogs: map[string]*SimAnalog{},
	}
}

func (b *SimBoard) DigitalInput(name string) (component.DigitalInput, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	p, ok := b.Inputs[name]
	if !ok {
		p = NewSimInput()
		b.Inputs[name] = p
	}
	return p, nil
}

func (b *SimBoard) DigitalOutput(name string) (component.DigitalOutput, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	p, ok := b.Outputs[name]
	if !ok {
		p = &SimOutput{}
		b.Outputs[name] = p
	}
	return p, nil
}

func (b *SimBoard) AnalogInput(name string) (component.AnalogInput, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	p, ok := b.Analogs[name]
	if !ok {
		p = &SimAnalog{}
		b.Analogs[name] = p
	}
	return p, nil
}

// Names lists every pin handed out so far, sorted, as "kind:name".
func (b *SimBoard) Names() []string {
	var out []string
	for n := range b.Inputs {
		out = append(out, "in:"+n)
	}
	for n := range b.Outputs {
		out = append(out, "out:"+n)
	}
	for n := range b.Analogs {
		out = append(out, "analog:"+n)
	}
	sort.Strings(out)
	return out
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrUnknownPin)
	}
	return nil
}
