// Package switches turns on/off switches into joystick button presses.
//
// The latching switches keep the last position they emitted and only touch
// their buttons when the position changes. The last position starts out as
// "none", so the first Update always emits the initial state. A Reflector
// instead sets its button on every tick. Buttons are updated before the
// inputs are read.
package switches

import (
	"github.com/Alia5/knobpad/component"
	"github.com/Alia5/knobpad/output"
)

// Position of a switch.
type Position int

const (
	None Position = iota - 1
	Up
	Middle
	Down
)

func (p Position) String() string {
	switch p {
	case Up:
		return "up"
	case Middle:
		return "middle"
	case Down:
		return "down"
	default:
		return "none"
	}
}

// Reflector mirrors a momentary pushbutton onto a joystick button. The input
// is wired with a pull-up: true means the button is not pressed. The button
// is pressed or released on every tick, so a momentary button stays armed
// for as long as the pushbutton is held.
type Reflector struct {
	in     component.DigitalInput
	button output.Button
}

func NewReflector(in component.DigitalInput, button output.Button) *Reflector {
	return &Reflector{in: in, button: button}
}

func (r *Reflector) Setup() error { return r.in.Setup() }

func (r *Reflector) Update() {
	r.button.Update()

	output.Set(r.button, !r.in.Read())
}

// TwoWay is a latching on/off switch that presses one of two buttons
// depending on its position.
type TwoWay struct {
	in       component.DigitalInput
	up, down output.Button
	last     Position
}

func NewTwoWay(in component.DigitalInput, up, down output.Button) *TwoWay {
	return &TwoWay{in: in, up: up, down: down, last: None}
}

func (s *TwoWay) Setup() error { return s.in.Setup() }

func (s *TwoWay) Update() {
	s.up.Update()
	s.down.Update()

	current := Down
	if s.in.Read() {
		current = Up
	}
	if current == s.last {
		return
	}
	pressed, other := s.up, s.down
	if current == Down {
		pressed, other = s.down, s.up
	}
	other.Release()
	pressed.Press()
	s.last = current
}

// Position returns the last emitted position.
func (s *TwoWay) Position() Position { return s.last }

// ThreeWay is an on-off-on switch with two inputs, pressing one of three
// buttons. The up input wins if both inputs are active.
type ThreeWay struct {
	inUp, inDown     component.DigitalInput
	up, middle, down output.Button
	last             Position
}

func NewThreeWay(inUp, inDown component.DigitalInput, up, middle, down output.Button) *ThreeWay {
	return &ThreeWay{
		inUp:   inUp,
		inDown: inDown,
		up:     up,
		middle: middle,
		down:   down,
		last:   None,
	}
}

func (s *ThreeWay) Setup() error {
	return component.SetupAll(s.inUp, s.inDown)
}

func (s *ThreeWay) Update() {
	s.up.Update()
	s.middle.Update()
	s.down.Update()

	var current Position
	switch {
	case !s.inUp.Read():
		current = Up
	case !s.inDown.Read():
		current = Down
	default:
		current = Middle
	}
	if current == s.last {
		return
	}
	buttons := [...]output.Button{Up: s.up, Middle: s.middle, Down: s.down}
	for p, b := range buttons {
		if Position(p) != current {
			b.Release()
		}
	}
	buttons[current].Press()
	s.last = current
}

// Position returns the last emitted position.
func (s *ThreeWay) Position() Position { return s.last }
