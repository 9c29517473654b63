package layout

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Alia5/knobpad/component"
	"github.com/Alia5/knobpad/gamepad"
	"github.com/Alia5/knobpad/mux"
	"github.com/Alia5/knobpad/output"
	"github.com/Alia5/knobpad/pin"
	"github.com/Alia5/knobpad/rotary"
	"github.com/Alia5/knobpad/switches"
)

// Built is the result of building a layout.
type Built struct {
	// Components are the top-level components in update order: multiplexers
	// first, then controls in file order.
	Components []component.Component
	// Names labels each entry of Components.
	Names []string
}

type builder struct {
	board  pin.Board
	host   output.Host
	logger *slog.Logger
	muxes  map[string]*mux.Multiplexer
	used   map[int]string
}

// Build validates l and wires its controls to board and host.
func Build(l *Layout, board pin.Board, host output.Host, logger *slog.Logger) (*Built, error) {
	if logger == nil {
		logger = slog.Default()
	}
	b := &builder{
		board:  board,
		host:   host,
		logger: logger,
		muxes:  map[string]*mux.Multiplexer{},
		used:   map[int]string{},
	}
	out := &Built{}

	for i, m := range l.Muxes {
		mx, err := b.mux(m)
		if err != nil {
			return nil, fmt.Errorf("mux #%d: %w", i, err)
		}
		out.Components = append(out.Components, mx)
		out.Names = append(out.Names, "mux "+strconv.Quote(m.Name))
	}
	for i, c := range l.Controls {
		comp, err := b.control(i, c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Label(i), err)
		}
		out.Components = append(out.Components, comp)
		out.Names = append(out.Names, c.Label(i))
		logger.Debug("control wired", "control", c.Label(i), "buttons", c.Buttons)
	}
	return out, nil
}

func (b *builder) mux(m Mux) (*mux.Multiplexer, error) {
	if m.Name == "" {
		return nil, fmt.Errorf("%w: mux needs a name", ErrInvalid)
	}
	if _, dup := b.muxes[m.Name]; dup {
		return nil, fmt.Errorf("%w: duplicate mux %q", ErrInvalid, m.Name)
	}
	if len(m.Address) != 3 {
		return nil, fmt.Errorf("%w: mux %q needs 3 address pins, got %d", ErrInvalid, m.Name, len(m.Address))
	}
	var addr [3]component.DigitalOutput
	for i, name := range m.Address {
		o, err := b.board.DigitalOutput(name)
		if err != nil {
			return nil, err
		}
		addr[i] = o
	}
	data, err := b.board.DigitalInput(m.Data)
	if err != nil {
		return nil, err
	}
	mx := mux.New(addr[0], addr[1], addr[2], data)
	b.muxes[m.Name] = mx
	return mx, nil
}

func (b *builder) control(i int, c Control) (component.Component, error) {
	switch c.Type {
	case TypePushButton:
		in, btns, err := b.common(i, c, 1, 1)
		if err != nil {
			return nil, err
		}
		return switches.NewReflector(in[0], btns[0]), nil
	case TypeSwitch2:
		in, btns, err := b.common(i, c, 1, 2)
		if err != nil {
			return nil, err
		}
		return switches.NewTwoWay(in[0], btns[0], btns[1]), nil
	case TypeSwitch3:
		in, btns, err := b.common(i, c, 2, 3)
		if err != nil {
			return nil, err
		}
		return switches.NewThreeWay(in[0], in[1], btns[0], btns[1], btns[2]), nil
	case TypeThreshold:
		an, btns, err := b.analog(i, c)
		if err != nil {
			return nil, err
		}
		role, err := output.ParseRole(c.Axis)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		return rotary.NewThreshold(an, output.NewAxis(b.host, role), btns[0], btns[1], c.Threshold)
	case TypeCircular:
		an, btns, err := b.analog(i, c)
		if err != nil {
			return nil, err
		}
		return rotary.NewCircular(an, btns[0], btns[1], c.Divisions)
	case TypeQuadrature:
		in, btns, err := b.common(i, c, 2, 2)
		if err != nil {
			return nil, err
		}
		return rotary.NewQuadrature(in[0], in[1], btns[0], btns[1], c.QueueLimit)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, c.Type)
	}
}

func (b *builder) common(i int, c Control, inputs, buttons int) ([]component.DigitalInput, []output.Button, error) {
	if len(c.Inputs) != inputs {
		return nil, nil, fmt.Errorf("%w: needs %d inputs, got %d", ErrInvalid, inputs, len(c.Inputs))
	}
	in := make([]component.DigitalInput, len(c.Inputs))
	for j, name := range c.Inputs {
		d, err := b.input(name)
		if err != nil {
			return nil, nil, err
		}
		in[j] = d
	}
	btns, err := b.buttons(i, c, buttons)
	if err != nil {
		return nil, nil, err
	}
	return in, btns, nil
}

func (b *builder) analog(i int, c Control) (component.AnalogInput, []output.Button, error) {
	if c.Analog == "" {
		return nil, nil, fmt.Errorf("%w: needs an analog input", ErrInvalid)
	}
	an, err := b.board.AnalogInput(c.Analog)
	if err != nil {
		return nil, nil, err
	}
	btns, err := b.buttons(i, c, 2)
	if err != nil {
		return nil, nil, err
	}
	return an, btns, nil
}

// input resolves a pin name or a "mux:N" multiplexer line.
func (b *builder) input(name string) (component.DigitalInput, error) {
	if mname, line, ok := strings.Cut(name, ":"); ok {
		mx, found := b.muxes[mname]
		if !found {
			return nil, fmt.Errorf("%w: input %q: no mux %q", ErrInvalid, name, mname)
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 0 || n >= mux.Lines {
			return nil, fmt.Errorf("%w: input %q: line must be 0-%d", ErrInvalid, name, mux.Lines-1)
		}
		return mx.Input(uint8(n)), nil
	}
	return b.board.DigitalInput(name)
}

func (b *builder) buttons(i int, c Control, n int) ([]output.Button, error) {
	if len(c.Buttons) != n {
		return nil, fmt.Errorf("%w: needs %d buttons, got %d", ErrInvalid, n, len(c.Buttons))
	}
	if c.Hold < 0 {
		return nil, fmt.Errorf("%w: hold must not be negative", ErrInvalid)
	}
	out := make([]output.Button, n)
	for j, num := range c.Buttons {
		if num < 1 || num > gamepad.NumButtons {
			return nil, fmt.Errorf("%w: button %d out of range 1-%d", ErrInvalid, num, gamepad.NumButtons)
		}
		if prev, dup := b.used[num]; dup {
			b.logger.Warn("button shared between controls", "button", num, "first", prev, "second", c.Label(i))
		} else {
			b.used[num] = c.Label(i)
		}
		var btn output.Button = output.NewHostButton(b.host, num)
		if c.Hold > 0 {
			m, err := output.NewMomentary(btn, c.Hold)
			if err != nil {
				return nil, err
			}
			btn = m
		}
		out[j] = btn
	}
	return out, nil
}
