// Package mux supports the 74LS151 8-to-1 data selector, which lets one input
// pin read eight switches through three address lines.
package mux

import (
	"fmt"

	"github.com/Alia5/knobpad/component"
)

// Lines is the number of inputs a multiplexer selects between.
const Lines = 8

// Multiplexer drives three address outputs and reads the selected line from
// one shared data input.
//
// Reading a line drives the address and samples the data pin with no delay in
// between. Lines of one multiplexer must be read one after another, never
// interleaved, or a read samples the wrong address.
type Multiplexer struct {
	addr [3]component.DigitalOutput
	data component.DigitalInput
}

func New(a0, a1, a2 component.DigitalOutput, data component.DigitalInput) *Multiplexer {
	return &Multiplexer{addr: [3]component.DigitalOutput{a0, a1, a2}, data: data}
}

func (m *Multiplexer) Setup() error {
	for i, o := range m.addr {
		if err := o.Setup(); err != nil {
			return fmt.Errorf("mux address line %d: %w", i, err)
		}
	}
	if err := m.data.Setup(); err != nil {
		return fmt.Errorf("mux data line: %w", err)
	}
	return nil
}

func (m *Multiplexer) Update() {}

// Input returns the line at address. Only the low three bits of address are
// used.
func (m *Multiplexer) Input(address uint8) *Line {
	return &Line{mux: m, address: address & (Lines - 1)}
}

func (m *Multiplexer) read(address uint8) bool {
	for bit, o := range m.addr {
		o.Write(address&(1<<bit) != 0)
	}
	return m.data.Read()
}

// Line is one input of a multiplexer. It satisfies component.DigitalInput.
type Line struct {
	mux     *Multiplexer
	address uint8
}

// Setup does nothing; the pins belong to the multiplexer, which is set up on
// its own.
func (l *Line) Setup() error { return nil }

func (l *Line) Read() bool { return l.mux.read(l.address) }

func (l *Line) Address() uint8 { return l.address }
