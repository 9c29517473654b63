// Package testing holds recorders shared by the package tests.
package testing

import "fmt"

// Button records the calls made to it. It satisfies output.Button.
type Button struct {
	Name     string
	Pressed  bool
	Presses  int
	Releases int
	Updates  int
	Log      *[]string
}

// NewButton returns a button that appends "name+" on press and "name-" on
// release to log, when log is non-nil.
func NewButton(name string, log *[]string) *Button {
	return &Button{Name: name, Log: log}
}

func (b *Button) Press() {
	b.Pressed = true
	b.Presses++
	b.record("+")
}

func (b *Button) Release() {
	b.Pressed = false
	b.Releases++
	b.record("-")
}

func (b *Button) Update() { b.Updates++ }

func (b *Button) record(suffix string) {
	if b.Log != nil {
		*b.Log = append(*b.Log, b.Name+suffix)
	}
}

// Host records button and axis reports. It satisfies output.Host.
type Host struct {
	Buttons map[int]bool
	Events  []string

	X, Y, Rx, Ry int16
	Z, Rz        int8
}

func NewHost() *Host {
	return &Host{Buttons: map[int]bool{}}
}

func (h *Host) Press(num int) {
	h.Buttons[num] = true
	h.Events = append(h.Events, fmt.Sprintf("press %d", num))
}

func (h *Host) Release(num int) {
	h.Buttons[num] = false
	h.Events = append(h.Events, fmt.Sprintf("release %d", num))
}

func (h *Host) XAxis(v int16)  { h.X = v }
func (h *Host) YAxis(v int16)  { h.Y = v }
func (h *Host) ZAxis(v int8)   { h.Z = v }
func (h *Host) RxAxis(v int16) { h.Rx = v }
func (h *Host) RyAxis(v int16) { h.Ry = v }
func (h *Host) RzAxis(v int8)  { h.Rz = v }

// Output records the levels written to a digital output.
type Output struct {
	Level   bool
	Writes  []bool
	SetUp   bool
	OnWrite func(bool)
}

func (o *Output) Setup() error {
	o.SetUp = true
	return nil
}

func (o *Output) Write(v bool) {
	o.Level = v
	o.Writes = append(o.Writes, v)
	if o.OnWrite != nil {
		o.OnWrite(v)
	}
}
