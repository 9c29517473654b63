// Package output contains the sinks that controls emit into: buttons and
// axes on the host joystick.
package output

import "github.com/Alia5/knobpad/component"

// Host is the joystick interface the controller reports to. Buttons are
// addressed by number (1-32); axes are named and take values at the
// resolution of their role.
type Host interface {
	Press(num int)
	Release(num int)

	XAxis(v int16)
	YAxis(v int16)
	ZAxis(v int8)
	RxAxis(v int16)
	RyAxis(v int16)
	RzAxis(v int8)
}

// Button is a joystick button. Update must be called once per tick by the
// component that owns the button, before that component reads its inputs.
type Button interface {
	component.Updater
	Press()
	Release()
}

// Set presses b if pressed is true and releases it otherwise.
func Set(b Button, pressed bool) {
	if pressed {
		b.Press()
	} else {
		b.Release()
	}
}

// HostButton is a button on the host joystick.
type HostButton struct {
	host Host
	num  int
}

// NewHostButton returns the host button with the given number.
func NewHostButton(host Host, num int) *HostButton {
	return &HostButton{host: host, num: num}
}

// Num returns the host button number.
func (b *HostButton) Num() int { return b.num }

func (b *HostButton) Press()   { b.host.Press(b.num) }
func (b *HostButton) Release() { b.host.Release(b.num) }
func (b *HostButton) Update()  {}
