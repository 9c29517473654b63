// Package component defines the capability contracts shared by every piece of
// the controller: one-time hardware setup, per-tick updates, and the pin
// contracts that physical inputs and outputs satisfy.
package component

// SetUpper is a thing that needs one-time initialization before first use.
// Pins need it to configure direction and pull resistors; components forward
// it to the pins they own.
type SetUpper interface {
	Setup() error
}

// Updater wants to be called once per tick.
type Updater interface {
	Update()
}

// Component is a physical part of the controller (a switch, a knob, a
// multiplexer). The driver calls Setup once and then Update on every tick.
type Component interface {
	SetUpper
	Updater
}

// DigitalInput is a source of boolean input: a pin, or a line selected
// through a multiplexer.
type DigitalInput interface {
	SetUpper
	Read() bool
}

// DigitalOutput accepts a boolean level.
type DigitalOutput interface {
	SetUpper
	Write(val bool)
}

// AnalogInput is a source of analog input normalized to [0.0, 1.0].
type AnalogInput interface {
	SetUpper
	Read() float64
}

// SetupAll calls Setup on each of the given setuppers in order and stops at
// the first error.
func SetupAll(s ...SetUpper) error {
	for _, it := range s {
		if err := it.Setup(); err != nil {
			return err
		}
	}
	return nil
}
