// Package pin binds the component pin contracts to real hardware through
// periph, and to in-memory pins for dry runs and tests.
package pin

import (
	"errors"

	"github.com/Alia5/knobpad/component"
)

var ErrUnknownPin = errors.New("unknown pin")

// Board resolves pin names from a layout file to pins.
type Board interface {
	DigitalInput(name string) (component.DigitalInput, error)
	DigitalOutput(name string) (component.DigitalOutput, error)
	AnalogInput(name string) (component.AnalogInput, error)
}
