package pin

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
)

// ADS1115 channel names as used in layout files.
var adsChannels = []struct {
	name string
	ch   ads1x15.Channel
}{
	{"ads0", ads1x15.Channel0},
	{"ads1", ads1x15.Channel1},
	{"ads2", ads1x15.Channel2},
	{"ads3", ads1x15.Channel3},
}

// ADSConfig configures an ADS1115 on an I2C bus.
type ADSConfig struct {
	Bus        string  `help:"I2C bus of an ADS1115 providing analog pins ads0-ads3 (empty: no ADC)" env:"KNOBPAD_ADC_BUS"`
	Address    uint16  `help:"I2C address of the ADS1115" default:"72" env:"KNOBPAD_ADC_ADDRESS"`
	MaxVoltage float64 `help:"Full-scale voltage of the potentiometers" default:"3.3" env:"KNOBPAD_ADC_MAX_VOLTAGE"`
	Rate       int     `help:"Conversion rate in samples per second" default:"860" env:"KNOBPAD_ADC_RATE"`
}

// OpenADS1115 opens the ADC described by cfg and returns its four
// single-ended channels keyed by name, ready for NewPeriphBoard. The returned
// closer releases the bus.
func OpenADS1115(cfg ADSConfig) (map[string]analog.PinADC, io.Closer, error) {
	bus, err := i2creg.Open(cfg.Bus)
	if err != nil {
		return nil, nil, fmt.Errorf("open i2c bus %q: %w", cfg.Bus, err)
	}
	opts := ads1x15.DefaultOpts
	if cfg.Address != 0 {
		opts.I2cAddress = cfg.Address
	}
	dev, err := ads1x15.NewADS1115(bus, &opts)
	if err != nil {
		_ = bus.Close()
		return nil, nil, fmt.Errorf("ads1115 at %#x: %w", opts.I2cAddress, err)
	}

	maxV := physic.ElectricPotential(cfg.MaxVoltage * float64(physic.Volt))
	rate := physic.Frequency(cfg.Rate) * physic.Hertz
	pins := make(map[string]analog.PinADC, len(adsChannels))
	for _, c := range adsChannels {
		p, err := dev.PinForChannel(c.ch, maxV, rate, ads1x15.BestQuality)
		if err != nil {
			_ = bus.Close()
			return nil, nil, fmt.Errorf("ads1115 %s: %w", c.name, err)
		}
		pins[c.name] = p
	}
	return pins, bus, nil
}
