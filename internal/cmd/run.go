package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alia5/knobpad/gamepad"
	"github.com/Alia5/knobpad/internal/log"
	"github.com/Alia5/knobpad/layout"
	"github.com/Alia5/knobpad/pin"
	"github.com/Alia5/knobpad/poll"
	"periph.io/x/conn/v3/analog"
	"periph.io/x/host/v3"
)

type Run struct {
	Layout    string        `help:"Controller layout file (YAML or TOML)" type:"existingfile" required:"" env:"KNOBPAD_LAYOUT"`
	Tick      time.Duration `help:"Polling period" default:"10ms" env:"KNOBPAD_TICK"`
	HIDDevice string        `help:"HID gadget device receiving joystick reports (empty: dry run)" default:"/dev/hidg0" env:"KNOBPAD_HID_DEVICE"`
	Priority  int           `help:"Scheduling nice value for the polling process (0: leave unchanged)" default:"0" env:"KNOBPAD_PRIORITY"`

	ADC pin.ADSConfig `embed:"" prefix:"adc."`
}

// Run is called by Kong when the run command is executed.
func (r *Run) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l, err := layout.Load(r.Layout)
	if err != nil {
		return err
	}
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("init periph host drivers: %w", err)
	}

	var analogs map[string]analog.PinADC
	if r.ADC.Bus != "" {
		pins, closer, err := pin.OpenADS1115(r.ADC)
		if err != nil {
			return err
		}
		defer closer.Close()
		analogs = pins
		logger.Info("ADS1115 opened", "bus", r.ADC.Bus, "address", r.ADC.Address)
	}

	var w io.Writer
	if r.HIDDevice != "" {
		f, err := os.OpenFile(r.HIDDevice, os.O_WRONLY, 0)
		if err != nil {
			return fmt.Errorf("open hid device: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		logger.Warn("no HID device configured; reports are only logged")
	}

	if r.Priority != 0 {
		if err := setPriority(r.Priority); err != nil {
			logger.Warn("failed to set scheduling priority", "priority", r.Priority, "error", err)
		}
	}

	pad := gamepad.New(w, logger, rawLogger)
	built, err := layout.Build(l, pin.NewPeriphBoard(analogs), pad, logger)
	if err != nil {
		return err
	}

	loop := poll.New(poll.Config{
		Components: built.Components,
		Names:      built.Names,
		Host:       pad,
		Period:     r.Tick,
		Logger:     logger,
	})
	if err := loop.Setup(); err != nil {
		return err
	}
	logger.Info("Starting knobpad", "layout", r.Layout, "controls", len(l.Controls), "hid", r.HIDDevice)
	return loop.Run(ctx)
}
