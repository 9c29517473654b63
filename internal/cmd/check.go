package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Alia5/knobpad/gamepad"
	"github.com/Alia5/knobpad/layout"
	"github.com/Alia5/knobpad/pin"
	"github.com/Alia5/knobpad/poll"
)

type Check struct {
	Layout string `arg:"" help:"Controller layout file (YAML or TOML)" type:"existingfile"`
	Ticks  int    `help:"Number of ticks to run against simulated pins" default:"3"`

	out io.Writer `kong:"-"`
}

// Run is called by Kong when the check command is executed.
func (c *Check) Run(logger *slog.Logger) error {
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	l, err := layout.Load(c.Layout)
	if err != nil {
		return err
	}
	board := pin.NewSimBoard()
	pad := gamepad.New(nil, logger, nil)
	built, err := layout.Build(l, board, pad, logger)
	if err != nil {
		return err
	}

	loop := poll.New(poll.Config{Components: built.Components, Names: built.Names, Host: pad, Logger: logger})
	if err := loop.Setup(); err != nil {
		return err
	}
	for range c.Ticks {
		loop.Tick()
	}

	for _, n := range built.Names {
		fmt.Fprintln(out, n)
	}
	for _, n := range board.Names() {
		fmt.Fprintln(out, "  pin", n)
	}
	report, err := pad.State().MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	fmt.Fprintf(out, "%d components ok, report at rest: % x\n", len(built.Components), report)
	return nil
}
