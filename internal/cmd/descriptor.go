package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Alia5/knobpad/gamepad"
)

type Descriptor struct {
	Output string `short:"o" help:"Write the raw descriptor to this file (for configfs report_desc) instead of printing hex" type:"path"`

	out io.Writer `kong:"-"`
}

// Run is called by Kong when the descriptor command is executed.
func (d *Descriptor) Run() error {
	desc := gamepad.Descriptor()
	if d.Output != "" {
		return os.WriteFile(d.Output, desc, 0o644)
	}
	out := d.out
	if out == nil {
		out = os.Stdout
	}
	_, err := fmt.Fprintf(out, "% x\nreport length: %d\n", []byte(desc), gamepad.ReportSize)
	return err
}
