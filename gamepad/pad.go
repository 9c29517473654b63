package gamepad

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Alia5/knobpad/internal/log"
)

// Pad collects button and axis changes during a tick and writes one report
// per tick to the host when something changed. It satisfies output.Host.
type Pad struct {
	w      io.Writer
	logger *slog.Logger
	raw    log.RawLogger

	state   Report
	sent    Report
	primed  bool
	invalid map[int]bool
}

// New returns a pad writing reports to w, typically a USB gadget HID device
// such as /dev/hidg0. A nil w discards reports. The first Flush always sends
// a report so the host starts from a known state.
func New(w io.Writer, logger *slog.Logger, raw log.RawLogger) *Pad {
	if w == nil {
		w = io.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	return &Pad{w: w, logger: logger, raw: raw, invalid: map[int]bool{}}
}

func (p *Pad) Press(num int)   { p.setButton(num, true) }
func (p *Pad) Release(num int) { p.setButton(num, false) }

func (p *Pad) XAxis(v int16)  { p.setAxis16(&p.state.X, "x", v) }
func (p *Pad) YAxis(v int16)  { p.setAxis16(&p.state.Y, "y", v) }
func (p *Pad) ZAxis(v int8)   { p.setAxis8(&p.state.Z, "z", v) }
func (p *Pad) RxAxis(v int16) { p.setAxis16(&p.state.Rx, "rx", v) }
func (p *Pad) RyAxis(v int16) { p.setAxis16(&p.state.Ry, "ry", v) }
func (p *Pad) RzAxis(v int8)  { p.setAxis8(&p.state.Rz, "rz", v) }

// State returns the current report, including changes not yet flushed.
func (p *Pad) State() Report { return p.state }

// Flush writes the current report if it differs from the last one written.
func (p *Pad) Flush() error {
	if p.primed && p.state == p.sent {
		return nil
	}
	b, err := p.state.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := p.w.Write(b); err != nil {
		return fmt.Errorf("write hid report: %w", err)
	}
	p.raw.Log(true, b)
	p.sent, p.primed = p.state, true
	return nil
}

func (p *Pad) setButton(num int, pressed bool) {
	if num < 1 || num > NumButtons {
		if !p.invalid[num] {
			p.invalid[num] = true
			p.logger.Warn("ignoring out of range button", "button", num, "max", NumButtons)
		}
		return
	}
	mask := uint32(1) << (num - 1)
	old := p.state.Buttons
	if pressed {
		p.state.Buttons |= mask
	} else {
		p.state.Buttons &^= mask
	}
	if p.state.Buttons != old {
		p.logger.Log(context.Background(), log.LevelTrace, "button", "num", num, "pressed", pressed)
	}
}

func (p *Pad) setAxis16(dst *int16, name string, v int16) {
	if *dst != v {
		*dst = v
		p.logger.Log(context.Background(), log.LevelTrace, "axis", "axis", name, "value", v)
	}
}

func (p *Pad) setAxis8(dst *int8, name string, v int8) {
	if *dst != v {
		*dst = v
		p.logger.Log(context.Background(), log.LevelTrace, "axis", "axis", name, "value", v)
	}
}
