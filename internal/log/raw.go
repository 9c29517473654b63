package log

import (
	"encoding/hex"
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger dumps raw HID reports.
type RawLogger interface {
	// Log records one report. out is true for reports sent to the host.
	Log(out bool, data []byte)
}

type rawLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewRaw returns a RawLogger writing one hex line per report to w. A nil w
// discards everything.
func NewRaw(w io.Writer) RawLogger {
	if w == nil {
		return nopRaw{}
	}
	return &rawLogger{w: w}
}

func (r *rawLogger) Log(out bool, data []byte) {
	dir := "<-"
	if out {
		dir = "->"
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintf(r.w, "%s %s %s\n", time.Now().Format("15:04:05.000000"), dir, hex.EncodeToString(data))
}

type nopRaw struct{}

func (nopRaw) Log(bool, []byte) {}
