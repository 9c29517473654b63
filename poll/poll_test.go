package poll_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/Alia5/knobpad/component"
	"github.com/Alia5/knobpad/poll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stub struct {
	name     string
	log      *[]string
	setupErr error
}

func (s *stub) Setup() error {
	*s.log = append(*s.log, s.name+" setup")
	return s.setupErr
}

func (s *stub) Update() { *s.log = append(*s.log, s.name+" update") }

type flusher struct {
	log *[]string
	err error
}

func (f *flusher) Flush() error {
	*f.log = append(*f.log, "flush")
	return f.err
}

func bufLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestSetupStopsAtFirstError(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	l := poll.New(poll.Config{
		Components: []component.Component{
			&stub{name: "a", log: &log},
			&stub{name: "b", log: &log, setupErr: boom},
			&stub{name: "c", log: &log},
		},
		Names: []string{"first", "second"},
	})

	err := l.Setup()
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "setup second")
	assert.Equal(t, []string{"a setup", "b setup"}, log)
}

func TestSetupUnnamedComponent(t *testing.T) {
	var log []string
	l := poll.New(poll.Config{
		Components: []component.Component{&stub{name: "a", log: &log, setupErr: errors.New("x")}},
	})
	assert.ErrorContains(t, l.Setup(), "component #0")
}

func TestTickUpdatesInOrderThenFlushes(t *testing.T) {
	var log []string
	l := poll.New(poll.Config{
		Components: []component.Component{&stub{name: "mux", log: &log}, &stub{name: "switch", log: &log}},
		Host:       &flusher{log: &log},
	})

	l.Tick()
	l.Tick()
	assert.Equal(t, []string{
		"mux update", "switch update", "flush",
		"mux update", "switch update", "flush",
	}, log)
	assert.Equal(t, uint64(2), l.Ticks())
}

func TestTickWithoutHost(t *testing.T) {
	var log []string
	l := poll.New(poll.Config{Components: []component.Component{&stub{name: "a", log: &log}}})
	l.Tick()
	assert.Equal(t, []string{"a update"}, log)
}

func TestFlushFailureLoggedOnce(t *testing.T) {
	var log []string
	logger, buf := bufLogger()
	f := &flusher{log: &log, err: errors.New("device gone")}
	l := poll.New(poll.Config{Host: f, Logger: logger})

	l.Tick()
	l.Tick()
	l.Tick()
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("host flush failed")))

	f.err = nil
	l.Tick()
	assert.Contains(t, buf.String(), "host flush recovered")
	assert.Len(t, log, 4)
}

func TestRunStopsOnCancel(t *testing.T) {
	var log []string
	logger, _ := bufLogger()
	l := poll.New(poll.Config{
		Components: []component.Component{&stub{name: "a", log: &log}},
		Period:     time.Millisecond,
		Logger:     logger,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.NoError(t, l.Run(ctx))
	assert.Positive(t, l.Ticks())
	assert.Len(t, log, int(l.Ticks()))
}
