package rotary

import (
	"testing"

	padTesting "github.com/Alia5/knobpad/internal/testing"
	"github.com/Alia5/knobpad/pin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forwardStep(q *Quadrature) {
	q.record(fall1)
	q.record(fall2)
}

func backwardStep(q *Quadrature) {
	q.record(fall2)
	q.record(fall1)
}

func TestQuadratureQueueLimit(t *testing.T) {
	fwd := padTesting.NewButton("fwd", nil)
	bwd := padTesting.NewButton("bwd", nil)
	q, err := NewQuadrature(pin.NewSimInput(), pin.NewSimInput(), fwd, bwd, 3)
	require.NoError(t, err)

	for range 10 {
		forwardStep(q)
	}
	for range 2 {
		backwardStep(q)
	}
	f, b := q.Pending()
	assert.Equal(t, 3, f)
	assert.Equal(t, 2, b)
	assert.Equal(t, 7, q.Dropped())

	// Drain: forward first, one press and one release per step.
	for range 2 * (3 + 2) {
		q.pump.step()
	}
	assert.Equal(t, 3, fwd.Presses)
	assert.Equal(t, 3, fwd.Releases)
	assert.Equal(t, 2, bwd.Presses)
	assert.Equal(t, 2, bwd.Releases)
	f, b = q.Pending()
	assert.Zero(t, f)
	assert.Zero(t, b)
}

func TestQuadratureClearsCodesAfterStep(t *testing.T) {
	q, err := NewQuadrature(pin.NewSimInput(), pin.NewSimInput(),
		padTesting.NewButton("fwd", nil), padTesting.NewButton("bwd", nil), 4)
	require.NoError(t, err)

	forwardStep(q)
	assert.Zero(t, q.code)
	assert.Zero(t, q.prev)

	// fall2 alone cannot pair with the consumed fall1.
	q.record(fall2)
	f, _ := q.Pending()
	assert.Equal(t, 1, f)
}

func TestPumpOneButtonAtATime(t *testing.T) {
	var log []string
	p := pump{
		forward:  padTesting.NewButton("f", &log),
		backward: padTesting.NewButton("b", &log),
	}
	p.push(Backward)
	p.push(Forward)
	p.push(Forward)
	for range 8 {
		p.step()
	}
	assert.Equal(t, []string{"f+", "f-", "f+", "f-", "b+", "b-"}, log)
}

func TestThresholdScale(t *testing.T) {
	r := &Threshold{threshold: 0.5}
	assert.InDelta(t, 0.2, r.scale(0.6), 1e-9)
	assert.Zero(t, r.scale(0.49))
	assert.InDelta(t, 1, r.scale(1), 1e-9)

	r.threshold = 1
	assert.Equal(t, 1.0, r.scale(1))
}
