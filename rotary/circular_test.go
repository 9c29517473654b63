package rotary_test

import (
	"testing"

	padTesting "github.com/Alia5/knobpad/internal/testing"
	"github.com/Alia5/knobpad/pin"
	"github.com/Alia5/knobpad/rotary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type circularRig struct {
	in       *pin.SimAnalog
	log      []string
	up, down *padTesting.Button
	c        *rotary.Circular
}

func newCircularRig(t *testing.T, divisions int) *circularRig {
	t.Helper()
	rig := &circularRig{in: &pin.SimAnalog{}}
	rig.up = padTesting.NewButton("up", &rig.log)
	rig.down = padTesting.NewButton("down", &rig.log)
	c, err := rotary.NewCircular(rig.in, rig.up, rig.down, divisions)
	require.NoError(t, err)
	require.NoError(t, c.Setup())
	rig.c = c
	return rig
}

func (rig *circularRig) read(v float64) {
	rig.in.Value = v
	rig.c.Update()
}

func (rig *circularRig) pending() [2]int {
	up, down := rig.c.Pending()
	return [2]int{up, down}
}

func TestCircularUpStepIsPaced(t *testing.T) {
	rig := newCircularRig(t, 4)

	rig.read(0.26)
	assert.Equal(t, [2]int{1, 0}, rig.pending())
	assert.Empty(t, rig.log, "a step is never pressed on the tick it is recognized")
	assert.Equal(t, 0.26, rig.c.Position())

	rig.read(0.26)
	assert.Equal(t, []string{"up+"}, rig.log)
	assert.Equal(t, [2]int{1, 0}, rig.pending())

	rig.read(0.26)
	assert.Equal(t, []string{"up+", "up-"}, rig.log)
	assert.Equal(t, [2]int{0, 0}, rig.pending())

	rig.read(0.26)
	assert.Len(t, rig.log, 2)
}

func TestCircularSmallMovesIgnored(t *testing.T) {
	rig := newCircularRig(t, 4)
	for _, v := range []float64{0.1, 0.2, 0.24, 0.9, 0.8} {
		rig.read(v)
	}
	assert.Equal(t, [2]int{0, 0}, rig.pending())
	assert.Equal(t, 0.0, rig.c.Position())
}

func TestCircularDownStep(t *testing.T) {
	rig := newCircularRig(t, 4)

	rig.read(0.7)
	assert.Equal(t, [2]int{0, 1}, rig.pending())
	rig.read(0.7)
	rig.read(0.7)
	assert.Equal(t, []string{"down+", "down-"}, rig.log)
}

func TestCircularTieFavorsDown(t *testing.T) {
	rig := newCircularRig(t, 4)
	rig.read(0.5)
	assert.Equal(t, [2]int{0, 1}, rig.pending())
}

func TestCircularQueuesSteps(t *testing.T) {
	rig := newCircularRig(t, 4)

	rig.read(0.26)
	rig.read(0.52)
	rig.read(0.78)
	assert.Equal(t, [2]int{2, 0}, rig.pending())
	for range 4 {
		rig.read(0.78)
	}
	assert.Equal(t, [2]int{0, 0}, rig.pending())
	assert.Equal(t, []string{"up+", "up-", "up+", "up-", "up+", "up-"}, rig.log)
}

func TestCircularWrapsAround(t *testing.T) {
	rig := newCircularRig(t, 4)
	rig.read(0.26)
	rig.read(0.52)
	rig.read(0.78)
	rig.read(0.05)
	up, _ := rig.c.Pending()
	assert.Equal(t, 0.05, rig.c.Position())
	assert.Equal(t, 3, up)
}

func TestCircularReversalClearsOppositeQueue(t *testing.T) {
	rig := newCircularRig(t, 4)

	rig.read(0.26)
	rig.read(0.0)
	assert.Equal(t, [2]int{0, 1}, rig.pending())
	for range 3 {
		rig.read(0.0)
	}
	assert.Equal(t, []string{"up+", "up-", "down+", "down-"}, rig.log)
	assert.Equal(t, [2]int{0, 0}, rig.pending())
	assert.False(t, rig.up.Pressed && rig.down.Pressed)
}

func TestCircularInvalidDivisions(t *testing.T) {
	_, err := rotary.NewCircular(&pin.SimAnalog{}, padTesting.NewButton("u", nil), padTesting.NewButton("d", nil), 0)
	assert.ErrorIs(t, err, rotary.ErrDivisions)
}

func TestCircularFullTurnWithEightDivisions(t *testing.T) {
	rig := newCircularRig(t, 8)

	steps := []struct {
		val  float64
		want float64
	}{
		{0.13, 0.13},
		{0.26, 0.26},
		{0.39, 0.39},
		{0.52, 0.52},
		{0.65, 0.65},
		{0.78, 0.78},
		{0.91, 0.91},
		{0.04, 0.04}, // forward across the wrap point
		{0.9, 0.9},   // backward across the wrap point
		{0.77, 0.77},
		{0.8, 0.77}, // less than a step: ignored
		{0.7, 0.77},
	}
	for i, s := range steps {
		rig.read(s.val)
		assert.Equal(t, s.want, rig.c.Position(), "step %d: read %v", i, s.val)
	}

	for range 8 {
		rig.read(0.77)
	}
	assert.Contains(t, rig.log, "up+")
	assert.Contains(t, rig.log, "down+")
	assert.Equal(t, [2]int{0, 0}, rig.pending())
}
