package output_test

import (
	"testing"

	padTesting "github.com/Alia5/knobpad/internal/testing"
	"github.com/Alia5/knobpad/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMomentaryAutoRelease(t *testing.T) {
	for duration := 1; duration <= 5; duration++ {
		inner := padTesting.NewButton("b", nil)
		m, err := output.NewMomentary(inner, duration)
		require.NoError(t, err)

		m.Press()
		assert.True(t, inner.Pressed)
		for i := 1; i < duration; i++ {
			m.Update()
			assert.True(t, inner.Pressed, "duration %d: released early on update %d", duration, i)
		}
		m.Update()
		assert.False(t, inner.Pressed, "duration %d: not released on update %d", duration, duration)
		assert.Equal(t, 1, inner.Releases)

		for range 10 {
			m.Update()
		}
		assert.Equal(t, 1, inner.Releases, "duration %d: released again without a press", duration)
	}
}

func TestMomentaryRepressExtendsHold(t *testing.T) {
	inner := padTesting.NewButton("b", nil)
	m, err := output.NewMomentary(inner, 3)
	require.NoError(t, err)

	m.Press()
	m.Update()
	m.Update()
	m.Press()
	m.Update()
	m.Update()
	assert.True(t, inner.Pressed)
	m.Update()
	assert.False(t, inner.Pressed)
	assert.Equal(t, 1, inner.Releases)
}

func TestMomentaryReleaseCancelsCountdown(t *testing.T) {
	inner := padTesting.NewButton("b", nil)
	m, err := output.NewMomentary(inner, 2)
	require.NoError(t, err)

	m.Press()
	assert.True(t, m.Armed())
	m.Release()
	assert.False(t, m.Armed())
	for range 5 {
		m.Update()
	}
	assert.Equal(t, 1, inner.Releases)
}

func TestMomentaryForwardsUpdate(t *testing.T) {
	inner := padTesting.NewButton("b", nil)
	m, err := output.NewMomentary(inner, output.DefaultHold)
	require.NoError(t, err)

	m.Update()
	m.Update()
	assert.Equal(t, 2, inner.Updates)
}

func TestMomentaryInvalidDuration(t *testing.T) {
	_, err := output.NewMomentary(padTesting.NewButton("b", nil), 0)
	assert.ErrorIs(t, err, output.ErrDuration)
}

func TestHostButton(t *testing.T) {
	host := padTesting.NewHost()
	b := output.NewHostButton(host, 7)

	output.Set(b, true)
	assert.True(t, host.Buttons[7])
	b.Update()
	output.Set(b, false)
	assert.False(t, host.Buttons[7])
	assert.Equal(t, []string{"press 7", "release 7"}, host.Events)
	assert.Equal(t, 7, b.Num())
}
