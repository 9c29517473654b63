package pin_test

import (
	"errors"
	"testing"

	"github.com/Alia5/knobpad/pin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

type fakeADC struct {
	analog.PinADC
	lo, hi int32
	raw    int32
	err    error
}

func (f *fakeADC) String() string { return "fake" }

func (f *fakeADC) Range() (analog.Sample, analog.Sample) {
	return analog.Sample{Raw: f.lo}, analog.Sample{Raw: f.hi}
}

func (f *fakeADC) Read() (analog.Sample, error) {
	if f.err != nil {
		return analog.Sample{}, f.err
	}
	return analog.Sample{Raw: f.raw}, nil
}

func TestSimBoardReusesPins(t *testing.T) {
	b := pin.NewSimBoard()

	in1, err := b.DigitalInput("GPIO4")
	require.NoError(t, err)
	in2, err := b.DigitalInput("GPIO4")
	require.NoError(t, err)
	assert.Same(t, in1, in2)
	assert.True(t, in1.Read(), "sim inputs idle high")

	_, err = b.DigitalOutput("GPIO5")
	require.NoError(t, err)
	_, err = b.AnalogInput("ads0")
	require.NoError(t, err)

	assert.Equal(t, []string{"analog:ads0", "in:GPIO4", "out:GPIO5"}, b.Names())
}

func TestSimBoardEmptyName(t *testing.T) {
	b := pin.NewSimBoard()
	_, err := b.DigitalInput(" ")
	assert.ErrorIs(t, err, pin.ErrUnknownPin)
	_, err = b.DigitalOutput("")
	assert.ErrorIs(t, err, pin.ErrUnknownPin)
	_, err = b.AnalogInput("")
	assert.ErrorIs(t, err, pin.ErrUnknownPin)
}

func TestPullUpInput(t *testing.T) {
	p := &gpiotest.Pin{N: "GPIO17"}
	in := pin.NewPullUpInput(p)
	require.NoError(t, in.Setup())
	assert.Equal(t, gpio.PullUp, p.P)

	p.L = gpio.High
	assert.True(t, in.Read())
	p.L = gpio.Low
	assert.False(t, in.Read())
}

func TestOutput(t *testing.T) {
	p := &gpiotest.Pin{N: "GPIO5", L: gpio.High}
	out := pin.NewOutput(p)
	require.NoError(t, out.Setup())
	assert.Equal(t, gpio.Low, p.L)

	out.Write(true)
	assert.Equal(t, gpio.High, p.L)
	out.Write(false)
	assert.Equal(t, gpio.Low, p.L)
}

func TestADCNormalizes(t *testing.T) {
	f := &fakeADC{lo: 0, hi: 32767}
	a := pin.NewADC(f)
	require.NoError(t, a.Setup())

	cases := []struct {
		raw  int32
		want float64
	}{
		{0, 0},
		{32767, 1},
		{-100, 0},
		{40000, 1},
	}
	for _, tc := range cases {
		f.raw = tc.raw
		assert.Equal(t, tc.want, a.Read(), "raw %d", tc.raw)
	}

	f.raw = 16384
	assert.InDelta(t, 0.5, a.Read(), 0.001)
}

func TestADCHoldsLastValueOnError(t *testing.T) {
	f := &fakeADC{lo: 0, hi: 100, raw: 25}
	a := pin.NewADC(f)
	require.NoError(t, a.Setup())
	assert.Equal(t, 0.25, a.Read())

	f.err = errors.New("i2c nack")
	assert.Equal(t, 0.25, a.Read())
}

func TestADCEmptyRange(t *testing.T) {
	a := pin.NewADC(&fakeADC{lo: 10, hi: 10})
	assert.Error(t, a.Setup())
}

func TestPeriphBoardUnknownPins(t *testing.T) {
	b := pin.NewPeriphBoard(nil)
	_, err := b.DigitalInput("NOT_A_PIN")
	assert.ErrorIs(t, err, pin.ErrUnknownPin)
	_, err = b.DigitalOutput("NOT_A_PIN")
	assert.ErrorIs(t, err, pin.ErrUnknownPin)
	_, err = b.AnalogInput("ads0")
	assert.ErrorIs(t, err, pin.ErrUnknownPin)
}

func TestPeriphBoardAnalog(t *testing.T) {
	b := pin.NewPeriphBoard(map[string]analog.PinADC{"ads0": &fakeADC{hi: 10, raw: 5}})
	an, err := b.AnalogInput("ads0")
	require.NoError(t, err)
	require.NoError(t, an.Setup())
	assert.Equal(t, 0.5, an.Read())
}
