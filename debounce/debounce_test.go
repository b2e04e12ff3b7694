package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const threshold = 50 * time.Millisecond

func TestIgnoresShortNoise(t *testing.T) {
	t.Parallel()
	clk := &ManualClock{}
	d := New(threshold, clk)

	clk.Set(10 * time.Millisecond)
	d.Update(true)
	require.Equal(t, MaybePressed, d.State())

	clk.Set(20 * time.Millisecond)
	require.False(t, d.Update(false))
	require.Equal(t, Released, d.State())
}

func TestConfirmsStablePress(t *testing.T) {
	t.Parallel()
	clk := &ManualClock{}
	d := New(threshold, clk)

	clk.Set(100 * time.Millisecond)
	require.False(t, d.Update(true))

	clk.Set(149 * time.Millisecond)
	require.False(t, d.Update(true), "below threshold")

	clk.Set(160 * time.Millisecond)
	require.True(t, d.Update(true))
	require.Equal(t, Pressed, d.State())
}

func TestExactThresholdConfirms(t *testing.T) {
	t.Parallel()
	clk := &ManualClock{}
	d := New(threshold, clk)
	d.Update(true)
	clk.Advance(threshold)
	require.True(t, d.Update(true))
}

func TestReleaseBounceStaysPressed(t *testing.T) {
	t.Parallel()
	clk := &ManualClock{}
	d := New(threshold, clk)

	clk.Set(100 * time.Millisecond)
	d.Update(true)
	clk.Set(160 * time.Millisecond)
	require.True(t, d.Update(true))

	clk.Set(200 * time.Millisecond)
	require.True(t, d.Update(false))
	require.Equal(t, MaybeReleased, d.State())

	clk.Set(210 * time.Millisecond)
	require.True(t, d.Update(true))
	require.Equal(t, Pressed, d.State())

	clk.Set(270 * time.Millisecond)
	d.Update(false)
	require.NotEqual(t, Released, d.State())
	require.True(t, d.Pressed())

	clk.Set(320 * time.Millisecond)
	require.False(t, d.Update(false))
	require.Equal(t, Released, d.State())
}

func TestInvertedInput(t *testing.T) {
	t.Parallel()
	clk := &ManualClock{}
	d := New(threshold, clk)
	d.Invert = true

	require.False(t, d.Update(true))
	require.Equal(t, Released, d.State())

	d.Update(false)
	clk.Advance(threshold)
	require.True(t, d.Update(false))
}

func TestReset(t *testing.T) {
	t.Parallel()
	clk := &ManualClock{}
	d := New(threshold, clk)
	d.Update(true)
	clk.Advance(time.Second)
	d.Update(true)
	require.True(t, d.Pressed())

	d.Reset()
	require.Equal(t, Released, d.State())
	require.False(t, d.Pressed())
}

func TestStateString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "released", Released.String())
	require.Equal(t, "maybe-pressed", MaybePressed.String())
	require.Equal(t, "pressed", Pressed.String())
	require.Equal(t, "maybe-released", MaybeReleased.String())
	require.Equal(t, "state(9)", State(9).String())
}

func TestMonotonicClock(t *testing.T) {
	t.Parallel()
	c := NewMonotonicClock()
	a := c.Now()
	b := c.Now()
	require.GreaterOrEqual(t, b, a)
}
