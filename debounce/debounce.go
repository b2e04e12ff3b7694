// Package debounce filters contact bounce from a sampled push-button level.
//
// The filter is a four-state machine driven by polling; it never sleeps. A
// level change is accepted only after it has been held for the threshold.
package debounce

import (
	"fmt"
	"time"
)

type State uint8

const (
	Released State = iota
	MaybePressed
	Pressed
	MaybeReleased
)

func (s State) String() string {
	switch s {
	case Released:
		return "released"
	case MaybePressed:
		return "maybe-pressed"
	case Pressed:
		return "pressed"
	case MaybeReleased:
		return "maybe-released"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Clock reports the time elapsed since some fixed origin, typically boot.
type Clock interface {
	Now() time.Duration
}

// ManualClock is a Clock advanced by hand.
type ManualClock struct {
	t time.Duration
}

func (c *ManualClock) Now() time.Duration { return c.t }
func (c *ManualClock) Set(t time.Duration) { c.t = t }
func (c *ManualClock) Advance(d time.Duration) { c.t += d }

// MonotonicClock measures from its construction using the runtime's
// monotonic clock.
type MonotonicClock struct {
	start time.Time
}

func NewMonotonicClock() MonotonicClock {
	return MonotonicClock{start: time.Now()}
}

func (c MonotonicClock) Now() time.Duration { return time.Since(c.start) }

type Debouncer struct {
	// Invert treats a low level as pressed, for buttons wired with a pull-up.
	Invert bool

	threshold time.Duration
	clock     Clock
	state     State
	since     time.Duration
}

func New(threshold time.Duration, clock Clock) *Debouncer {
	return &Debouncer{threshold: threshold, clock: clock}
}

// Update feeds one raw sample and reports the debounced output.
func (d *Debouncer) Update(level bool) bool {
	active := level != d.Invert
	now := d.clock.Now()

	switch d.state {
	case Released:
		if active {
			d.state = MaybePressed
			d.since = now
		}
	case MaybePressed:
		if !active {
			d.state = Released
		} else if now-d.since >= d.threshold {
			d.state = Pressed
		}
	case Pressed:
		if !active {
			d.state = MaybeReleased
			d.since = now
		}
	case MaybeReleased:
		if active {
			d.state = Pressed
		} else if now-d.since >= d.threshold {
			d.state = Released
		}
	}
	return d.Pressed()
}

// Pressed reports the debounced output. A press in the middle of a release
// bounce still counts as pressed.
func (d *Debouncer) Pressed() bool {
	return d.state == Pressed || d.state == MaybeReleased
}

func (d *Debouncer) State() State {
	return d.state
}

// Reset returns the filter to Released.
func (d *Debouncer) Reset() {
	d.state = Released
	d.since = 0
}
