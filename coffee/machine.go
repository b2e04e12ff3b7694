// Package coffee is the control state machine of a single-cup coffee maker.
package coffee

import "fmt"

type State uint8

const (
	Idle State = iota
	Heating
	Brewing
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Heating:
		return "heating"
	case Brewing:
		return "brewing"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

type Event uint8

const (
	StartPressed Event = iota
	TempReached
	BrewComplete
	OutOfWater
)

func (e Event) String() string {
	switch e {
	case StartPressed:
		return "start-pressed"
	case TempReached:
		return "temp-reached"
	case BrewComplete:
		return "brew-complete"
	case OutOfWater:
		return "out-of-water"
	default:
		return fmt.Sprintf("event(%d)", uint8(e))
	}
}

// MinWaterLevel is the lowest water level, in percent, a brew may start
// from. Starting at or below it fails into Error.
const MinWaterLevel = 10

type Machine struct {
	State      State
	WaterLevel int // percent, 0..100
	Temp       int // degrees Celsius
}

func New(waterLevel, temp int) *Machine {
	return &Machine{State: Idle, WaterLevel: waterLevel, Temp: temp}
}

// Update applies e and returns the resulting state. Events that have no
// transition from the current state are ignored.
func (m *Machine) Update(e Event) State {
	switch m.State {
	case Idle:
		if e == StartPressed {
			if m.WaterLevel > MinWaterLevel {
				m.State = Heating
			} else {
				m.State = Error
			}
		}
	case Heating:
		switch e {
		case TempReached:
			m.State = Brewing
		case OutOfWater:
			m.State = Error
		}
	case Brewing:
		if e == BrewComplete {
			m.State = Idle
		}
	case Error:
		// Sticky until Reset.
	}
	return m.State
}

// Reset clears an error and returns the machine to Idle.
func (m *Machine) Reset() {
	m.State = Idle
}

// Status renders a one-line summary for a display.
func (m *Machine) Status() string {
	var label string
	switch m.State {
	case Idle:
		label = "READY"
	case Heating:
		label = "HEATING"
	case Brewing:
		label = "BREWING"
	default:
		label = "!!ERROR!!"
	}
	temp := fmt.Sprintf("%dC", m.Temp)
	if m.State == Heating {
		temp = "rising"
	}
	return fmt.Sprintf("[%-9s] water %3d%% | temp %s", label, m.WaterLevel, temp)
}
