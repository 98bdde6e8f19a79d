// Package agv implements the State peripheral collaborator: a passive
// value type holding a snapshot of a robot's plan progress and battery
// level.
package agv

import "time"

// State is a robot's planning snapshot: the waypoint it occupies or is
// travelling toward, its designated charging waypoint, the time it
// expects to finish its current task, and its battery state of charge
// against a low-battery threshold. It is a plain value type with
// chainable setters that each return an independent copy.
type State struct {
	waypoint         int
	chargingWaypoint int
	finishTime       time.Time
	batterySoC       float64
	thresholdSoC     float64
}

// NewState builds a State from explicit field values.
func NewState(waypoint, chargingWaypoint int, finishTime time.Time, batterySoC, thresholdSoC float64) State {
	return State{
		waypoint:         waypoint,
		chargingWaypoint: chargingWaypoint,
		finishTime:       finishTime,
		batterySoC:       batterySoC,
		thresholdSoC:     thresholdSoC,
	}
}

// DefaultState is the zero-value State: waypoint 0, charging waypoint 0,
// finish time now, and both state-of-charge fields at 0.0.
func DefaultState() State {
	return NewState(0, 0, time.Now(), 0.0, 0.0)
}

func (s State) Waypoint() int { return s.waypoint }

// WithWaypoint returns a copy of s with its waypoint updated.
func (s State) WithWaypoint(waypoint int) State {
	s.waypoint = waypoint
	return s
}

func (s State) ChargingWaypoint() int { return s.chargingWaypoint }

// WithChargingWaypoint returns a copy of s with its charging waypoint updated.
func (s State) WithChargingWaypoint(waypoint int) State {
	s.chargingWaypoint = waypoint
	return s
}

func (s State) FinishTime() time.Time { return s.finishTime }

// WithFinishTime returns a copy of s with its finish time updated.
func (s State) WithFinishTime(t time.Time) State {
	s.finishTime = t
	return s
}

func (s State) BatterySoC() float64 { return s.batterySoC }

// WithBatterySoC returns a copy of s with its battery state of charge updated.
func (s State) WithBatterySoC(soc float64) State {
	s.batterySoC = soc
	return s
}

func (s State) ThresholdSoC() float64 { return s.thresholdSoC }

// WithThresholdSoC returns a copy of s with its low-battery threshold updated.
func (s State) WithThresholdSoC(soc float64) State {
	s.thresholdSoC = soc
	return s
}
