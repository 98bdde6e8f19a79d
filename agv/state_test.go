package agv

import (
	"testing"
	"time"
)

func TestDefaultStateIsZeroValued(t *testing.T) {
	s := DefaultState()
	if s.Waypoint() != 0 || s.ChargingWaypoint() != 0 {
		t.Fatalf("expected zero-valued waypoints, got %+v", s)
	}
	if s.BatterySoC() != 0.0 || s.ThresholdSoC() != 0.0 {
		t.Fatalf("expected zero-valued state of charge, got %+v", s)
	}
}

func TestWithSettersReturnIndependentCopies(t *testing.T) {
	base := NewState(1, 2, time.Unix(0, 0), 0.8, 0.2)

	moved := base.WithWaypoint(5)
	if moved.Waypoint() != 5 {
		t.Fatalf("expected updated waypoint 5, got %v", moved.Waypoint())
	}
	if base.Waypoint() != 1 {
		t.Fatalf("expected original state to be unchanged, got waypoint %v", base.Waypoint())
	}

	charged := base.WithBatterySoC(0.95)
	if charged.BatterySoC() != 0.95 || base.BatterySoC() != 0.8 {
		t.Fatalf("expected WithBatterySoC to leave the receiver untouched")
	}
}

func TestWithFinishTimeAndThreshold(t *testing.T) {
	base := NewState(0, 0, time.Unix(0, 0), 0.5, 0.1)
	finish := time.Unix(1000, 0)

	updated := base.WithFinishTime(finish).WithThresholdSoC(0.25)
	if !updated.FinishTime().Equal(finish) {
		t.Fatalf("expected finish time %v, got %v", finish, updated.FinishTime())
	}
	if updated.ThresholdSoC() != 0.25 {
		t.Fatalf("expected threshold 0.25, got %v", updated.ThresholdSoC())
	}
}
