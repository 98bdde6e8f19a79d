package trajectory

import (
	"testing"
	"time"
)

func threeWaypointTrajectory() *Trajectory {
	return New(
		NewWaypoint(epoch, pose(0, 0, 0), pose(1, 0, 0)),
		NewWaypoint(epoch.Add(secondsF(1)), pose(1, 0, 0), pose(1, 0, 0)),
		NewWaypoint(epoch.Add(secondsF(2)), pose(2, 0, 0), pose(1, 0, 0)),
	)
}

func TestTrajectoryBeginAddressesFirstSegment(t *testing.T) {
	tr := threeWaypointTrajectory()
	if tr.Begin() != 1 {
		t.Fatalf("expected Begin() == 1, got %v", tr.Begin())
	}
	// Must not panic: Begin() must address a valid segment.
	_ = tr.Spline(tr.Begin())
}

func TestTrajectoryEndIsSize(t *testing.T) {
	tr := threeWaypointTrajectory()
	if tr.End() != Cursor(tr.Size()) {
		t.Fatalf("expected End() == Size(), got %v vs %v", tr.End(), tr.Size())
	}
}

func TestTrajectoryFindClampsToBegin(t *testing.T) {
	tr := threeWaypointTrajectory()
	before := epoch.Add(-time.Hour)
	if got := tr.Find(before); got != tr.Begin() {
		t.Fatalf("expected Find before start to clamp to Begin(), got %v", got)
	}
}

func TestTrajectoryFindReturnsEndWhenPastFinish(t *testing.T) {
	tr := threeWaypointTrajectory()
	after := tr.FinishTime().Add(time.Hour)
	if got := tr.Find(after); got != tr.End() {
		t.Fatalf("expected Find past finish to return End(), got %v", got)
	}
}

func TestSliceProducesAtLeastTwoWaypoints(t *testing.T) {
	tr := threeWaypointTrajectory()
	at := epoch.Add(secondsF(0.5))
	sliced := Slice(tr, tr.Begin(), at)

	if sliced.Size() < 2 {
		t.Fatalf("expected sliced trajectory to have >= 2 waypoints, got %d", sliced.Size())
	}
	if !sliced.StartTime().Equal(at) {
		t.Fatalf("expected sliced trajectory to start at %v, got %v", at, sliced.StartTime())
	}
}
