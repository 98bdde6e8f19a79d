package trajectory

import (
	"sort"
	"time"
)

// Cursor addresses a waypoint the way a bidirectional iterator would:
// it always points at the *end* waypoint of the
// segment it identifies, so valid segment cursors range over
// [Trajectory.Begin(), Trajectory.End()). Cursor Trajectory.Size() is
// Trajectory.End(), a one-past-the-end sentinel with no associated
// segment.
type Cursor int

// Trajectory is an ordered sequence of at least two waypoints,
// interpolated between consecutive waypoints by cubic Hermite splines.
// It owns its waypoints; Splines built from a Cursor are views and do
// not outlive their owning Trajectory.
type Trajectory struct {
	waypoints []Waypoint
}

// New builds a Trajectory from an ordered sequence of waypoints. Callers
// are responsible for supplying waypoints in non-decreasing time order;
// internal constructors trust the caller rather than validating every
// call.
func New(waypoints ...Waypoint) *Trajectory {
	return &Trajectory{waypoints: waypoints}
}

// Size is the waypoint count.
func (t *Trajectory) Size() int { return len(t.waypoints) }

// StartTime is the absolute time of the first waypoint.
func (t *Trajectory) StartTime() time.Time { return t.waypoints[0].Time }

// FinishTime is the absolute time of the last waypoint.
func (t *Trajectory) FinishTime() time.Time { return t.waypoints[len(t.waypoints)-1].Time }

// Begin is the cursor addressing the trajectory's first segment, i.e.
// the end waypoint of the segment between waypoints 0 and 1.
func (t *Trajectory) Begin() Cursor { return 1 }

// End is the one-past-the-end cursor.
func (t *Trajectory) End() Cursor { return Cursor(len(t.waypoints)) }

// At returns the waypoint a cursor addresses.
func (t *Trajectory) At(c Cursor) Waypoint { return t.waypoints[c] }

// Find returns the cursor of the first segment whose end waypoint has
// time >= when, or End() if none exists. when at or before the
// trajectory's start resolves to Begin().
func (t *Trajectory) Find(when time.Time) Cursor {
	idx := sort.Search(len(t.waypoints), func(i int) bool {
		return !t.waypoints[i].Time.Before(when)
	})
	if idx < 1 {
		idx = 1
	}
	return Cursor(idx)
}

// Spline lazily builds the spline view for the segment a cursor
// addresses. c must satisfy Begin() <= c < End().
func (t *Trajectory) Spline(c Cursor) Spline {
	return NewSpline(t.waypoints[c-1], t.waypoints[c])
}

// Segment returns the (start, finish) absolute time window of the
// segment a cursor addresses.
func (t *Trajectory) Segment(c Cursor) (start, finish time.Time) {
	return t.waypoints[c-1].Time, t.waypoints[c].Time
}

// Waypoints returns a copy of the underlying waypoint slice.
func (t *Trajectory) Waypoints() []Waypoint {
	out := make([]Waypoint, len(t.waypoints))
	copy(out, t.waypoints)
	return out
}
