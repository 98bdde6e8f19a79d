package conflict

import (
	"time"

	"github.com/bytearena/rmf-traffic-core/geometry"
	"github.com/bytearena/rmf-traffic-core/trajectory"
)

// InterpolationHint is accepted by DetectBetween for forward
// compatibility with interpolation schemes beyond cubic splines; the
// core otherwise ignores it, except for the piecewise-sweep capability
// it can carry.
type InterpolationHint struct {
	piecewiseSweepCircles bool
}

// WithPiecewiseSweepCircles opts into the piecewise-sweep fast path
// wherever both participants in a segment pair are circles. Default is
// off.
func WithPiecewiseSweepCircles(enabled bool) InterpolationHint {
	return InterpolationHint{piecewiseSweepCircles: enabled}
}

// DetectBetween validates both trajectories, normalizes their profiles,
// and reports whether and when the earliest conflict between them
// occurs within their overlapping time window.
func DetectBetween(profileA geometry.Profile, trajA *trajectory.Trajectory, profileB geometry.Profile, trajB *trajectory.Trajectory, hint InterpolationHint) (time.Time, bool, error) {
	return detectBetween(profileA, trajA, profileB, trajB, hint, nil)
}

// DetectBetweenConflicts is DetectBetween's optional-output-argument
// overload: every conflict discovered is appended, in discovery order,
// to a freshly allocated Conflicts buffer.
func DetectBetweenConflicts(profileA geometry.Profile, trajA *trajectory.Trajectory, profileB geometry.Profile, trajB *trajectory.Trajectory, hint InterpolationHint) (Conflicts, time.Time, bool, error) {
	var out Conflicts
	t, ok, err := detectBetween(profileA, trajA, profileB, trajB, hint, &out)
	return out, t, ok, err
}

func detectBetween(
	profileA geometry.Profile, trajA *trajectory.Trajectory,
	profileB geometry.Profile, trajB *trajectory.Trajectory,
	hint InterpolationHint,
	out *Conflicts,
) (time.Time, bool, error) {
	if trajA.Size() < 2 {
		return time.Time{}, false, newSegmentCountError("DetectBetween", trajA.Size())
	}
	if trajB.Size() < 2 {
		return time.Time{}, false, newSegmentCountError("DetectBetween", trajB.Size())
	}

	profileA = profileA.Normalize()
	profileB = profileB.Normalize()
	if profileA.Inert() || profileB.Inert() {
		return time.Time{}, false, nil
	}

	start := latest(trajA.StartTime(), trajB.StartTime())
	finish := earliest(trajA.FinishTime(), trajB.FinishTime())
	if !start.Before(finish) {
		return time.Time{}, false, nil
	}

	aIt := trajA.Find(start)
	bIt := trajB.Find(start)
	if aIt >= trajA.End() || bIt >= trajB.End() {
		return time.Time{}, false, nil
	}

	if closeStart(profileA, trajA, aIt, profileB, trajB, bIt, start) {
		t, ok := detectApproach(profileA, trajA, aIt, profileB, trajB, bIt, hint, out)
		return t, ok, nil
	}

	t, ok := detectInvasion(profileA, trajA, aIt, trajA.End(), profileB, trajB, bIt, trajB.End(), hint, out)
	return t, ok, nil
}

// closeStart reports whether either cross pair, (footprint_a, vicinity_b)
// or (vicinity_a, footprint_b), is already in contact at the window's
// start -- the condition that routes detection through the approach
// detector instead of straight into invasion detection.
func closeStart(
	profileA geometry.Profile, trajA *trajectory.Trajectory, aIt trajectory.Cursor,
	profileB geometry.Profile, trajB *trajectory.Trajectory, bIt trajectory.Cursor,
	at time.Time,
) bool {
	return closePairOverlap(profileA, trajA.Spline(aIt), profileB, trajB.Spline(bIt), at)
}
