package conflict

import (
	"time"

	"github.com/bytearena/rmf-traffic-core/geometry"
	"github.com/bytearena/rmf-traffic-core/internal/geomath"
	"github.com/bytearena/rmf-traffic-core/trajectory"
)

// detectApproach is invoked once the close-start check has determined
// that one participant's footprint already overlaps the other's
// vicinity. It walks segment
// pairs the same way the invasion detector does, but classifies each
// pair's relative motion with a distance differential instead of
// calling the continuous collision adapter directly -- the adapter
// alone cannot tell a window that starts already touching apart from
// one that is only now coming into contact. As soon as a segment pair's
// participants are no longer close at its end, the remainder is handed
// back to the invasion detector.
func detectApproach(
	profileA geometry.Profile, trajA *trajectory.Trajectory, aIt trajectory.Cursor,
	profileB geometry.Profile, trajB *trajectory.Trajectory, bIt trajectory.Cursor,
	hint InterpolationHint,
	out *Conflicts,
) (time.Time, bool) {
	emit := func(a, b trajectory.Cursor, t time.Time) (result time.Time, ok bool, done bool) {
		if out == nil {
			return t, true, true
		}
		*out = append(*out, Conflict{CursorA: a, CursorB: b, Time: t})
		return time.Time{}, false, false
	}

	for aIt < trajA.End() && bIt < trajB.End() {
		splineA := trajA.Spline(aIt)
		splineB := trajB.Spline(bIt)

		start := latest(splineA.StartTime(), splineB.StartTime())
		finish := earliest(splineA.FinishTime(), splineB.FinishTime())
		if !start.Before(finish) {
			break
		}

		diff := newDistanceDifferential(splineA, splineB, start, finish)

		// Step 1: already close and still closing is an immediate conflict.
		if diff.InitiallyApproaching() {
			if t, ok, done := emit(aIt, bIt, start); done {
				return t, ok
			}
		}

		// Step 2: walk re-approach events within this segment pair.
		for _, t := range diff.ApproachTimes() {
			if closePairOverlap(profileA, splineA, profileB, splineB, t) {
				if t2, ok, done := emit(aIt, bIt, t); done {
					return t2, ok
				}
				continue
			}
			return resumeFromApproach(profileA, trajA, aIt, profileB, trajB, bIt, t, hint, out)
		}

		// Step 3: check whether the pair is still close at segment end,
		// then advance the same way the invasion detector does.
		stillClose := closePairOverlap(profileA, splineA, profileB, splineB, finish)

		switch {
		case splineA.FinishTime().Before(splineB.FinishTime()):
			aIt++
		case splineB.FinishTime().Before(splineA.FinishTime()):
			bIt++
		default:
			aIt++
			bIt++
		}

		if !stillClose {
			return detectInvasion(profileA, trajA, aIt, trajA.End(), profileB, trajB, bIt, trajB.End(), hint, out)
		}
	}

	if out == nil {
		return time.Time{}, false
	}
	return out.EarliestTime()
}

// closePairOverlap reports whether either cross pair, (footprint_a,
// vicinity_b) or (vicinity_a, footprint_b), is in contact at absolute
// time t. This mirrors the pairs the invasion detector tests; the
// close-start and approach-phase checks use the same definition of
// "close", not a vicinity-vs-vicinity test.
func closePairOverlap(profileA geometry.Profile, splineA trajectory.Spline, profileB geometry.Profile, splineB trajectory.Spline, t time.Time) bool {
	poseA := placementAt(splineA, t)
	poseB := placementAt(splineB, t)

	if fpA, vcB := profileA.Footprint(), profileB.Vicinity(); fpA != nil && vcB != nil {
		if geometry.Overlap(*fpA, poseA, *vcB, poseB) {
			return true
		}
	}
	if vcA, fpB := profileA.Vicinity(), profileB.Footprint(); vcA != nil && fpB != nil {
		if geometry.Overlap(*vcA, poseA, *fpB, poseB) {
			return true
		}
	}
	return false
}

func placementAt(s trajectory.Spline, t time.Time) geometry.Placement {
	pose := s.Position(t)
	return geometry.Placement{Position: geomath.Planar(pose), Angle: geomath.Heading(pose)}
}

// resumeFromApproach slices both trajectories at the moment the
// close-proximity episode ends and hands the remainder to the invasion
// detector.
func resumeFromApproach(
	profileA geometry.Profile, trajA *trajectory.Trajectory, aIt trajectory.Cursor,
	profileB geometry.Profile, trajB *trajectory.Trajectory, bIt trajectory.Cursor,
	at time.Time,
	hint InterpolationHint,
	out *Conflicts,
) (time.Time, bool) {
	slicedA := trajectory.Slice(trajA, aIt, at)
	slicedB := trajectory.Slice(trajB, bIt, at)

	return detectInvasion(
		profileA, slicedA, slicedA.Begin(), slicedA.End(),
		profileB, slicedB, slicedB.Begin(), slicedB.End(),
		hint,
		out,
	)
}
