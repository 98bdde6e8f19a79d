package conflict

import (
	"time"

	"github.com/bytearena/rmf-traffic-core/geometry"
	"github.com/bytearena/rmf-traffic-core/trajectory"
)

// detectInvasion walks two trajectories segment pair by segment pair.
// aIt/bIt are the initial cursors (each addressing the
// end waypoint of the segment to test first); aEnd/bEnd are the
// trajectories' End() cursors. If out is nil, it returns as soon as one
// contact is found; otherwise it fills out and returns the earliest time.
func detectInvasion(
	profileA geometry.Profile, trajA *trajectory.Trajectory, aIt trajectory.Cursor, aEnd trajectory.Cursor,
	profileB geometry.Profile, trajB *trajectory.Trajectory, bIt trajectory.Cursor, bEnd trajectory.Cursor,
	hint InterpolationHint,
	out *Conflicts,
) (time.Time, bool) {
	testComplement := profileA.Asymmetric() || profileB.Asymmetric()

	for aIt < aEnd && bIt < bEnd {
		splineA := trajA.Spline(aIt)
		splineB := trajB.Spline(bIt)

		start := latest(splineA.StartTime(), splineB.StartTime())
		finish := earliest(splineA.FinishTime(), splineB.FinishTime())

		boundA := getBoundingProfile(splineA, profileA)
		boundB := getBoundingProfile(splineB, profileB)

		if geometry.BoxesOverlap(boundA.footprint, boundB.vicinity) {
			if t, ok := tryCollide(*profileA.Footprint(), splineA, *profileB.Vicinity(), splineB, start, finish, hint); ok {
				if out == nil {
					return t, true
				}
				*out = append(*out, Conflict{CursorA: aIt, CursorB: bIt, Time: t})
			}
		}

		if testComplement && geometry.BoxesOverlap(boundA.vicinity, boundB.footprint) {
			if t, ok := tryCollide(*profileA.Vicinity(), splineA, *profileB.Footprint(), splineB, start, finish, hint); ok {
				if out == nil {
					return t, true
				}
				*out = append(*out, Conflict{CursorA: aIt, CursorB: bIt, Time: t})
			}
		}

		switch {
		case splineA.FinishTime().Before(splineB.FinishTime()):
			aIt++
		case splineB.FinishTime().Before(splineA.FinishTime()):
			bIt++
		default:
			aIt++
			bIt++
		}
	}

	if out == nil {
		return time.Time{}, false
	}
	return out.EarliestTime()
}

func tryCollide(shapeA geometry.FinalShape, splineA trajectory.Spline, shapeB geometry.FinalShape, splineB trajectory.Spline, start, finish time.Time, hint InterpolationHint) (time.Time, bool) {
	if hint.piecewiseSweepCircles {
		if radiusA, radiusB, ok := asCirclePair(shapeA, shapeB); ok {
			tau, hit := piecewiseSweepCircles(radiusA, splineA, radiusB, splineB, start, finish)
			if !hit {
				return time.Time{}, false
			}
			return computeTime(tau, start, finish), true
		}
	}

	motionA := motion{spline: splineA, characteristicLength: shapeA.CharacteristicLength()}
	motionB := motion{spline: splineB, characteristicLength: shapeB.CharacteristicLength()}

	tau, ok := continuousCollide(shapeA, motionA, shapeB, motionB, start, finish)
	if !ok {
		return time.Time{}, false
	}
	return computeTime(tau, start, finish), true
}

// computeTime maps a solver's parametric τ ∈ [0,1] back to absolute
// time.
func computeTime(tau float64, start, finish time.Time) time.Time {
	window := finish.Sub(start)
	return start.Add(time.Duration(tau * float64(window)))
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
