package conflict

import (
	"time"

	"github.com/bytearena/rmf-traffic-core/internal/geomath"
	"github.com/bytearena/rmf-traffic-core/trajectory"
)

// distanceDifferentialSamples is the resolution at which closingRate is
// sampled to bracket sign changes before bisecting them to a tight root.
// Numerical degeneracy here is never surfaced to the caller -- it only
// ever widens or narrows an approach window by a fraction of this
// module's own tolerance.
const distanceDifferentialSamples = 64

// distanceDifferentialBisections bounds the refinement of a bracketed
// sign change in closingRate down to a tight approach time.
const distanceDifferentialBisections = 40

// distanceDifferential classifies the relative closure rate between two
// splines over their common time window.
type distanceDifferential struct {
	splineA, splineB trajectory.Spline
	start, finish    time.Time
}

func newDistanceDifferential(splineA, splineB trajectory.Spline, start, finish time.Time) distanceDifferential {
	return distanceDifferential{splineA: splineA, splineB: splineB, start: start, finish: finish}
}

func (d distanceDifferential) StartTime() time.Time  { return d.start }
func (d distanceDifferential) FinishTime() time.Time { return d.finish }

// closingRate is d(separation²)/dt, in real time, at the absolute time
// that window-relative parameter τ ∈ [0,1] maps to, evaluated exactly
// from the two splines' positions and real velocities. Negative means closing
// (approaching); positive means separating (receding).
func (d distanceDifferential) closingRate(tau float64) float64 {
	t := d.absoluteTime(tau)

	posA := geomath.Planar(d.splineA.Position(t))
	posB := geomath.Planar(d.splineB.Position(t))
	velA := geomath.Planar(d.splineA.RealVelocity(t))
	velB := geomath.Planar(d.splineB.RealVelocity(t))

	diff := posA.Sub(posB)
	relVel := velA.Sub(velB)

	return 2 * diff.Dot(relVel)
}

func (d distanceDifferential) absoluteTime(tau float64) time.Time {
	window := d.finish.Sub(d.start)
	return d.start.Add(time.Duration(tau * float64(window)))
}

// InitiallyApproaching reports whether, at window start, the participants
// are moving toward each other (closing speed > 0, i.e. closingRate < 0).
func (d distanceDifferential) InitiallyApproaching() bool {
	return d.closingRate(0) < 0
}

// ApproachTimes returns, in increasing order, the absolute times within
// the window at which closure transitions from receding back to
// approaching, i.e. the local maxima of separation. Every such
// transition is reported, whether or not a local minimum came before it.
func (d distanceDifferential) ApproachTimes() []time.Time {
	var times []time.Time

	prevTau := 0.0
	prevRate := d.closingRate(prevTau)

	for i := 1; i <= distanceDifferentialSamples; i++ {
		tau := float64(i) / float64(distanceDifferentialSamples)
		rate := d.closingRate(tau)

		// A transition from receding (rate > 0) to approaching (rate < 0)
		// is a re-approach event.
		if prevRate > 0 && rate < 0 {
			root := d.bisect(prevTau, tau)
			times = append(times, d.absoluteTime(root))
		}

		prevTau, prevRate = tau, rate
	}

	return times
}

// bisect narrows [lo, hi] -- known to bracket a receding-to-approaching
// sign change in closingRate -- to a tight root.
func (d distanceDifferential) bisect(lo, hi float64) float64 {
	loRate := d.closingRate(lo)
	for i := 0; i < distanceDifferentialBisections; i++ {
		mid := (lo + hi) / 2
		midRate := d.closingRate(mid)
		if (loRate > 0) == (midRate > 0) {
			lo, loRate = mid, midRate
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
