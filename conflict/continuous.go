package conflict

import (
	"time"

	"github.com/bytearena/rmf-traffic-core/geometry"
	"github.com/bytearena/rmf-traffic-core/internal/geomath"
	"github.com/bytearena/rmf-traffic-core/trajectory"
)

// ccdMaxIterations bounds the conservative-advancement loop so a
// degenerate pair of motions (near-zero relative speed at every step)
// cannot hang the detector; a capped loop rather than an adaptive one is
// the deliberate choice, since the detector promises no suspension
// points.
const ccdMaxIterations = 64

// ccdContactTolerance is the closest-features distance below which the
// conservative advancement solver declares contact.
const ccdContactTolerance = 1e-6

// motion pairs a spline with a shape's characteristic length, letting the
// continuous collision adapter bound how fast any point on the shape can
// be moving relative to the window it was restricted to.
type motion struct {
	spline               trajectory.Spline
	characteristicLength float64
}

func (m motion) placementAt(t time.Time) geometry.Placement {
	pose := m.spline.Position(t)
	return geometry.Placement{
		Position: geomath.Planar(pose),
		Angle:    geomath.Heading(pose),
	}
}

// speedBoundAt conservatively bounds how fast any point of the shape can
// move near time t: translational speed plus the arc length swept by
// rotation at the shape's circumscribing radius.
func (m motion) speedBoundAt(t time.Time) float64 {
	v := m.spline.RealVelocity(t)
	planar := geomath.Planar(v).Len()
	angular := geomath.Heading(v)
	if angular < 0 {
		angular = -angular
	}
	return planar + angular*m.characteristicLength
}

// continuousCollide implements conservative advancement: at each step it
// bounds the closest-features distance between the two shapes at the
// current advancement time with a GJK distance query, and bounds how
// fast that distance could possibly close using both shapes' speed
// bounds, then advances by distance/maxClosingSpeed. It returns the
// earliest parametric time τ ∈ [0,1] of contact within the window, or
// false if the window is exhausted with no contact proven.
//
// The continuous-collision approach is pluggable; the rest of the core
// depends only on earliest-parametric-contact-or-none semantics. This
// one is built on box2d's GJK distance primitive.
func continuousCollide(shapeA geometry.FinalShape, motionA motion, shapeB geometry.FinalShape, motionB motion, start, finish time.Time) (tau float64, ok bool) {
	window := finish.Sub(start).Seconds()
	if window <= 0 {
		return 0, geometry.Overlap(shapeA, motionA.placementAt(start), shapeB, motionB.placementAt(start))
	}

	tau = 0
	for iter := 0; iter < ccdMaxIterations; iter++ {
		t := start.Add(time.Duration(tau * float64(window) * float64(time.Second)))

		poseA := motionA.placementAt(t)
		poseB := motionB.placementAt(t)

		distance := geometry.Distance(shapeA, poseA, shapeB, poseB)
		if distance <= ccdContactTolerance {
			return tau, true
		}

		closingSpeed := motionA.speedBoundAt(t) + motionB.speedBoundAt(t)
		if closingSpeed <= 0 {
			return 0, false
		}

		tau += distance / closingSpeed / window
		if tau >= 1 {
			// One last check exactly at the window's end, in case the
			// bound was conservative enough to step past an actual contact.
			poseA = motionA.placementAt(finish)
			poseB = motionB.placementAt(finish)
			if geometry.Overlap(shapeA, poseA, shapeB, poseB) {
				return 1, true
			}
			return 0, false
		}
	}

	return 0, false
}

// continuousCollideStatic is continuousCollide specialized to a static
// second shape: the region detector's counterpart, which moves the
// vicinity shape along a spline against each stationary convex
// component of a spacetime region in turn. The closing speed bound only
// needs the moving shape's own speed bound, since the static shape never
// contributes to closure.
func continuousCollideStatic(shapeA geometry.FinalShape, motionA motion, shapeB geometry.FinalShape, poseB geometry.Placement, start, finish time.Time) (tau float64, ok bool) {
	window := finish.Sub(start).Seconds()
	if window <= 0 {
		return 0, geometry.Overlap(shapeA, motionA.placementAt(start), shapeB, poseB)
	}

	tau = 0
	for iter := 0; iter < ccdMaxIterations; iter++ {
		t := start.Add(time.Duration(tau * float64(window) * float64(time.Second)))

		poseA := motionA.placementAt(t)

		distance := geometry.Distance(shapeA, poseA, shapeB, poseB)
		if distance <= ccdContactTolerance {
			return tau, true
		}

		closingSpeed := motionA.speedBoundAt(t)
		if closingSpeed <= 0 {
			return 0, false
		}

		tau += distance / closingSpeed / window
		if tau >= 1 {
			poseA = motionA.placementAt(finish)
			if geometry.Overlap(shapeA, poseA, shapeB, poseB) {
				return 1, true
			}
			return 0, false
		}
	}

	return 0, false
}
