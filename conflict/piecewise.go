package conflict

import (
	"math"
	"time"

	"github.com/bytearena/rmf-traffic-core/geometry"
	"github.com/bytearena/rmf-traffic-core/internal/geomath"
	"github.com/bytearena/rmf-traffic-core/trajectory"
)

// piecewiseSweepSteps divides a segment pair's window into this many
// equal sub-intervals, each tested as a straight-line swept-circle
// collision.
const piecewiseSweepSteps = 3

// piecewiseSweepCircles is an opt-in fast path that only applies to
// circle-circle pairs: it splits the window into piecewiseSweepSteps
// equal sub-intervals and, in each, treats both participants' motion as
// a straight line between the sub-interval's endpoints and solves the
// swept-circle-vs-circle intersection in closed form, rather than running
// conservative advancement's iterative GJK stepping. It trades the
// curvature conservative advancement accounts for against fewer, cheaper
// steps.
func piecewiseSweepCircles(radiusA float64, splineA trajectory.Spline, radiusB float64, splineB trajectory.Spline, start, finish time.Time) (tau float64, ok bool) {
	window := finish.Sub(start)

	for step := 0; step < piecewiseSweepSteps; step++ {
		tau0 := float64(step) / float64(piecewiseSweepSteps)
		tau1 := float64(step+1) / float64(piecewiseSweepSteps)

		t0 := start.Add(time.Duration(tau0 * float64(window)))
		t1 := start.Add(time.Duration(tau1 * float64(window)))

		a0 := geomath.Planar(splineA.Position(t0))
		a1 := geomath.Planar(splineA.Position(t1))
		b0 := geomath.Planar(splineB.Position(t0))
		b1 := geomath.Planar(splineB.Position(t1))

		if interp, hit := sweptCircleIntersection(a0, a1.Sub(a0), b0, b1.Sub(b0), radiusA, radiusB); hit {
			return tau0 + interp*(tau1-tau0), true
		}
	}

	return 0, false
}

// sweptCircleIntersection ports swept_circle_intersection: it reframes
// two circles moving along straight-line steps as a ray (the relative
// motion of A) against a stationary disc at B's start position with the
// combined radius, and solves for the ray parameter at first penetration.
func sweptCircleIntersection(aStart, aStep geomath.Vec2, bStart, bStep geomath.Vec2, radiusA, radiusB float64) (interp float64, hit bool) {
	rayDir := aStep.Sub(bStep)
	return circleRayIntersection(rayDir, aStart, bStart, radiusA+radiusB)
}

// circleRayIntersection ports circle_ray_intersection: rayDir is not
// normalized, so the returned interp is already a [0,1] fraction of the
// step (rayDir's own length is the step's full displacement).
func circleRayIntersection(rayDir, rayOrigin, circleCenter geomath.Vec2, circleRadius float64) (interp float64, hit bool) {
	rayLength := rayDir.Len()
	if rayLength == 0 {
		// No relative motion this step: either always overlapping or never.
		if rayOrigin.Sub(circleCenter).Len() <= circleRadius {
			return 0, true
		}
		return 0, false
	}

	rayDirNormalized := rayDir.Mul(1 / rayLength)
	toCircle := circleCenter.Sub(rayOrigin)

	projectedLen := toCircle.Dot(rayDirNormalized)
	rayToCircleSqDist := toCircle.Dot(toCircle)

	footLengthSq := rayToCircleSqDist - projectedLen*projectedLen
	circleRadiusSq := circleRadius * circleRadius
	if footLengthSq > circleRadiusSq {
		return 0, false
	}

	rSq := circleRadiusSq - footLengthSq
	lenToIntersect := projectedLen - math.Sqrt(rSq)

	interp = lenToIntersect / rayLength
	if interp > 1.0 || interp < 0.0 {
		return 0, false
	}
	return interp, true
}

// asCirclePair reports the two profiles' footprint/vicinity radii as a
// circle-circle pair for the given cross-role, or false if either shape
// is absent or not a Circle.
func asCirclePair(shapeA, shapeB geometry.FinalShape) (radiusA, radiusB float64, ok bool) {
	radiusA, okA := shapeA.CircleRadius()
	radiusB, okB := shapeB.CircleRadius()
	return radiusA, radiusB, okA && okB
}
