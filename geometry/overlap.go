package geometry

import (
	"math"

	"github.com/akavel/polyclip-go"
	"github.com/bytearena/box2d"
	"github.com/bytearena/rmf-traffic-core/internal/geomath"
)

// overlapEpsilon is the tolerance below which two shapes are considered
// to be touching, used by the discrete (non-swept) overlap tests below.
const overlapEpsilon = 1e-9

// Placement is a shape's instantaneous pose: planar position plus heading,
// the (x, y, θ) a Spline evaluates to at a given time.
type Placement struct {
	Position geomath.Vec2
	Angle    float64
}

func (p Placement) transform() box2d.B2Transform {
	return box2d.B2Transform{
		P: geomath.ToB2Vec2(p.Position),
		Q: box2d.MakeB2RotFromAngle(p.Angle),
	}
}

// Overlap is the discrete collision test between two finalized shapes at
// fixed poses: used for the close-start check and the approach policy's
// persisting-overlap checks.
//
// Two convex polygons are tested by clipping their transformed contours
// against each other. Any pair involving a circle falls back to a GJK
// distance query, since polyclip only operates on polygons.
func Overlap(a FinalShape, poseA Placement, b FinalShape, poseB Placement) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}

	contourA := transformedContour(a.contour(), poseA)
	contourB := transformedContour(b.contour(), poseB)
	if contourA != nil && contourB != nil {
		return polygonsOverlap(contourA, contourB)
	}

	return distanceOverlap(a, poseA, b, poseB)
}

func transformedContour(c polyclip.Contour, pose Placement) polyclip.Contour {
	if c == nil {
		return nil
	}
	sin, cos := math.Sincos(pose.Angle)
	out := make(polyclip.Contour, len(c))
	for i, pt := range c {
		x := pt.X*cos - pt.Y*sin + pose.Position.X()
		y := pt.X*sin + pt.Y*cos + pose.Position.Y()
		out[i] = polyclip.Point{X: x, Y: y}
	}
	return out
}

func polygonsOverlap(a, b polyclip.Contour) bool {
	subject := polyclip.Polygon{a}
	clipping := polyclip.Polygon{b}
	result := subject.Construct(polyclip.INTERSECTION, clipping)
	return len(result) > 0 && len(result[0]) >= 3
}

func distanceOverlap(a FinalShape, poseA Placement, b FinalShape, poseB Placement) bool {
	return Distance(a, poseA, b, poseB) <= overlapEpsilon
}

// Distance returns the closest-features distance between two finalized
// shapes at fixed poses, via box2d's GJK distance query. It is the
// primitive the continuous collision adapter steps forward on during
// conservative advancement.
func Distance(a FinalShape, poseA Placement, b FinalShape, poseB Placement) float64 {
	if a.IsZero() || b.IsZero() {
		return math.Inf(1)
	}

	input := box2d.MakeB2DistanceInput()
	input.ProxyA = a.DistanceProxy()
	input.ProxyB = b.DistanceProxy()
	input.TransformA = poseA.transform()
	input.TransformB = poseB.transform()
	input.UseRadii = true

	cache := box2d.MakeB2SimplexCache()
	output := box2d.MakeB2DistanceOutput()
	box2d.B2Distance(&output, &cache, &input)

	return output.Distance
}
