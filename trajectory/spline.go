package trajectory

import (
	"math"
	"time"

	"github.com/bytearena/rmf-traffic-core/geometry"
	"github.com/bytearena/rmf-traffic-core/internal/geomath"
)

// coeffDeadband and discriminantDeadband are the behavior-defining
// tolerances of the extrema solver below. They must be preserved
// exactly: the extrema tests in this package assume them.
const (
	coeffDeadband        = 1e-12
	discriminantDeadband = 1e-4
)

// CubicCoeffs holds one dimension's c0 + c1·t + c2·t² + c3·t³ coefficients
// for a spline segment, t ∈ [0,1].
type CubicCoeffs struct {
	C0, C1, C2, C3 float64
}

// Eval returns the position along this dimension at parametric t.
func (c CubicCoeffs) Eval(t float64) float64 {
	return c.C0 + t*(c.C1+t*(c.C2+t*c.C3))
}

// Deriv returns the derivative with respect to parametric t:
// c1 + 2c2t + 3c3t².
func (c CubicCoeffs) Deriv(t float64) float64 {
	return c.C1 + t*(2*c.C2+t*3*c.C3)
}

// LocalExtrema computes the (min, max) of this cubic over t ∈ [0,1] in
// closed form: it checks both endpoints plus any interior critical point
// where the derivative vanishes.
func (c CubicCoeffs) LocalExtrema() (min, max float64) {
	candidates := make([]float64, 0, 4)
	candidates = append(candidates, c.Eval(0), c.Eval(1))

	if math.Abs(c.C3) < coeffDeadband {
		if math.Abs(c.C2) > coeffDeadband {
			t := -c.C1 / (2 * c.C2)
			if t >= 0 && t <= 1 {
				candidates = append(candidates, c.Eval(t))
			}
		}
	} else {
		D := 4*c.C2*c.C2 - 12*c.C3*c.C1
		switch {
		case math.Abs(D) < discriminantDeadband:
			t := -c.C2 / (3 * c.C3)
			if t >= 0 && t <= 1 {
				candidates = append(candidates, c.Eval(t))
			}
		case D < 0:
			// No real roots; endpoints are the only extrema.
		default:
			sqrtD := math.Sqrt(D)
			t1 := ((-2 * c.C2) + sqrtD) / (6 * c.C3)
			t2 := ((-2 * c.C2) - sqrtD) / (6 * c.C3)
			if t1 >= 0 && t1 <= 1 {
				candidates = append(candidates, c.Eval(t1))
			}
			if t2 >= 0 && t2 <= 1 {
				candidates = append(candidates, c.Eval(t2))
			}
		}
	}

	min, max = candidates[0], candidates[0]
	for _, v := range candidates[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Spline is the lightweight, on-demand view of one segment between two
// consecutive waypoints: it does not outlive the segment cursor that
// constructed it.
type Spline struct {
	start, finish Waypoint
	x, y, theta   CubicCoeffs
}

// NewSpline builds the cubic Hermite spline interpolating position and
// velocity between two consecutive waypoints, scaling tangents by the
// segment's duration since the spline's own parameter runs over t ∈ [0,1]
// rather than real seconds.
func NewSpline(start, finish Waypoint) Spline {
	dt := finish.Time.Sub(start.Time).Seconds()
	return Spline{
		start:  start,
		finish: finish,
		x:      hermite(start.Position.X(), start.Velocity.X(), finish.Position.X(), finish.Velocity.X(), dt),
		y:      hermite(start.Position.Y(), start.Velocity.Y(), finish.Position.Y(), finish.Velocity.Y(), dt),
		theta:  hermite(start.Position.Z(), start.Velocity.Z(), finish.Position.Z(), finish.Velocity.Z(), dt),
	}
}

// hermite converts the two-point Hermite form (p0, m0, p1, m1) with
// m0 = v0·dt, m1 = v1·dt into the c0..c3 polynomial basis.
func hermite(p0, v0, p1, v1, dt float64) CubicCoeffs {
	m0 := v0 * dt
	m1 := v1 * dt
	return CubicCoeffs{
		C0: p0,
		C1: m0,
		C2: -3*p0 - 2*m0 + 3*p1 - m1,
		C3: 2*p0 + m0 - 2*p1 + m1,
	}
}

// StartTime and FinishTime are the segment's absolute bounds.
func (s Spline) StartTime() time.Time  { return s.start.Time }
func (s Spline) FinishTime() time.Time { return s.finish.Time }

// Coefficients returns the raw per-dimension coefficient arrays.
func (s Spline) Coefficients() (x, y, theta CubicCoeffs) {
	return s.x, s.y, s.theta
}

func (s Spline) param(t time.Time) float64 {
	total := s.finish.Time.Sub(s.start.Time).Seconds()
	if total == 0 {
		return 0
	}
	return t.Sub(s.start.Time).Seconds() / total
}

// Position evaluates the spline's pose at absolute time t ∈ [start, finish].
func (s Spline) Position(t time.Time) geomath.Vec3 {
	tau := s.param(t)
	return geomath.Pose(s.x.Eval(tau), s.y.Eval(tau), s.theta.Eval(tau))
}

// Velocity evaluates the derivative with respect to parametric t --
// not the derivative with respect to real time.
func (s Spline) Velocity(t time.Time) geomath.Vec3 {
	tau := s.param(t)
	return geomath.Pose(s.x.Deriv(tau), s.y.Deriv(tau), s.theta.Deriv(tau))
}

// RealVelocity is the derivative with respect to real (absolute) time,
// velocity(t)/dt_segment by the chain rule. Spline.Velocity deliberately
// exposes the parametric derivative; the slicer needs a waypoint's
// actual physical velocity so that the *next* segment built from it
// scales its own tangents correctly, and the continuous collision
// adapter needs a real speed bound for conservative advancement, so both
// use this variant instead.
func (s Spline) RealVelocity(t time.Time) geomath.Vec3 {
	dt := s.finish.Time.Sub(s.start.Time).Seconds()
	if dt == 0 {
		return geomath.Pose(0, 0, 0)
	}
	v := s.Velocity(t)
	return geomath.Pose(v.X()/dt, v.Y()/dt, v.Z()/dt)
}

// BoundingBox is the Cartesian product of the x and y extrema over the
// whole segment.
func (s Spline) BoundingBox() geometry.BoundingBox {
	xMin, xMax := s.x.LocalExtrema()
	yMin, yMax := s.y.LocalExtrema()
	return geometry.FromExtrema(xMin, xMax, yMin, yMax)
}
