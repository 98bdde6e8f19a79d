// Package spacetime implements the Spacetime region collaborator: a
// static-in-space area, possibly built from several convex pieces,
// constrained to a (possibly half-open) time window.
package spacetime

import (
	"time"

	"github.com/bytearena/rmf-traffic-core/geometry"
)

// Region is a static region in space with an optional lower and/or upper
// time bound: {pose, shape, lower_time_bound?, upper_time_bound?}. Its
// shape may be non-convex; it is represented as the union of Components,
// each of which must be convex, since the region detector's continuous
// collision step only ever tests one convex component at a time.
type Region struct {
	pose       geometry.Placement
	components []geometry.FinalShape
	lower      *time.Time
	upper      *time.Time
}

// NewRegion builds a Region from its pose and one or more convex
// components sharing that pose.
func NewRegion(pose geometry.Placement, components ...geometry.FinalShape) Region {
	return Region{pose: pose, components: components}
}

// WithLowerBound returns a copy of r with its lower time bound set,
// chainable the way agv.State's setters are.
func (r Region) WithLowerBound(t time.Time) Region {
	r.lower = &t
	return r
}

// WithUpperBound returns a copy of r with its upper time bound set.
func (r Region) WithUpperBound(t time.Time) Region {
	r.upper = &t
	return r
}

func (r Region) Pose() geometry.Placement          { return r.pose }
func (r Region) Components() []geometry.FinalShape { return r.components }

// LowerBound returns the lower time bound and whether one is set.
func (r Region) LowerBound() (time.Time, bool) {
	if r.lower == nil {
		return time.Time{}, false
	}
	return *r.lower, true
}

// UpperBound returns the upper time bound and whether one is set.
func (r Region) UpperBound() (time.Time, bool) {
	if r.upper == nil {
		return time.Time{}, false
	}
	return *r.upper, true
}
