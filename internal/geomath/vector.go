// Package geomath holds the small vector algebra the core shares across
// packages: a waypoint pose/velocity is a 3-vector (x, y, θ), while the
// shapes and the continuous collision adapter only ever need the planar
// (x, y) part of it.
package geomath

import (
	"github.com/bytearena/box2d"
	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the (x, y, θ) pose/velocity representation used throughout
// this module: position and velocity on a waypoint are both 3-vectors.
type Vec3 = mgl64.Vec3

// Vec2 is the planar (x, y) part of a Vec3, used by the geometry package.
type Vec2 = mgl64.Vec2

// Pose builds a Vec3 from its three named components.
func Pose(x, y, theta float64) Vec3 {
	return Vec3{x, y, theta}
}

// Planar drops the heading component, giving the (x, y) position or
// velocity that shapes and the collision adapter operate on.
func Planar(v Vec3) Vec2 {
	return v.Vec2()
}

// Heading returns the θ component of a pose or angular-velocity vector.
func Heading(v Vec3) float64 {
	return v[2]
}

// ToB2Vec2 converts a planar vector into the box2d vector type used by
// the continuous-collision adapter.
func ToB2Vec2(v Vec2) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(v.X(), v.Y())
}
