// Package trajectory implements the Trajectory container and its cubic
// Hermite spline segments.
package trajectory

import (
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/bytearena/rmf-traffic-core/internal/geomath"
)

// Waypoint is a single (time, position, velocity) record. Position and
// velocity are both 3-vectors (x, y, θ).
type Waypoint struct {
	ID       uuid.UUID
	Time     time.Time
	Position geomath.Vec3
	Velocity geomath.Vec3
}

// NewWaypoint builds a Waypoint with a fresh identity, the way the
// teacher's state.MakeObstacle assigns a uuid.NewV4() identity to every
// passive geometry record it creates.
func NewWaypoint(t time.Time, position, velocity geomath.Vec3) Waypoint {
	return Waypoint{
		ID:       uuid.NewV4(),
		Time:     t,
		Position: position,
		Velocity: velocity,
	}
}
