package trajectory

import "time"

// Slice produces a new trajectory whose first waypoint is synthesized at
// time t from the spline addressed by c, followed by the remaining
// original waypoints from c to the end. The synthesized waypoint
// restores the >= 2 waypoint contract the invasion detector requires of
// any trajectory handed to it.
func Slice(t *Trajectory, c Cursor, at time.Time) *Trajectory {
	spline := t.Spline(c)
	synthetic := NewWaypoint(at, spline.Position(at), spline.RealVelocity(at))

	remainder := t.waypoints[c:]
	out := make([]Waypoint, 0, len(remainder)+1)
	out = append(out, synthetic)
	out = append(out, remainder...)
	return New(out...)
}
