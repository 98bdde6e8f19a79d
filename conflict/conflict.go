package conflict

import (
	"time"

	"github.com/bytearena/rmf-traffic-core/trajectory"
)

// Conflict is the {iter_a, iter_b, time} record: the segment cursors of
// each trajectory within which the earliest collision lies, and the
// earliest collision time itself.
type Conflict struct {
	CursorA trajectory.Cursor
	CursorB trajectory.Cursor
	Time    time.Time
}

// Conflicts is an ordered output buffer accepted as an optional overload
// argument: conflicts are appended in the order the algorithm discovers
// them, monotonically non-decreasing in segment-pair start time.
type Conflicts []Conflict

// EarliestTime is the time of the first entry.
func (c Conflicts) EarliestTime() (time.Time, bool) {
	if len(c) == 0 {
		return time.Time{}, false
	}
	return c[0].Time, true
}
