package conflict

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// InvalidTrajectoryError covers either a trajectory with fewer than 2
// waypoints, or a missing shape encountered during collision evaluation.
// Both are fatal at the public entry points. It carries a
// human-readable message rather than exposing structured fields to
// callers.
type InvalidTrajectoryError struct {
	msg string
}

func (e *InvalidTrajectoryError) Error() string { return e.msg }

func newSegmentCountError(site string, count int) error {
	return errors.WithStack(&InvalidTrajectoryError{
		msg: fmt.Sprintf(
			"%s: attempted to check a conflict with a trajectory that has [%d] "+
				"waypoints; trajectories must have at least 2 waypoints to check "+
				"them for conflicts", site, count),
	})
}

func newMissingShapeError(at time.Time) error {
	return errors.WithStack(&InvalidTrajectoryError{
		msg: fmt.Sprintf(
			"attempting to check a conflict with a trajectory that has no shape "+
				"specified for the profile of its waypoint at time [%s]", at),
	})
}
