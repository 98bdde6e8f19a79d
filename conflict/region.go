package conflict

import (
	"time"

	"github.com/bytearena/rmf-traffic-core/geometry"
	"github.com/bytearena/rmf-traffic-core/spacetime"
	"github.com/bytearena/rmf-traffic-core/trajectory"
)

// DetectConflictsRegion checks a single trajectory against a static
// spacetime region, using only the profile's vicinity shape.
func DetectConflictsRegion(profile geometry.Profile, traj *trajectory.Trajectory, region spacetime.Region) (bool, error) {
	return detectConflictsRegion(profile, traj, region, nil)
}

// DetectConflictsRegionBuffer is DetectConflictsRegion's optional-output-buffer
// overload: every hit is appended, in discovery order.
func DetectConflictsRegionBuffer(profile geometry.Profile, traj *trajectory.Trajectory, region spacetime.Region) (Conflicts, bool, error) {
	var out Conflicts
	ok, err := detectConflictsRegion(profile, traj, region, &out)
	return out, ok, err
}

func detectConflictsRegion(profile geometry.Profile, traj *trajectory.Trajectory, region spacetime.Region, out *Conflicts) (bool, error) {
	if traj.Size() < 2 {
		return false, newSegmentCountError("DetectConflictsRegion", traj.Size())
	}

	profile = profile.Normalize()
	vicinity := profile.Vicinity()
	if vicinity == nil {
		return false, newMissingShapeError(traj.StartTime())
	}

	// Step 1: effective window.
	start := traj.StartTime()
	finish := traj.FinishTime()
	if lower, has := region.LowerBound(); has && lower.After(start) {
		start = lower
	}
	if upper, has := region.UpperBound(); has && upper.Before(finish) {
		finish = upper
	}
	if !start.Before(finish) {
		return false, nil
	}

	// Step 2-3: first and end segment iterators.
	firstIt := traj.Begin()
	if start.After(traj.StartTime()) {
		firstIt = traj.Find(start)
	}

	endIt := traj.End()
	if finish.Before(traj.FinishTime()) {
		endIt = traj.Find(finish) + 1
		if endIt > traj.End() {
			endIt = traj.End()
		}
	}

	found := false

	// Step 4: segment walk.
	for it := firstIt; it < endIt; it++ {
		spline := traj.Spline(it)

		segStart := latest(spline.StartTime(), start)
		segFinish := earliest(spline.FinishTime(), finish)
		if !segStart.Before(segFinish) {
			continue
		}

		m := motion{spline: spline, characteristicLength: vicinity.CharacteristicLength()}

		for _, component := range region.Components() {
			tau, ok := continuousCollideStatic(*vicinity, m, component, region.Pose(), segStart, segFinish)
			if !ok {
				continue
			}

			found = true
			t := computeTime(tau, segStart, segFinish)
			if out == nil {
				return true, nil
			}
			*out = append(*out, Conflict{CursorA: it, CursorB: it, Time: t})
		}
	}

	return found, nil
}
