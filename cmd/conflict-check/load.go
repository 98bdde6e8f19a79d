package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/bytearena/rmf-traffic-core/internal/geomath"
	"github.com/bytearena/rmf-traffic-core/trajectory"
)

// waypointRecord is the on-disk JSON shape of one trajectory waypoint:
// a time offset in seconds from the trajectory's epoch, plus position
// and velocity as (x, y, theta) triples.
type waypointRecord struct {
	OffsetSeconds float64    `json:"t"`
	Position      [3]float64 `json:"position"`
	Velocity      [3]float64 `json:"velocity"`
}

func loadTrajectory(path string) (*trajectory.Trajectory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []waypointRecord
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, err
	}

	epoch := time.Unix(0, 0).UTC()
	waypoints := make([]trajectory.Waypoint, 0, len(records))
	for _, r := range records {
		t := epoch.Add(time.Duration(r.OffsetSeconds * float64(time.Second)))
		position := geomath.Pose(r.Position[0], r.Position[1], r.Position[2])
		velocity := geomath.Pose(r.Velocity[0], r.Velocity[1], r.Velocity[2])
		waypoints = append(waypoints, trajectory.NewWaypoint(t, position, velocity))
	}

	return trajectory.New(waypoints...), nil
}
