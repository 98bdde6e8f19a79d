package trajectory

import (
	"time"

	"github.com/bytearena/rmf-traffic-core/internal/geomath"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func pose(x, y, theta float64) geomath.Vec3 {
	return geomath.Pose(x, y, theta)
}

func secondsF(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
