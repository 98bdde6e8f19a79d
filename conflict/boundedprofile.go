// Package conflict implements the spatio-temporal conflict-detection
// core: the invasion detector, the approach detector, the
// trajectory-vs-region detector, and the continuous collision adapter
// and distance differential they share.
package conflict

import (
	"github.com/bytearena/rmf-traffic-core/geometry"
	"github.com/bytearena/rmf-traffic-core/trajectory"
)

// boundingProfile is the segment-local {footprint_box, vicinity_box}
// pair, derived from the spline's extrema and inflated by each shape's
// characteristic length.
type boundingProfile struct {
	footprint geometry.BoundingBox
	vicinity  geometry.BoundingBox
}

func getBoundingProfile(spline trajectory.Spline, profile geometry.Profile) boundingProfile {
	base := spline.BoundingBox()

	footprintBox := geometry.VoidBox()
	if fp := profile.Footprint(); fp != nil {
		footprintBox = base.Inflate(fp.CharacteristicLength())
	}

	vicinityBox := geometry.VoidBox()
	if vc := profile.Vicinity(); vc != nil {
		vicinityBox = base.Inflate(vc.CharacteristicLength())
	}

	return boundingProfile{footprint: footprintBox, vicinity: vicinityBox}
}
