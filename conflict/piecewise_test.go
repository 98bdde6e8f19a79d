package conflict

import (
	"testing"

	"github.com/bytearena/rmf-traffic-core/geometry"
)

func TestPiecewiseSweepCirclesMatchesConservativeAdvancementOnHeadOn(t *testing.T) {
	profileA := circleProfile(0.5, 0.5)
	profileB := circleProfile(0.5, 0.5)

	trajA := straightLine(0, 10, pose(0, 0, 0), pose(1, 0, 0), pose(10, 0, 0), pose(1, 0, 0))
	trajB := straightLine(0, 10, pose(10, 0, 0), pose(-1, 0, 0), pose(0, 0, 0), pose(-1, 0, 0))

	conflictTime, ok, err := DetectBetween(profileA, trajA, profileB, trajB, WithPiecewiseSweepCircles(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected the piecewise-sweep fast path to find the head-on contact")
	}
	if d := conflictTime.Sub(at(4.5)).Seconds(); d < -0.5 || d > 0.5 {
		t.Fatalf("expected contact near t=4.5s, got %v", conflictTime.Sub(epoch).Seconds())
	}
}

func TestPiecewiseSweepCirclesIgnoredForNonCircleProfiles(t *testing.T) {
	box := geometry.Finalize(geometry.Box(1, 1))
	profileA := geometry.NewProfile(&box, &box)
	profileB := geometry.NewProfile(&box, &box)

	trajA := straightLine(0, 10, pose(0, 0, 0), pose(1, 0, 0), pose(10, 0, 0), pose(1, 0, 0))
	trajB := straightLine(0, 10, pose(10, 0, 0), pose(-1, 0, 0), pose(0, 0, 0), pose(-1, 0, 0))

	// Falls back to conservative advancement since neither shape is a
	// circle; this only asserts it still finds the conflict, not which
	// path was taken.
	_, ok, err := DetectBetween(profileA, trajA, profileB, trajB, WithPiecewiseSweepCircles(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected polygon pair collision to still be detected")
	}
}
