package geometry

import (
	"testing"

	"github.com/bytearena/rmf-traffic-core/internal/geomath"
)

func TestOverlapCirclesIntersecting(t *testing.T) {
	a := Finalize(Circle{Radius: 1})
	b := Finalize(Circle{Radius: 1})

	poseA := Placement{Position: geomath.Vec2{0, 0}}
	poseB := Placement{Position: geomath.Vec2{1, 0}}

	if !Overlap(a, poseA, b, poseB) {
		t.Fatal("expected overlapping circles to overlap")
	}
}

func TestOverlapCirclesFarApart(t *testing.T) {
	a := Finalize(Circle{Radius: 1})
	b := Finalize(Circle{Radius: 1})

	poseA := Placement{Position: geomath.Vec2{0, 0}}
	poseB := Placement{Position: geomath.Vec2{10, 0}}

	if Overlap(a, poseA, b, poseB) {
		t.Fatal("expected far-apart circles not to overlap")
	}
}

func TestOverlapPolygonsIntersecting(t *testing.T) {
	a := Finalize(Box(2, 2))
	b := Finalize(Box(2, 2))

	poseA := Placement{Position: geomath.Vec2{0, 0}}
	poseB := Placement{Position: geomath.Vec2{1, 0}}

	if !Overlap(a, poseA, b, poseB) {
		t.Fatal("expected overlapping boxes to overlap")
	}
}

func TestOverlapPolygonsDisjoint(t *testing.T) {
	a := Finalize(Box(1, 1))
	b := Finalize(Box(1, 1))

	poseA := Placement{Position: geomath.Vec2{0, 0}}
	poseB := Placement{Position: geomath.Vec2{5, 0}}

	if Overlap(a, poseA, b, poseB) {
		t.Fatal("expected disjoint boxes not to overlap")
	}
}

func TestDistanceIsZeroWhenOverlapping(t *testing.T) {
	a := Finalize(Circle{Radius: 1})
	b := Finalize(Circle{Radius: 1})

	poseA := Placement{Position: geomath.Vec2{0, 0}}
	poseB := Placement{Position: geomath.Vec2{0.5, 0}}

	if d := Distance(a, poseA, b, poseB); d > 1e-6 {
		t.Fatalf("expected near-zero distance, got %v", d)
	}
}
