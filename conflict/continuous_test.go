package conflict

import (
	"testing"

	"github.com/bytearena/rmf-traffic-core/geometry"
	"github.com/bytearena/rmf-traffic-core/internal/geomath"
)

func TestContinuousCollideDetectsHeadOnContact(t *testing.T) {
	shape := geometry.Finalize(geometry.Circle{Radius: 0.5})

	trajA := straightLine(0, 10, pose(0, 0, 0), pose(1, 0, 0), pose(10, 0, 0), pose(1, 0, 0))
	trajB := straightLine(0, 10, pose(10, 0, 0), pose(-1, 0, 0), pose(0, 0, 0), pose(-1, 0, 0))

	motionA := motion{spline: trajA.Spline(trajA.Begin()), characteristicLength: shape.CharacteristicLength()}
	motionB := motion{spline: trajB.Spline(trajB.Begin()), characteristicLength: shape.CharacteristicLength()}

	tau, ok := continuousCollide(shape, motionA, shape, motionB, trajA.StartTime(), trajA.FinishTime())
	if !ok {
		t.Fatal("expected contact to be found")
	}
	if tau <= 0 || tau >= 1 {
		t.Fatalf("expected contact strictly within the window, got tau=%v", tau)
	}
}

func TestContinuousCollideReportsNoContactWhenDiverging(t *testing.T) {
	shape := geometry.Finalize(geometry.Circle{Radius: 0.5})

	trajA := straightLine(0, 10, pose(0, 0, 0), pose(-1, 0, 0), pose(-10, 0, 0), pose(-1, 0, 0))
	trajB := straightLine(0, 10, pose(1, 0, 0), pose(1, 0, 0), pose(11, 0, 0), pose(1, 0, 0))

	motionA := motion{spline: trajA.Spline(trajA.Begin()), characteristicLength: shape.CharacteristicLength()}
	motionB := motion{spline: trajB.Spline(trajB.Begin()), characteristicLength: shape.CharacteristicLength()}

	_, ok := continuousCollide(shape, motionA, shape, motionB, trajA.StartTime(), trajA.FinishTime())
	if ok {
		t.Fatal("expected no contact between diverging circles")
	}
}

func TestContinuousCollideStaticDetectsSweepIntoStationaryShape(t *testing.T) {
	movingShape := geometry.Finalize(geometry.Circle{Radius: 0.3})
	staticShape := geometry.Finalize(geometry.Box(2, 2))

	traj := straightLine(0, 10, pose(0, 0, 0), pose(1, 0, 0), pose(10, 0, 0), pose(1, 0, 0))
	m := motion{spline: traj.Spline(traj.Begin()), characteristicLength: movingShape.CharacteristicLength()}
	staticPose := geometry.Placement{Position: geomath.Vec2{5, 0}}

	tau, ok := continuousCollideStatic(movingShape, m, staticShape, staticPose, traj.StartTime(), traj.FinishTime())
	if !ok {
		t.Fatal("expected the moving circle to sweep into the stationary box")
	}
	if tau <= 0 || tau >= 1 {
		t.Fatalf("expected contact strictly within the window, got tau=%v", tau)
	}
}

func TestContinuousCollideStaticReportsNoContactWhenOutOfReach(t *testing.T) {
	movingShape := geometry.Finalize(geometry.Circle{Radius: 0.3})
	staticShape := geometry.Finalize(geometry.Box(2, 2))

	traj := straightLine(0, 10, pose(0, 100, 0), pose(1, 0, 0), pose(10, 100, 0), pose(1, 0, 0))
	m := motion{spline: traj.Spline(traj.Begin()), characteristicLength: movingShape.CharacteristicLength()}
	staticPose := geometry.Placement{Position: geomath.Vec2{5, 0}}

	_, ok := continuousCollideStatic(movingShape, m, staticShape, staticPose, traj.StartTime(), traj.FinishTime())
	if ok {
		t.Fatal("expected no contact when the moving circle never comes near the static box")
	}
}
