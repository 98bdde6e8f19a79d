package geometry

import (
	"github.com/akavel/polyclip-go"
	"github.com/bytearena/box2d"
	"github.com/bytearena/rmf-traffic-core/internal/geomath"
)

// Shape is the abstract convex 2-D primitive. Implementations are box
// (as a 4-vertex polygon), circle and polygon, matching the
// footprint/vicinity geometries a robot can be given.
type Shape interface {
	// characteristicLength returns the circumscribing radius used to
	// conservatively inflate a segment's bounding box.
	characteristicLength() float64

	// box2DShape returns the collision geometry handle, finalized at the
	// origin; callers position it with a box2d.B2Transform.
	box2DShape() box2d.B2ShapeInterface

	// contour returns the shape's outline in its own local frame, used by
	// the polygon-clipping discrete overlap test. Circles return nil.
	contour() polyclip.Contour
}

// Circle is a convex circular footprint/vicinity centered on the origin
// of its owning waypoint frame.
type Circle struct {
	Radius float64
}

func (c Circle) characteristicLength() float64 { return c.Radius }

func (c Circle) box2DShape() box2d.B2ShapeInterface {
	shape := box2d.MakeB2CircleShape()
	shape.SetRadius(c.Radius)
	return &shape
}

func (c Circle) contour() polyclip.Contour { return nil }

// Polygon is a convex polygon footprint/vicinity, vertices given in local,
// counter-clockwise order.
type Polygon struct {
	Vertices []geomath.Vec2
}

func (p Polygon) characteristicLength() float64 {
	var maxLen float64
	for _, v := range p.Vertices {
		if d := v.Len(); d > maxLen {
			maxLen = d
		}
	}
	return maxLen
}

func (p Polygon) box2DShape() box2d.B2ShapeInterface {
	shape := box2d.MakeB2PolygonShape()
	vertices := make([]box2d.B2Vec2, len(p.Vertices))
	for i, v := range p.Vertices {
		vertices[i] = geomath.ToB2Vec2(v)
	}
	shape.Set(vertices, len(vertices))
	return &shape
}

func (p Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, len(p.Vertices))
	for i, v := range p.Vertices {
		c[i] = polyclip.Point{X: v.X(), Y: v.Y()}
	}
	return c
}

// Box is a convenience convex rectangle, width/height given in local frame,
// centered on the origin.
func Box(width, height float64) Polygon {
	hw, hh := width/2, height/2
	return Polygon{Vertices: []geomath.Vec2{
		{hw, hh}, {-hw, hh}, {-hw, -hh}, {hw, -hh},
	}}
}
