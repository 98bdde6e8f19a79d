package geometry

import (
	"github.com/akavel/polyclip-go"
	"github.com/bytearena/box2d"
)

// FinalShape is the immutable finalized form of a Shape. It is the only
// form the conflict-detection core consumes: construction and mutation
// of the underlying Shape is someone else's job.
type FinalShape struct {
	shape Shape
}

// Finalize freezes a Shape into the form the core can collide against.
func Finalize(shape Shape) FinalShape {
	return FinalShape{shape: shape}
}

// CharacteristicLength is the conservative circumscribing radius used to
// inflate bounding boxes.
func (f FinalShape) CharacteristicLength() float64 {
	if f.shape == nil {
		return 0
	}
	return f.shape.characteristicLength()
}

// IsZero reports whether this FinalShape carries no geometry, as a
// zero-value FinalShape{} does.
func (f FinalShape) IsZero() bool {
	return f.shape == nil
}

// box2DShape returns the opaque continuous-collision geometry handle.
func (f FinalShape) box2DShape() box2d.B2ShapeInterface {
	return f.shape.box2DShape()
}

func (f FinalShape) contour() polyclip.Contour {
	return f.shape.contour()
}

// CircleRadius reports the shape's radius and true if it was finalized
// from a Circle, used by the piecewise-sweep fast path, which only
// applies to circle-circle pairs.
func (f FinalShape) CircleRadius() (float64, bool) {
	c, ok := f.shape.(Circle)
	if !ok {
		return 0, false
	}
	return c.Radius, true
}

// DistanceProxy returns a fresh box2d distance proxy over this shape,
// used by the conservative-advancement continuous collision adapter.
func (f FinalShape) DistanceProxy() box2d.B2DistanceProxy {
	proxy := box2d.MakeB2DistanceProxy()
	proxy.Set(f.box2DShape(), 0)
	return proxy
}
