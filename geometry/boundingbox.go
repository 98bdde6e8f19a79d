package geometry

import "math"

// BoundingBox is an axis-aligned rectangle in the plane.
type BoundingBox struct {
	Min [2]float64
	Max [2]float64
}

// VoidBox returns the distinguished box that overlaps with nothing:
// min=+inf, max=-inf on every axis.
func VoidBox() BoundingBox {
	return BoundingBox{
		Min: [2]float64{math.Inf(1), math.Inf(1)},
		Max: [2]float64{math.Inf(-1), math.Inf(-1)},
	}
}

// Inflate grows a box by a non-negative characteristic length on every side.
func (b BoundingBox) Inflate(length float64) BoundingBox {
	return BoundingBox{
		Min: [2]float64{b.Min[0] - length, b.Min[1] - length},
		Max: [2]float64{b.Max[0] + length, b.Max[1] + length},
	}
}

// BoxesOverlap reports whether two bounding boxes intersect. It is the
// broad-phase prefilter ahead of the narrow-phase shape tests in Overlap
// and the continuous collision adapter.
func BoxesOverlap(a, b BoundingBox) bool {
	for i := 0; i < 2; i++ {
		if a.Max[i] < b.Min[i] {
			return false
		}
		if b.Max[i] < a.Min[i] {
			return false
		}
	}
	return true
}

// FromExtrema builds the Cartesian product of the x and y extrema, the
// bounding box of a single cubic segment.
func FromExtrema(xMin, xMax, yMin, yMax float64) BoundingBox {
	return BoundingBox{
		Min: [2]float64{xMin, yMin},
		Max: [2]float64{xMax, yMax},
	}
}
