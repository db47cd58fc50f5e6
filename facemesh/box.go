package facemesh

import (
	"image"
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/floats"
)

// boxFromRectangle converts an integer detection rectangle into an r2 box.
func boxFromRectangle(rect image.Rectangle) r2.Rect {
	return r2.RectFromPoints(
		r2.Point{X: float64(rect.Min.X), Y: float64(rect.Min.Y)},
		r2.Point{X: float64(rect.Max.X), Y: float64(rect.Max.Y)},
	)
}

// enlargeBox grows a box about its center by the given factor. Detector
// boxes are tight around the face; the enlarged box makes sure the crop
// covers the full facial extent.
func enlargeBox(box r2.Rect, factor float64) r2.Rect {
	center := box.Center()
	half := r2.Point{X: box.Size().X * factor / 2, Y: box.Size().Y * factor / 2}
	return r2.RectFromPoints(center.Sub(half), center.Add(half))
}

func boxArea(box r2.Rect) float64 {
	if box.IsEmpty() {
		return 0
	}
	return box.Size().X * box.Size().Y
}

// iou returns the intersection-over-union of two boxes. A degenerate union
// (zero-area boxes) yields 0 rather than a division by zero.
func iou(a, b r2.Rect) float64 {
	var interArea float64
	if inter := a.Intersection(b); !inter.IsEmpty() {
		interArea = math.Max(0, inter.Size().X) * math.Max(0, inter.Size().Y)
	}
	union := boxArea(a) + boxArea(b) - interArea
	if union <= 0 {
		return 0
	}
	return interArea / union
}

// landmarksBoundingBox returns the axis-aligned bounding box over a set of
// points.
func landmarksBoundingBox(points []r2.Point) r2.Rect {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return r2.RectFromPoints(
		r2.Point{X: floats.Min(xs), Y: floats.Min(ys)},
		r2.Point{X: floats.Max(xs), Y: floats.Max(ys)},
	)
}
