package facemesh

import (
	"context"
	"image"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

const (
	// NumLandmarks is the number of key points the mesh model predicts per
	// face.
	NumLandmarks = 468

	// landmarkDims is the number of coordinates per key point (x, y, z).
	landmarkDims = 3
)

// Regressor runs the dense landmark model on a crop already resized to the
// mesh input size, returning the flattened 3-D coordinates in model input
// space plus a scalar confidence flag for the crop containing a face.
type Regressor func(ctx context.Context, crop image.Image) (Landmarks, float64, error)

// Landmarks is the flattened mesh model output: NumLandmarks (x, y, z)
// triples in model input space.
type Landmarks []float64

func (lm Landmarks) validate() error {
	if len(lm) != NumLandmarks*landmarkDims {
		return errors.Errorf("expected %d landmark coordinates, got %d", NumLandmarks*landmarkDims, len(lm))
	}
	return nil
}

// points2D returns the (x, y) of each landmark triple, dropping depth.
func (lm Landmarks) points2D() []r2.Point {
	points := make([]r2.Point, len(lm)/landmarkDims)
	for i := range points {
		points[i] = r2.Point{X: lm[i*landmarkDims], Y: lm[i*landmarkDims+1]}
	}
	return points
}
