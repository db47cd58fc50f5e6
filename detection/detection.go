// Package detection defines the face detector contract consumed by the
// tracking pipeline, along with filters that modify detector output.
package detection

import (
	"context"
	"fmt"
	"image"
)

// Detector returns the faces found in the given frame. Bounding boxes are in
// frame coordinates; any detector-internal normalization or scaling is the
// implementation's responsibility.
type Detector func(ctx context.Context, img image.Image) ([]Detection, error)

// Detection is a single face found by a detector.
type Detection interface {
	// BoundingBox is the tight box around the face in frame coordinates.
	BoundingBox() *image.Rectangle
	// Score is the detector's confidence in this detection.
	Score() float64
}

// NewDetection creates a Detection from a bounding box and score.
func NewDetection(boundingBox image.Rectangle, score float64) Detection {
	return &detection2D{boundingBox, score}
}

type detection2D struct {
	boundingBox image.Rectangle
	score       float64
}

func (d *detection2D) BoundingBox() *image.Rectangle {
	return &d.boundingBox
}

func (d *detection2D) Score() float64 {
	return d.score
}

func (d *detection2D) String() string {
	return fmt.Sprintf("(score: %.2f, box: %v)", d.score, d.boundingBox)
}
