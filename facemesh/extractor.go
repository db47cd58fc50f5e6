package facemesh

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/golang/geo/r2"
)

// cropAndResize extracts the box region from the frame and resizes it to the
// mesh input size. Regions outside the frame are zero-padded so that
// meshToImage stays exact for boxes extending past the frame edge.
func cropAndResize(img image.Image, box r2.Rect, meshWidth, meshHeight int) *image.NRGBA {
	w := int(math.Round(box.Size().X))
	h := int(math.Round(box.Size().Y))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	x0 := int(math.Round(box.X.Lo))
	y0 := int(math.Round(box.Y.Lo))
	canvas := imaging.New(w, h, color.NRGBA{})
	canvas = imaging.Paste(canvas, img, image.Pt(-x0, -y0))
	return imaging.Resize(canvas, meshWidth, meshHeight, imaging.Linear)
}

// meshToImage maps model-space coordinates back into frame coordinates,
// given the tracked box the crop was taken from.
func meshToImage(points []r2.Point, box r2.Rect, meshWidth, meshHeight int) []r2.Point {
	sx := box.Size().X / float64(meshWidth)
	sy := box.Size().Y / float64(meshHeight)
	out := make([]r2.Point, len(points))
	for i, p := range points {
		out[i] = r2.Point{X: p.X*sx + box.X.Lo, Y: p.Y*sy + box.Y.Lo}
	}
	return out
}
