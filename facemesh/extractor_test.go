package facemesh

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

func uniformImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

func TestCropAndResizeDimensions(t *testing.T) {
	img := uniformImage(640, 480, color.RGBA{R: 200, A: 255})
	crop := cropAndResize(img, box(100, 100, 300, 300), 192, 192)
	test.That(t, crop.Bounds().Dx(), test.ShouldEqual, 192)
	test.That(t, crop.Bounds().Dy(), test.ShouldEqual, 192)

	// A box fully inside a uniform image crops to the same color.
	r, _, _, _ := crop.At(96, 96).RGBA()
	test.That(t, uint8(r>>8), test.ShouldEqual, uint8(200))
}

func TestCropAndResizeOutOfBounds(t *testing.T) {
	img := uniformImage(100, 100, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	// Box hanging off the top-left corner: the padded half stays black.
	crop := cropAndResize(img, box(-50, -50, 50, 50), 100, 100)
	r, g, b, _ := crop.At(10, 10).RGBA()
	test.That(t, r, test.ShouldEqual, uint32(0))
	test.That(t, g, test.ShouldEqual, uint32(0))
	test.That(t, b, test.ShouldEqual, uint32(0))
	r, _, _, _ = crop.At(90, 90).RGBA()
	test.That(t, uint8(r>>8), test.ShouldEqual, uint8(255))
}

func TestCropAndResizeDegenerateBox(t *testing.T) {
	img := uniformImage(100, 100, color.RGBA{A: 255})
	crop := cropAndResize(img, box(50, 50, 50, 50), 64, 64)
	test.That(t, crop.Bounds().Dx(), test.ShouldEqual, 64)
	test.That(t, crop.Bounds().Dy(), test.ShouldEqual, 64)
}

func TestMeshToImage(t *testing.T) {
	b := box(30, 40, 130, 90) // 100 wide, 50 tall
	points := []r2.Point{
		{X: 0, Y: 0},
		{X: 192, Y: 192},
		{X: 96, Y: 48},
	}
	mapped := meshToImage(points, b, 192, 192)
	test.That(t, mapped[0].X, test.ShouldAlmostEqual, 30)
	test.That(t, mapped[0].Y, test.ShouldAlmostEqual, 40)
	test.That(t, mapped[1].X, test.ShouldAlmostEqual, 130)
	test.That(t, mapped[1].Y, test.ShouldAlmostEqual, 90)
	test.That(t, mapped[2].X, test.ShouldAlmostEqual, 80)
	test.That(t, mapped[2].Y, test.ShouldAlmostEqual, 52.5)
}

func TestMeshToImageRoundTrip(t *testing.T) {
	b := box(17.5, -3.25, 241.5, 178.75)
	sx := b.Size().X / 192
	sy := b.Size().Y / 192
	points := []r2.Point{{X: 12.75, Y: 101.5}, {X: 191, Y: 0.5}}
	mapped := meshToImage(points, b, 192, 192)
	for i, m := range mapped {
		// Invert the transform and recover the model-space coordinate.
		test.That(t, (m.X-b.X.Lo)/sx, test.ShouldAlmostEqual, points[i].X, 1e-9)
		test.That(t, (m.Y-b.Y.Lo)/sy, test.ShouldAlmostEqual, points[i].Y, 1e-9)
	}
}
