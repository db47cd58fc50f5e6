package mlface

// imageToUInt8Buffer and imageToFloatBuffer flatten an image into the
// row-major RGB layouts inference runtimes expect.

import "image"

func imageToUInt8Buffer(img image.Image) []uint8 {
	bounds := img.Bounds()
	buf := make([]uint8, 0, bounds.Dx()*bounds.Dy()*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			buf = append(buf, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
	return buf
}

// imageToFloatBuffer normalizes pixel values into [0, 1].
func imageToFloatBuffer(img image.Image) []float32 {
	bounds := img.Bounds()
	buf := make([]float32, 0, bounds.Dx()*bounds.Dy()*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			buf = append(buf,
				float32(r>>8)/255.0,
				float32(g>>8)/255.0,
				float32(b>>8)/255.0,
			)
		}
	}
	return buf
}

// unpackTensor forces a named output tensor into a []float64 regardless of
// the runtime's native element type.
func unpackTensor(t interface{}) []float64 {
	switch v := t.(type) {
	case []uint8:
		out := make([]float64, len(v))
		for i, e := range v {
			out[i] = float64(e)
		}
		return out
	case []float32:
		out := make([]float64, len(v))
		for i, e := range v {
			out[i] = float64(e)
		}
		return out
	case []float64:
		out := make([]float64, len(v))
		copy(out, v)
		return out
	default:
		return nil
	}
}
