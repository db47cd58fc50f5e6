// Package mlface adapts tensor-map inference backends into the capability
// function types the tracking pipeline consumes: a face detector and a
// dense landmark regressor.
package mlface

import (
	"context"
	"image"
	"strings"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"go.viam.com/facetrack/detection"
	"go.viam.com/facetrack/mlmodel"
	"go.viam.com/facetrack/utils"
)

// BuildDetector wraps an inference backend in a detection.Detector. The
// model metadata supplies the input shape and pixel type. Output "location"
// coordinates are expected normalized to [0, 1]; they are clamped and scaled
// back into frame coordinates, so downstream consumers never see
// detector-internal coordinate spaces.
func BuildDetector(mlm mlmodel.Service) (detection.Detector, error) {
	md, err := mlm.Metadata(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "could not find metadata")
	}
	if len(md.Inputs) == 0 {
		return nil, errors.New("model has no input tensors")
	}
	inType := md.Inputs[0].DataType
	inWidth, inHeight, err := inputDims(md.Inputs[0].Shape)
	if err != nil {
		return nil, err
	}
	boxOrder := boxOrderFromMetadata(md)
	locationName := outputName(md, "location", "location")
	scoreName := outputName(md, "score", "score")

	return func(ctx context.Context, img image.Image) ([]detection.Detection, error) {
		origW, origH := img.Bounds().Dx(), img.Bounds().Dy()
		resized := resize.Resize(uint(inWidth), uint(inHeight), img, resize.Bilinear)
		inMap := make(map[string]interface{})
		switch inType {
		case "uint8":
			inMap["image"] = imageToUInt8Buffer(resized)
		case "float32":
			inMap["image"] = imageToFloatBuffer(resized)
		default:
			return nil, errors.Errorf("invalid model input type %q, try uint8 or float32", inType)
		}
		outMap, err := mlm.Infer(ctx, inMap)
		if err != nil {
			return nil, err
		}

		locations := unpackTensor(outMap[locationName])
		scores := unpackTensor(outMap[scoreName])

		detections := make([]detection.Detection, 0, len(scores))
		for i := 0; i < len(scores); i++ {
			if 4*i+3 >= len(locations) {
				break
			}
			xmin := utils.Clamp(locations[4*i+int(boxOrder[0])], 0, 1) * float64(origW)
			xmax := utils.Clamp(locations[4*i+int(boxOrder[1])], 0, 1) * float64(origW)
			ymin := utils.Clamp(locations[4*i+int(boxOrder[2])], 0, 1) * float64(origH)
			ymax := utils.Clamp(locations[4*i+int(boxOrder[3])], 0, 1) * float64(origH)
			rect := image.Rect(int(xmin), int(ymin), int(xmax), int(ymax))
			detections = append(detections, detection.NewDetection(rect, scores[i]))
		}
		return detections, nil
	}, nil
}

// inputDims pulls height and width out of the input tensor shape, handling
// both NHWC and NCHW layouts.
func inputDims(shape []int) (width, height int, err error) {
	switch len(shape) {
	case 4:
		if shape[1] == 3 || shape[1] == 1 { // NCHW
			return shape[3], shape[2], nil
		}
		return shape[2], shape[1], nil
	case 3:
		return shape[1], shape[0], nil
	default:
		return 0, 0, errors.Errorf("cannot determine input dimensions from shape %v", shape)
	}
}

// boxOrderFromMetadata returns the index order of (xmin, xmax, ymin, ymax)
// within each location quadruple. Models that interleave differently declare
// it in the location tensor's extra field.
func boxOrderFromMetadata(md mlmodel.MLMetadata) []uint32 {
	for _, o := range md.Outputs {
		if !strings.Contains(o.Name, "location") {
			continue
		}
		if order, ok := o.Extra["boxOrder"].([]uint32); ok && len(order) >= 4 {
			return order
		}
	}
	return []uint32{1, 0, 3, 2}
}

// outputName returns the name of the first output tensor containing the
// given substring, or the fallback when metadata has no match.
func outputName(md mlmodel.MLMetadata, substr, fallback string) string {
	for _, o := range md.Outputs {
		if strings.Contains(o.Name, substr) {
			return o.Name
		}
	}
	return fallback
}
