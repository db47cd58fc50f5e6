package mlface

import (
	"context"
	"image"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"go.viam.com/facetrack/facemesh"
	"go.viam.com/facetrack/mlmodel"
)

// BuildRegressor wraps an inference backend in a facemesh.Regressor. The
// pipeline hands the regressor a crop already resized to the mesh input
// size; a defensive resize covers configs that disagree with the model
// metadata. Coordinates come back in model input space untouched, since the
// pipeline owns the mapping to frame coordinates.
func BuildRegressor(mlm mlmodel.Service) (facemesh.Regressor, error) {
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
	landmarksName := outputName(md, "landmark", "landmarks")
	flagName := outputName(md, "flag", "flag")

	return func(ctx context.Context, crop image.Image) (facemesh.Landmarks, float64, error) {
		if crop.Bounds().Dx() != inWidth || crop.Bounds().Dy() != inHeight {
			crop = resize.Resize(uint(inWidth), uint(inHeight), crop, resize.Bilinear)
		}
		inMap := make(map[string]interface{})
		switch inType {
		case "uint8":
			inMap["image"] = imageToUInt8Buffer(crop)
		case "float32":
			inMap["image"] = imageToFloatBuffer(crop)
		default:
			return nil, 0, errors.Errorf("invalid model input type %q, try uint8 or float32", inType)
		}
		outMap, err := mlm.Infer(ctx, inMap)
		if err != nil {
			return nil, 0, err
		}

		coords := unpackTensor(outMap[landmarksName])
		if len(coords) == 0 {
			return nil, 0, errors.Errorf("model returned no %q tensor", landmarksName)
		}
		var flag float64
		if flags := unpackTensor(outMap[flagName]); len(flags) > 0 {
			flag = flags[0]
		}
		return facemesh.Landmarks(coords), flag, nil
	}, nil
}
