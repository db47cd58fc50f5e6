// Package mlmodel defines the interface to an ML model inference backend.
// Inputs and outputs are maps of named flattened tensors, so the same
// interface covers accelerated runtimes and in-process fakes alike.
package mlmodel

import "context"

// Service runs inference on named input tensors and describes itself through
// metadata. Implementations wrap the actual model runtime.
type Service interface {
	Infer(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error)
	Metadata(ctx context.Context) (MLMetadata, error)
}

// MLMetadata contains the information necessary to interpret a model's
// input and output tensors.
type MLMetadata struct {
	ModelName        string
	ModelType        string // e.g. face_detector, landmark_regressor
	ModelDescription string
	Inputs           []TensorInfo
	Outputs          []TensorInfo
}

// TensorInfo describes a single named tensor.
type TensorInfo struct {
	Name     string // e.g. location, score, landmarks, flag
	DataType string // e.g. uint8, float32
	Shape    []int
	Extra    map[string]interface{}
}
