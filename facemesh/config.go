package facemesh

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"go.viam.com/facetrack/detection"
)

// Default pipeline parameters.
const (
	DefaultMeshWidth           = 192
	DefaultMeshHeight          = 192
	DefaultMaxContinuousChecks = 5
	DefaultMaxFaces            = 10
	DefaultBoxEnlargeFactor    = 1.5
	DefaultIOUThreshold        = 0.25
)

// Config holds the pipeline parameters. It is immutable for the lifetime of
// the pipeline instance.
type Config struct {
	// MeshWidth and MeshHeight are the landmark model's input dimensions.
	MeshWidth  int
	MeshHeight int

	// MaxContinuousChecks is how many frames the pipeline tracks without
	// rerunning the detector while the tracked set is not yet full.
	MaxContinuousChecks int

	// MaxFaces bounds the number of tracked slots.
	MaxFaces int

	// BoxEnlargeFactor grows detector and landmark boxes about their center
	// so crops cover the full facial extent. Using the same factor for both
	// keeps detector-origin and landmark-origin boxes comparable for the
	// IOU stickiness gate.
	BoxEnlargeFactor float64

	// IOUThreshold is the overlap above which a freshly detected box is
	// discarded in favour of the already tracked one.
	IOUThreshold float64

	// Postprocessor optionally filters raw detector output before
	// association, e.g. detection.NewScoreFilter.
	Postprocessor detection.Postprocessor

	// OnRelease, if set, is called exactly once for every tracked box that
	// is superseded or dropped.
	OnRelease func(r2.Rect)
}

// DefaultConfig returns the production-default pipeline parameters.
func DefaultConfig() Config {
	return Config{
		MeshWidth:           DefaultMeshWidth,
		MeshHeight:          DefaultMeshHeight,
		MaxContinuousChecks: DefaultMaxContinuousChecks,
		MaxFaces:            DefaultMaxFaces,
		BoxEnlargeFactor:    DefaultBoxEnlargeFactor,
		IOUThreshold:        DefaultIOUThreshold,
	}
}

// Validate checks the config for values the pipeline cannot run with.
func (c Config) Validate() error {
	if c.MeshWidth < 1 || c.MeshHeight < 1 {
		return errors.Errorf("mesh dimensions must be positive, got %dx%d", c.MeshWidth, c.MeshHeight)
	}
	if c.MaxContinuousChecks < 1 {
		return errors.Errorf("max continuous checks must be at least 1, got %d", c.MaxContinuousChecks)
	}
	if c.MaxFaces < 1 {
		return errors.Errorf("max faces must be at least 1, got %d", c.MaxFaces)
	}
	if c.BoxEnlargeFactor <= 0 {
		return errors.Errorf("box enlarge factor must be positive, got %f", c.BoxEnlargeFactor)
	}
	return nil
}
