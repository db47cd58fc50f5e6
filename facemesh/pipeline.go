package facemesh

import (
	"context"
	"image"
	"sync"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	viamutils "go.viam.com/utils"

	"go.viam.com/facetrack/detection"
	"go.viam.com/facetrack/utils"
)

// Pipeline tracks faces across successive frames. It owns the tracked boxes
// and the frames-since-detector counter, both mutated in place by Predict,
// so a Pipeline is not safe for concurrent use: callers running Predict from
// multiple goroutines must serialize the calls themselves.
type Pipeline struct {
	detector  detection.Detector
	regressor Regressor
	cfg       Config
	logger    golog.Logger

	rois                *roiArena
	framesSinceDetector int
}

// NewPipeline creates a tracking pipeline from a detector, a landmark
// regressor, and a validated config.
func NewPipeline(detector detection.Detector, regressor Regressor, cfg Config, logger golog.Logger) (*Pipeline, error) {
	if detector == nil {
		return nil, errors.New("pipeline must have a detector")
	}
	if regressor == nil {
		return nil, errors.New("pipeline must have a regressor")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{
		detector:  detector,
		regressor: regressor,
		cfg:       cfg,
		logger:    logger,
		rois:      newROIArena(cfg.OnRelease),
	}, nil
}

// Face is the per-slot output of one frame.
type Face struct {
	// MeshCoords are the 2-D landmark positions in model input space.
	MeshCoords []r2.Point
	// ImageCoords are the same landmarks mapped into frame coordinates.
	ImageCoords []r2.Point
	// Box is the tracking region derived from the landmarks; it is the
	// slot's box for the next frame.
	Box r2.Rect
	// Confidence is the mesh model's scalar flag for the crop containing a
	// face.
	Confidence float64
}

// Result is the outcome of one frame. A NoFaces result is the defined
// outcome of a full scan finding nothing; it is distinct from a Predict
// error and only meaningful when Predict returned no error.
type Result struct {
	// Faces holds one entry per tracked slot, in slot order.
	Faces []Face
}

// NoFaces reports whether the frame ended with no tracked faces.
func (r Result) NoFaces() bool {
	return len(r.Faces) == 0
}

// Predict processes one frame. It runs the full-frame detector only when the
// detection gate demands it, refreshes every tracked region from the
// landmark model, and returns one Face per tracked slot in slot order.
//
// Detector and regressor failures abort the frame and propagate to the
// caller; they are never retried internally.
func (p *Pipeline) Predict(ctx context.Context, img image.Image) (Result, error) {
	if needsDetectorRun(p.rois.count(), p.cfg.MaxFaces, p.framesSinceDetector, p.cfg.MaxContinuousChecks) {
		dets, err := p.detector(ctx, img)
		if err != nil {
			return Result{}, errors.Wrap(err, "face detector failed")
		}
		if p.cfg.Postprocessor != nil {
			dets = p.cfg.Postprocessor(dets)
		}
		if len(dets) == 0 {
			// Terminal no-face outcome: drop all tracking state so the
			// next frame re-enters the bootstrap path of the gate.
			p.rois.clear()
			p.logger.Debug("full scan found no faces; cleared tracked regions")
			return Result{}, nil
		}
		n := utils.MinInt(len(dets), p.cfg.MaxFaces)
		candidates := make([]r2.Rect, 0, n)
		for _, d := range dets[:n] {
			candidates = append(candidates, enlargeBox(boxFromRectangle(*d.BoundingBox()), p.cfg.BoxEnlargeFactor))
		}
		p.associate(candidates)
		p.framesSinceDetector = 0
		p.logger.Debugf("full scan found %d face(s); tracking %d slot(s)", len(dets), p.rois.count())
	} else {
		p.framesSinceDetector++
	}

	// Slots have no cross-slot dependency within a frame, so landmark
	// extraction runs in parallel; only the slot write-back below is
	// serialized.
	boxes := p.rois.boxes()
	faces := make([]Face, len(boxes))
	errs := make([]error, len(boxes))
	var wg sync.WaitGroup
	for i, box := range boxes {
		wg.Add(1)
		i, box := i, box
		viamutils.PanicCapturingGo(func() {
			defer wg.Done()
			faces[i], errs[i] = p.extractFace(ctx, img, box)
		})
	}
	wg.Wait()
	if err := multierr.Combine(errs...); err != nil {
		return Result{}, err
	}

	for i, face := range faces {
		p.rois.replace(i, face.Box)
	}
	return Result{Faces: faces}, nil
}

// associate reconciles freshly detected candidate boxes with the tracked
// slots. Comparison is positional: candidate i is only ever gated against
// slot i, never against the best-overlapping previous box. Slots beyond the
// candidate count are dropped, so afterwards the slot count equals the
// number of detections.
func (p *Pipeline) associate(candidates []r2.Rect) {
	for i, candidate := range candidates {
		prev, ok := p.rois.boxAt(i)
		if !ok {
			p.rois.seed(candidate)
			continue
		}
		if iou(prev, candidate) > p.cfg.IOUThreshold {
			// Sticky: the tracked box stays, the candidate is dropped.
			continue
		}
		p.rois.replace(i, candidate)
		p.logger.Debugf("slot %d adopted a new detection box", i)
	}
	p.rois.truncate(len(candidates))
}

// extractFace crops the frame to one tracked box, runs the landmark model,
// and maps the output back into frame coordinates. The returned Face carries
// the slot's next tracking box, derived from the landmarks themselves.
func (p *Pipeline) extractFace(ctx context.Context, img image.Image, box r2.Rect) (Face, error) {
	crop := cropAndResize(img, box, p.cfg.MeshWidth, p.cfg.MeshHeight)
	landmarks, confidence, err := p.regressor(ctx, crop)
	if err != nil {
		return Face{}, errors.Wrap(err, "mesh regressor failed")
	}
	if err := landmarks.validate(); err != nil {
		return Face{}, err
	}
	meshCoords := landmarks.points2D()
	imageCoords := meshToImage(meshCoords, box, p.cfg.MeshWidth, p.cfg.MeshHeight)
	nextBox := enlargeBox(landmarksBoundingBox(imageCoords), p.cfg.BoxEnlargeFactor)
	return Face{
		MeshCoords:  meshCoords,
		ImageCoords: imageCoords,
		Box:         nextBox,
		Confidence:  confidence,
	}, nil
}

// TrackedBoxes returns a copy of the current tracked boxes in slot order.
func (p *Pipeline) TrackedBoxes() []r2.Rect {
	return p.rois.boxes()
}

// Reset drops all tracking state, releasing every tracked box, and forces a
// full scan on the next frame.
func (p *Pipeline) Reset() {
	p.rois.clear()
	p.framesSinceDetector = 0
}
