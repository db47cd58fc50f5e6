// Package facemesh tracks multiple faces across a video stream by combining
// a coarse full-frame face detector with a per-face dense landmark
// regressor.
//
// The expensive detector only runs to bootstrap tracking or to look for
// additional faces; on every other frame each tracked region of interest is
// cropped, run through the landmark model, and refreshed from the model's
// own output. Freshly detected boxes are reconciled with the tracked set by
// positional index with an IOU stickiness gate, which suppresses jitter from
// small detector-box fluctuations.
package facemesh
