package facemesh

// needsDetectorRun reports whether the full-frame detector must run this
// frame. The detector runs to bootstrap an empty tracked set, or to look for
// additional faces once the partial set has been stable for
// maxContinuousChecks frames. A full set is never rescanned just to refresh
// boxes the landmark loop already maintains.
func needsDetectorRun(trackedCount, maxFaces, framesSinceDetector, maxContinuousChecks int) bool {
	if trackedCount == 0 {
		return true
	}
	return trackedCount != maxFaces && framesSinceDetector >= maxContinuousChecks
}
