package pose

// VisibilityThreshold is the fixed confidence cutoff a keypoint must
// exceed to take part in drawing. Interchange export is never filtered
// by it.
const VisibilityThreshold = 0.1

// Keypoint is a single anatomical landmark estimate. X and Y are
// normalized to [0,1] relative to the render target, not pixel units.
// X and Y stay defined even when the confidence is near zero.
type Keypoint struct {
	X          float64
	Y          float64
	Confidence float64
}

// Visible reports whether the keypoint clears the confidence cutoff.
func (k Keypoint) Visible() bool {
	return k.Confidence > VisibilityThreshold
}

// Pose is an ordered keypoint sequence for one figure, indexed
// positionally per the body landmark convention. A pose may carry any
// keypoint count; consumers check indices against the actual length.
// Poses are treated as immutable for the duration of a call.
type Pose []Keypoint

// Visible counts the keypoints that clear the confidence cutoff.
func (p Pose) Visible() int {
	n := 0
	for _, k := range p {
		if k.Visible() {
			n++
		}
	}
	return n
}
