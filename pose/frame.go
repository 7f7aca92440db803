package pose

import "math"

// Confidence thresholds. Gating is deliberately stricter than the per-rule
// checks on optional joints; keep the two apart.
const (
	HardMinScore = 0.35
	SoftMinScore = 0.30
)

// Keypoint is a named body-joint position with a detection confidence score.
type Keypoint struct {
	Name  string
	X     float64
	Y     float64
	Score float64
}

// Frame maps keypoint names to keypoints for a single still image.
type Frame map[string]Keypoint

// BuildFrame converts a keypoint list into a lookup frame. When a name
// appears more than once the last occurrence wins.
func BuildFrame(kps []Keypoint) Frame {
	f := make(Frame, len(kps))
	for _, kp := range kps {
		f[kp.Name] = kp
	}
	return f
}

// ShoulderWidth returns the horizontal distance between the two shoulders,
// the per-frame scale reference. The second return is false when either
// shoulder is absent or the width is zero.
func (f Frame) ShoulderWidth() (float64, bool) {
	ls, okL := f["left_shoulder"]
	rs, okR := f["right_shoulder"]
	if !okL || !okR {
		return 0, false
	}
	w := math.Abs(rs.X - ls.X)
	if w == 0 {
		return 0, false
	}
	return w, true
}

// ConfidenceOK reports whether the named keypoint exists with a score of at
// least min.
func (f Frame) ConfidenceOK(name string, min float64) bool {
	kp, ok := f[name]
	return ok && kp.Score >= min
}

// missingConfident returns the subset of names that fail ConfidenceOK.
func (f Frame) missingConfident(names []string, min float64) []string {
	var missing []string
	for _, n := range names {
		if !f.ConfidenceOK(n, min) {
			missing = append(missing, n)
		}
	}
	return missing
}

// point returns the keypoint position. The keypoint must exist; gates and
// per-rule confidence checks guarantee that before any rule reads positions.
func (f Frame) point(name string) Point {
	kp := f[name]
	return Point{X: kp.X, Y: kp.Y}
}

// midpoint returns the point halfway between two named keypoints.
func (f Frame) midpoint(a, b string) Point {
	pa, pb := f.point(a), f.point(b)
	return Point{X: (pa.X + pb.X) / 2, Y: (pa.Y + pb.Y) / 2}
}
