package models

import "battercoach/pose"

// KeypointItem is one detected joint as sent by the frontend pose
// estimator. Score is optional and defaults to 0.
type KeypointItem struct {
	Name  string  `json:"name"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Score float64 `json:"score"`
}

// PoseCompareRequest is the payload for stance analysis. The reference
// keypoints are optional.
type PoseCompareRequest struct {
	Handedness    string         `json:"handedness"`
	LiveKeypoints []KeypointItem `json:"live_keypoints" binding:"required"`
	RefKeypoints  []KeypointItem `json:"ref_keypoints"`
}

func toKeypoints(items []KeypointItem) []pose.Keypoint {
	kps := make([]pose.Keypoint, len(items))
	for i, it := range items {
		kps[i] = pose.Keypoint{Name: it.Name, X: it.X, Y: it.Y, Score: it.Score}
	}
	return kps
}

// Live returns the live keypoints in the core's representation.
func (r PoseCompareRequest) Live() []pose.Keypoint {
	return toKeypoints(r.LiveKeypoints)
}

// Ref returns the reference keypoints in the core's representation.
func (r PoseCompareRequest) Ref() []pose.Keypoint {
	return toKeypoints(r.RefKeypoints)
}

// PoseStreamResponse is one message on the live feedback channel. Gated
// responses carry the canned bundle; otherwise the raw observation lists
// are sent without LLM rewriting.
type PoseStreamResponse struct {
	Gated        bool           `json:"gated"`
	Gate         *pose.Feedback `json:"gate,omitempty"`
	Positives    []string       `json:"positives,omitempty"`
	Improvements []string       `json:"improvements,omitempty"`
}
