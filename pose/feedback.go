package pose

import "fmt"

// FeedbackItem is one side of the final bundle: a short issue tag plus the
// advice sentence shown to the hitter.
type FeedbackItem struct {
	Issue  string `json:"issue"`
	Advice string `json:"advice"`
}

// Feedback is the structured result of one evaluation: exactly one positive
// and one improvement. Field names match the wire format the frontend reads.
type Feedback struct {
	Positives    FeedbackItem `json:"Positives"`
	Improvements FeedbackItem `json:"Improvements"`
}

// Default observations appended when a category ends up empty after all
// rules have run. The bundle never carries an empty list.
const (
	genericPositive    = "You’re in frame and the camera is tracking. Good start — now let’s tighten the setup."
	genericImprovement = "All good: compact upper-body setup looks solid — keep hands quiet near the back shoulder and stay quick/compact."
)

// evaluation carries the per-call state shared by gates and rules: both
// frames, the resolved roles, the scale reference and the wrist midpoint.
// It is built fresh for every call and discarded afterwards.
type evaluation struct {
	live  Frame
	ref   Frame
	roles Roles

	shoulderWidth float64
	wristMid      Point
	handToBackSh  float64

	positives    []string
	improvements []string
}

func (e *evaluation) addPositive(msg string) {
	e.positives = append(e.positives, msg)
}

func (e *evaluation) addImprovement(part, issue, advice string) {
	e.improvements = append(e.improvements, fmt.Sprintf("%s: %s — %s", part, issue, advice))
}
