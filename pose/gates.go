package pose

// Hard gates run before any rule, in a fixed order. The first gate that
// fails terminates the evaluation with its canned bundle; later gates and
// the rules never see the frame.

func gateConfidenceFailed() *Feedback {
	return &Feedback{
		Positives: FeedbackItem{
			Issue:  "not enough reliable joints yet",
			Advice: "No worries — you’re getting set up.",
		},
		Improvements: FeedbackItem{
			Issue: "upper-body joints not confidently detected",
			Advice: "I need to clearly see both shoulders and both wrists. " +
				"Step back, raise the camera slightly, and keep your arms in frame.",
		},
	}
}

func gateFramingFailed() *Feedback {
	return &Feedback{
		Positives: FeedbackItem{
			Issue:  "camera is running",
			Advice: "Good — I can see you, but not enough of your upper body yet.",
		},
		Improvements: FeedbackItem{
			Issue:  "too much cropping / too far away",
			Advice: "Move closer OR adjust framing so your shoulders and wrists are clearly visible.",
		},
	}
}

func gateStanceFailed() *Feedback {
	return &Feedback{
		Positives: FeedbackItem{
			Issue:  "you’re in frame",
			Advice: "Nice — I can see you clearly.",
		},
		Improvements: FeedbackItem{
			Issue: "not in batting setup yet",
			Advice: "Get into your batting stance and set your hands near your back shoulder. " +
				"Stand sideways to the camera with the webcam in front of you pointed at your chest, " +
				"then say Start or Go.",
		},
	}
}

// Wrist midpoint may sit at most this many shoulder-widths from the back
// shoulder before the frame counts as "not in a batting stance".
const maxHandToBackShoulder = 1.25

// runGates checks the three hard preconditions and fills the evaluation's
// shared quantities (shoulder width, wrist midpoint, hand-set distance) as a
// side effect. Returns the canned bundle of the first failing gate, or nil
// when the frame is analyzable.
func (a *Analyzer) runGates(e *evaluation) *Feedback {
	// 1. Confidence: both shoulders and both wrists, plus a defined scale.
	sw, swOK := e.live.ShoulderWidth()
	missing := e.live.missingConfident(e.roles.required(), HardMinScore)
	if !swOK || len(missing) > 0 {
		return gateConfidenceFailed()
	}
	e.shoulderWidth = sw

	// 2. Framing: subject far away or cropped makes every normalized
	// quantity too noisy to judge.
	if sw < a.minShoulderWidth() {
		return gateFramingFailed()
	}

	// 3. Stance presence: hands must already be set near the back shoulder.
	e.wristMid = e.live.midpoint(e.roles.BackWrist, e.roles.FrontWrist)
	backSh := e.live.point(e.roles.BackShoulder)
	e.handToBackSh, _ = NormDist(e.wristMid.X-backSh.X, e.wristMid.Y-backSh.Y, sw)
	if e.handToBackSh > maxHandToBackShoulder {
		return gateStanceFailed()
	}

	return nil
}
