package pose

import "math"

// Rule thresholds. Distances are in shoulder widths unless the name says
// pixels; angles are degrees.
const (
	maxWristSeparation  = 0.45
	maxHandSetDistance  = 0.90
	maxForwardDrift     = 0.90
	minElbowSlotHeight  = -0.35
	maxElbowSlotHeight  = 0.10
	minBackArmAngle     = 65.0
	maxBackArmAngle     = 150.0
	minFrontArmAngle    = 60.0
	maxFrontArmAngle    = 155.0
	maxElbowTriangle    = 0.85
	maxShoulderTiltPx   = 25.0
	maxRefHandSetExcess = 0.20
)

// A rule inspects one aspect of the stance and appends zero or more
// observations. Rules are independent and stateless; each gates itself on
// the confidence of the joints it needs.
type rule func(e *evaluation)

// stanceRules run in this order for every gate-passing frame. Order only
// affects the ordering of the raw observation lists, not any outcome.
var stanceRules = []rule{
	ruleElbowVisibility,
	ruleGripCompactness,
	ruleHandSet,
	ruleForwardDrift,
	ruleBackElbowSlot,
	ruleBackArmBend,
	ruleFrontArmBend,
	ruleCompactTriangle,
	ruleShoulderLevel,
	ruleReferenceMatch,
}

// ruleElbowVisibility notes when neither elbow is confidently visible. The
// elbow-dependent rules below skip themselves per joint; this is the single
// user-facing hint about why.
func ruleElbowVisibility(e *evaluation) {
	if !e.live.ConfidenceOK(e.roles.FrontElbow, SoftMinScore) &&
		!e.live.ConfidenceOK(e.roles.BackElbow, SoftMinScore) {
		e.addImprovement("Visibility", "elbows not clearly visible",
			"Try better lighting and keep both elbows in frame for more accurate feedback.")
	}
}

func ruleGripCompactness(e *evaluation) {
	back := e.live.point(e.roles.BackWrist)
	front := e.live.point(e.roles.FrontWrist)
	sep, ok := NormDist(back.X-front.X, back.Y-front.Y, e.shoulderWidth)
	if !ok {
		return
	}
	if sep <= maxWristSeparation {
		e.addPositive("Grip: hands look reasonably compact/stacked (good for quickness).")
	} else {
		e.addImprovement("Hands (Grip)", "hands too far apart",
			"Bring your hands closer together (stacked grip). Compact hands = quicker to the ball.")
	}
}

func ruleHandSet(e *evaluation) {
	if e.handToBackSh <= maxHandSetDistance {
		e.addPositive("Hand set: hands are fairly close to the back shoulder (compact/quick).")
	} else {
		e.addImprovement("Hand Set (Compact)", "hands set too far from back shoulder",
			"Move your hands closer to your back shoulder. Compact hand set helps you get to the ball faster.")
	}
}

func ruleForwardDrift(e *evaluation) {
	shoulderMid := e.live.midpoint("left_shoulder", "right_shoulder")
	drift := math.Abs(e.wristMid.X-shoulderMid.X) / e.shoulderWidth
	if drift <= maxForwardDrift {
		e.addPositive("Hands: not drifting too far away from your torso line (good).")
	} else {
		e.addImprovement("Hand Set (Compact)", "hands drifting away from torso",
			"Keep hands closer to your chest/back shoulder line for a quick, compact move.")
	}
}

// ruleBackElbowSlot checks how far the back elbow sits above or below the
// back shoulder. The high and low branches cover disjoint ranges; at most
// one fires.
func ruleBackElbowSlot(e *evaluation) {
	if !e.live.ConfidenceOK(e.roles.BackElbow, SoftMinScore) {
		return
	}
	elbow := e.live.point(e.roles.BackElbow)
	shoulder := e.live.point(e.roles.BackShoulder)
	height := (shoulder.Y - elbow.Y) / e.shoulderWidth

	switch {
	case height >= minElbowSlotHeight && height <= maxElbowSlotHeight:
		e.addPositive("Back elbow: looks in a good slot (not flying, not pinned).")
	case height > maxElbowSlotHeight:
		e.addImprovement("Back Elbow", "back elbow too high (flying)",
			"Lower the back elbow slightly into the slot. Too high can make you longer to the ball.")
	default:
		e.addImprovement("Back Elbow", "back elbow too low",
			"Raise the back elbow a bit. Keep it relaxed and ready — not pinned down.")
	}
}

func ruleBackArmBend(e *evaluation) {
	if !e.live.ConfidenceOK(e.roles.BackElbow, SoftMinScore) {
		return
	}
	ang := Angle(
		e.live.point(e.roles.BackShoulder),
		e.live.point(e.roles.BackElbow),
		e.live.point(e.roles.BackWrist),
	)
	switch {
	case ang >= minBackArmAngle && ang <= maxBackArmAngle:
		e.addPositive("Back arm: comfortable bend (good for a quick/compact launch).")
	case ang > maxBackArmAngle:
		e.addImprovement("Back Arm", "back arm too straight",
			"Relax the back arm; keep a soft bend so you can launch quickly.")
	default:
		e.addImprovement("Back Arm", "back arm too collapsed",
			"Open your back elbow slightly. Too tight can restrict a quick turn.")
	}
}

func ruleFrontArmBend(e *evaluation) {
	if !e.live.ConfidenceOK(e.roles.FrontElbow, SoftMinScore) {
		return
	}
	ang := Angle(
		e.live.point(e.roles.FrontShoulder),
		e.live.point(e.roles.FrontElbow),
		e.live.point(e.roles.FrontWrist),
	)
	switch {
	case ang >= minFrontArmAngle && ang <= maxFrontArmAngle:
		e.addPositive("Front arm: not locked out (good).")
	case ang > maxFrontArmAngle:
		e.addImprovement("Front Arm", "front arm locked out",
			"Soften the front elbow a bit. A relaxed front arm helps you stay compact.")
	default:
		e.addImprovement("Front Arm", "front arm too tucked",
			"Give the front arm a little room. Don’t let it collapse tight into the body.")
	}
}

func ruleCompactTriangle(e *evaluation) {
	if !e.live.ConfidenceOK(e.roles.BackElbow, SoftMinScore) {
		return
	}
	elbow := e.live.point(e.roles.BackElbow)
	shoulder := e.live.point(e.roles.BackShoulder)
	dist, ok := NormDist(elbow.X-shoulder.X, elbow.Y-shoulder.Y, e.shoulderWidth)
	if !ok {
		return
	}
	if dist <= maxElbowTriangle {
		e.addPositive("Compact triangle: back elbow stays reasonably close (fast hands setup).")
	} else {
		e.addImprovement("Compact Triangle", "back elbow drifting away",
			"Keep the back elbow closer to the body/shoulder. Compact triangle = faster hands.")
	}
}

// ruleShoulderLevel compares raw pixel heights. Unlike every other distance
// this is intentionally not normalized by shoulder width.
func ruleShoulderLevel(e *evaluation) {
	diff := e.live.point("left_shoulder").Y - e.live.point("right_shoulder").Y
	if math.Abs(diff) <= maxShoulderTiltPx {
		e.addPositive("Shoulders: fairly level (good foundation).")
	} else {
		e.addImprovement("Shoulders", "shoulders not level",
			"Try to keep shoulders more level. Big tilt can change your swing path and timing.")
	}
}

// ruleReferenceMatch compares the live hand set against an optional
// reference pose. It only runs when the reference frame has a defined scale
// and all four required joints confidently visible, and it only judges the
// coarse boolean of exceeding the reference by more than the tolerance.
func ruleReferenceMatch(e *evaluation) {
	if len(e.ref) == 0 {
		return
	}
	refSW, ok := e.ref.ShoulderWidth()
	if !ok || len(e.ref.missingConfident(e.roles.required(), SoftMinScore)) > 0 {
		return
	}

	refMid := e.ref.midpoint(e.roles.BackWrist, e.roles.FrontWrist)
	refBackSh := e.ref.point(e.roles.BackShoulder)
	refDist, ok := NormDist(refMid.X-refBackSh.X, refMid.Y-refBackSh.Y, refSW)
	if !ok {
		return
	}

	if e.handToBackSh-refDist > maxRefHandSetExcess {
		e.addImprovement("Reference Match", "hands set farther than reference",
			"Bring hands closer to the back shoulder to match the compact reference.")
	} else {
		e.addPositive("Reference match: hands are at least as compact as the reference (nice).")
	}
}
