package pose

import "testing"

func TestGateConfidenceOnLowScore(t *testing.T) {
	a := NewAnalyzer(0, nil)
	live := override(goodStanceKeypoints(), kp("left_shoulder", 300, 300, 0.1))

	raw := a.EvaluateRaw("right", live, nil)
	if raw.Gate == nil {
		t.Fatal("expected the confidence gate to fire")
	}
	if got := raw.Gate.Improvements.Issue; got != "upper-body joints not confidently detected" {
		t.Errorf("unexpected gate issue: %q", got)
	}
}

func TestGateConfidenceOnMissingShoulder(t *testing.T) {
	a := NewAnalyzer(0, nil)
	live := without(goodStanceKeypoints(), "left_shoulder")

	raw := a.EvaluateRaw("right", live, nil)
	if raw.Gate == nil || raw.Gate.Improvements.Issue != "upper-body joints not confidently detected" {
		t.Fatal("undefined shoulder width must fail the confidence gate")
	}
}

func TestGateFramingOnNarrowShoulders(t *testing.T) {
	a := NewAnalyzer(0, nil)
	// Shoulder width 20 px, all scores still 1.0.
	live := scaled(goodStanceKeypoints(), 0.1)

	raw := a.EvaluateRaw("right", live, nil)
	if raw.Gate == nil {
		t.Fatal("expected the framing gate to fire")
	}
	if got := raw.Gate.Improvements.Issue; got != "too much cropping / too far away" {
		t.Errorf("unexpected gate issue: %q", got)
	}
}

func TestGateOrderingFirstFailureWins(t *testing.T) {
	a := NewAnalyzer(0, nil)
	// Fails both the confidence gate and the framing gate; the earlier
	// gate's bundle must win.
	live := override(scaled(goodStanceKeypoints(), 0.1), kp("left_shoulder", 30, 30, 0.1))

	raw := a.EvaluateRaw("right", live, nil)
	if raw.Gate == nil || raw.Gate.Improvements.Issue != "upper-body joints not confidently detected" {
		t.Fatal("first failing gate must decide the response")
	}
}

func TestGateStanceOnDistantHands(t *testing.T) {
	a := NewAnalyzer(0, nil)
	// Both wrists 300 px from the back shoulder: 1.5 shoulder widths.
	live := goodStanceKeypoints()
	live = override(live, kp("right_wrist", 800, 300, 1.0))
	live = override(live, kp("left_wrist", 800, 300, 1.0))

	raw := a.EvaluateRaw("right", live, nil)
	if raw.Gate == nil {
		t.Fatal("expected the stance gate to fire")
	}
	if got := raw.Gate.Improvements.Issue; got != "not in batting setup yet" {
		t.Errorf("unexpected gate issue: %q", got)
	}
}

func TestGateFramingThresholdConfigurable(t *testing.T) {
	a := NewAnalyzer(250, nil)

	raw := a.EvaluateRaw("right", goodStanceKeypoints(), nil)
	if raw.Gate == nil || raw.Gate.Improvements.Issue != "too much cropping / too far away" {
		t.Fatal("a raised framing floor must reject a 200 px wide frame")
	}
}

func TestGatePassingFrameReachesRules(t *testing.T) {
	a := NewAnalyzer(0, nil)

	raw := a.EvaluateRaw("right", goodStanceKeypoints(), nil)
	if raw.Gate != nil {
		t.Fatalf("good stance must pass every gate, got %q", raw.Gate.Improvements.Issue)
	}
	if len(raw.Positives) == 0 || len(raw.Improvements) == 0 {
		t.Error("gate-passing evaluation must fill both observation lists")
	}
}
