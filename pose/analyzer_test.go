package pose

import (
	"context"
	"errors"
	"testing"
)

// stubRewriter records calls and returns a fixed result or error.
type stubRewriter struct {
	result Rewrite
	err    error
	calls  int
}

func (s *stubRewriter) Rewrite(_ context.Context, _ string, _, _ []string) (Rewrite, error) {
	s.calls++
	return s.result, s.err
}

func TestAnalyzeUsesRewriter(t *testing.T) {
	rw := &stubRewriter{result: Rewrite{Positive: "nice swing setup", Improvement: "tuck the elbow"}}
	a := NewAnalyzer(0, rw)

	fb := a.Analyze(context.Background(), "right", goodStanceKeypoints(), nil)
	if fb.Positives.Issue != "Good job" || fb.Improvements.Issue != "One thing to work on" {
		t.Errorf("unexpected issue tags: %+v", fb)
	}
	if fb.Positives.Advice != "nice swing setup" || fb.Improvements.Advice != "tuck the elbow" {
		t.Errorf("rewritten advice not used: %+v", fb)
	}
	if rw.calls != 1 {
		t.Errorf("expected one rewrite attempt, got %d", rw.calls)
	}
}

func TestAnalyzeFallsBackOnRewriteError(t *testing.T) {
	rw := &stubRewriter{err: errors.New("service down")}
	a := NewAnalyzer(0, rw)

	raw := a.EvaluateRaw("right", goodStanceKeypoints(), nil)
	fb := a.Analyze(context.Background(), "right", goodStanceKeypoints(), nil)

	if fb.Positives.Advice != raw.Positives[0] {
		t.Errorf("expected first raw positive %q, got %q", raw.Positives[0], fb.Positives.Advice)
	}
	if fb.Improvements.Advice != raw.Improvements[0] {
		t.Errorf("expected first raw improvement %q, got %q", raw.Improvements[0], fb.Improvements.Advice)
	}
}

func TestAnalyzeWithoutRewriter(t *testing.T) {
	a := NewAnalyzer(0, nil)

	fb := a.Analyze(context.Background(), "right", goodStanceKeypoints(), nil)
	if fb.Positives.Advice == "" || fb.Improvements.Advice == "" {
		t.Error("advice must never be empty")
	}
	if fb.Improvements.Advice != genericImprovement {
		t.Errorf("expected the generic improvement for a clean stance, got %q", fb.Improvements.Advice)
	}
}

func TestAnalyzeBlankRewriteFieldsFallBack(t *testing.T) {
	rw := &stubRewriter{} // returns empty strings, no error
	a := NewAnalyzer(0, rw)

	raw := a.EvaluateRaw("right", goodStanceKeypoints(), nil)
	fb := a.Analyze(context.Background(), "right", goodStanceKeypoints(), nil)
	if fb.Positives.Advice != raw.Positives[0] || fb.Improvements.Advice != raw.Improvements[0] {
		t.Error("blank rewrite fields must fall back to the raw observations")
	}
}

func TestAnalyzeGatedSkipsRewriter(t *testing.T) {
	rw := &stubRewriter{result: Rewrite{Positive: "x", Improvement: "y"}}
	a := NewAnalyzer(0, rw)
	live := override(goodStanceKeypoints(), kp("left_shoulder", 300, 300, 0.1))

	fb := a.Analyze(context.Background(), "right", live, nil)
	if rw.calls != 0 {
		t.Error("gated evaluations must not reach the rewriter")
	}
	if fb.Improvements.Issue != "upper-body joints not confidently detected" {
		t.Errorf("expected the canned gate bundle, got %+v", fb)
	}
}
