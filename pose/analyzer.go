package pose

import "context"

// DefaultMinShoulderWidth is the framing floor in the pixel space of the
// upstream keypoint detector.
const DefaultMinShoulderWidth = 40.0

// Final bundle issue tags.
const (
	positiveTag    = "Good job"
	improvementTag = "One thing to work on"
)

// Rewrite is the rewriter's output: one short sentence per category.
type Rewrite struct {
	Positive    string
	Improvement string
}

// Rewriter turns raw observation strings into friendly coaching prose. The
// analyzer makes a single attempt and falls back to the raw strings on any
// error, so implementations need no retry logic of their own.
type Rewriter interface {
	Rewrite(ctx context.Context, handedness string, positives, improvements []string) (Rewrite, error)
}

// Analyzer evaluates batting-stance keypoint frames. It holds no per-call
// state; one Analyzer serves concurrent evaluations.
type Analyzer struct {
	// MinShoulderWidth overrides DefaultMinShoulderWidth when positive.
	MinShoulderWidth float64
	// Rewriter restyles the raw observations. May be nil.
	Rewriter Rewriter
}

// NewAnalyzer builds an analyzer. minShoulderWidth <= 0 selects the default
// framing floor; rw may be nil to skip rewriting entirely.
func NewAnalyzer(minShoulderWidth float64, rw Rewriter) *Analyzer {
	return &Analyzer{MinShoulderWidth: minShoulderWidth, Rewriter: rw}
}

func (a *Analyzer) minShoulderWidth() float64 {
	if a.MinShoulderWidth > 0 {
		return a.MinShoulderWidth
	}
	return DefaultMinShoulderWidth
}

// RawResult is the evaluation outcome before any rewriting. Either Gate is
// set (a hard gate fired and evaluation stopped there) or both observation
// lists are non-empty.
type RawResult struct {
	Gate         *Feedback
	Positives    []string
	Improvements []string
}

// EvaluateRaw runs gates and rules over one frame pair and returns the raw
// observations. Deterministic: identical input yields identical lists.
func (a *Analyzer) EvaluateRaw(handedness string, live, ref []Keypoint) RawResult {
	e := &evaluation{
		live:  BuildFrame(live),
		ref:   BuildFrame(ref),
		roles: RolesFor(handedness),
	}

	if fb := a.runGates(e); fb != nil {
		return RawResult{Gate: fb}
	}

	for _, r := range stanceRules {
		r(e)
	}

	if len(e.positives) == 0 {
		e.positives = append(e.positives, genericPositive)
	}
	if len(e.improvements) == 0 {
		e.improvements = append(e.improvements, genericImprovement)
	}

	return RawResult{Positives: e.positives, Improvements: e.improvements}
}

// Analyze evaluates one frame pair and assembles the final bundle. The
// rewriter gets one attempt; on error (or with no rewriter) the first raw
// observation of each list is used verbatim. A rewrite failure never fails
// the evaluation.
func (a *Analyzer) Analyze(ctx context.Context, handedness string, live, ref []Keypoint) Feedback {
	raw := a.EvaluateRaw(handedness, live, ref)
	if raw.Gate != nil {
		return *raw.Gate
	}

	positive := raw.Positives[0]
	improvement := raw.Improvements[0]
	if a.Rewriter != nil {
		if rw, err := a.Rewriter.Rewrite(ctx, handedness, raw.Positives, raw.Improvements); err == nil {
			if rw.Positive != "" {
				positive = rw.Positive
			}
			if rw.Improvement != "" {
				improvement = rw.Improvement
			}
		}
	}

	return Feedback{
		Positives:    FeedbackItem{Issue: positiveTag, Advice: positive},
		Improvements: FeedbackItem{Issue: improvementTag, Advice: improvement},
	}
}
