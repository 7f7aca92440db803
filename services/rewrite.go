package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"battercoach/pose"
)

// One attempt, bounded time; the analyzer falls back locally on any error.
const rewriteTimeout = 10 * time.Second

// Defaults when the model returns a blank field despite being asked not to.
const (
	defaultRewritePositive    = "Nice work — you’re in a good setup."
	defaultRewriteImprovement = "Hold that stance and say Start when you’re ready."
)

// GeminiRewriter restyles raw stance observations into short coaching
// sentences via Gemini. Implements pose.Rewriter.
type GeminiRewriter struct{}

// Rewrite asks the model for one positive and one improvement sentence in
// strict JSON. It tolerates empty input lists; it never returns an empty
// string on success.
func (GeminiRewriter) Rewrite(ctx context.Context, handedness string, positives, improvements []string) (pose.Rewrite, error) {
	if geminiClient == nil {
		return pose.Rewrite{}, errors.New("gemini client not initialized")
	}

	posJSON, _ := json.Marshal(positives)
	impJSON, _ := json.Marshal(improvements)

	prompt := fmt.Sprintf(`You are a friendly baseball hitting coach. Rewrite the feedback in plain, normal English.

Rules:
- Output MUST be valid JSON only. No extra text.
- Keep it SHORT: 1 positive sentence + 1 improvement sentence.
- Do NOT mention "keypoints", "scores", "thresholds", "pixels", or "model".
- Do NOT mention handedness unless it helps clarity.
- Use calm, encouraging tone like a coach.
- If improvements list is empty, say everything looks solid and what to do next.
- If positives list is empty, still give a quick encouragement.

Handedness: %s

Positives (raw): %s
Improvements (raw): %s

Return JSON exactly in this schema:
{
  "positive": "string",
  "improvement": "string"
}`, handedness, posJSON, impJSON)

	ctx, cancel := context.WithTimeout(ctx, rewriteTimeout)
	defer cancel()

	response, err := generateModelText(ctx, geminiModel, prompt)
	if err != nil {
		return pose.Rewrite{}, fmt.Errorf("failed to rewrite feedback: %w", err)
	}

	var out struct {
		Positive    string `json:"positive"`
		Improvement string `json:"improvement"`
	}
	if err := json.Unmarshal([]byte(response), &out); err != nil {
		return pose.Rewrite{}, fmt.Errorf("invalid rewrite format: %v", err)
	}

	if strings.TrimSpace(out.Positive) == "" {
		out.Positive = defaultRewritePositive
	}
	if strings.TrimSpace(out.Improvement) == "" {
		out.Improvement = defaultRewriteImprovement
	}
	return pose.Rewrite{
		Positive:    strings.TrimSpace(out.Positive),
		Improvement: strings.TrimSpace(out.Improvement),
	}, nil
}
