package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const chatInstructions = "You are a friendly, helpful general coach. " +
	"Answer clearly and concisely."

// AnswerCoachQuestion sends a free-form question to the coach model, with an
// optional image provided as a data:image/... URL.
func AnswerCoachQuestion(ctx context.Context, question, imageDataURL string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", errors.New("question is required")
	}

	parts := []*genai.Part{
		genai.NewPartFromText(chatInstructions + "\n\n" + question),
	}
	if imageDataURL != "" {
		mime, data, err := parseDataURL(imageDataURL)
		if err != nil {
			return "", fmt.Errorf("invalid image: %w", err)
		}
		parts = append(parts, genai.NewPartFromBytes(data, mime))
	}

	answer, err := generateModelParts(ctx, geminiModel, parts, &genai.GenerateContentConfig{
		MaxOutputTokens: 350,
	})
	if err != nil {
		return "", fmt.Errorf("chat error: %w", err)
	}
	if answer == "" {
		return "Sorry — I couldn't generate a response.", nil
	}
	return answer, nil
}

// parseDataURL splits a "data:<mime>;base64,<payload>" URL into its mime
// type and decoded bytes.
func parseDataURL(url string) (string, []byte, error) {
	if !strings.HasPrefix(url, "data:") {
		return "", nil, errors.New("not a data URL")
	}
	meta, payload, found := strings.Cut(url[len("data:"):], ",")
	if !found {
		return "", nil, errors.New("malformed data URL")
	}
	mime := strings.TrimSuffix(meta, ";base64")
	if mime == meta {
		return "", nil, errors.New("only base64 data URLs are supported")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("bad base64 payload: %w", err)
	}
	return mime, data, nil
}
