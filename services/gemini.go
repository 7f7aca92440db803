package services

import (
	"context"
	"errors"
	"strings"

	"battercoach/config"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// Global Gemini client instance shared by all AI-backed services.
var (
	geminiClient *genai.Client
	geminiModel  = defaultGeminiModel
)

// InitAIServices initializes the Gemini client from the loaded config.
func InitAIServices(cfg *config.Config) error {
	if cfg.Gemini.Model != "" {
		geminiModel = cfg.Gemini.Model
	}
	client, err := initGemini(cfg.Gemini.ApiKey)
	if err != nil {
		return err
	}
	geminiClient = client
	return nil
}

func initGemini(apiKey string) (*genai.Client, error) {
	config := &genai.ClientConfig{}
	if apiKey != "" {
		config.APIKey = apiKey
	}
	return genai.NewClient(context.Background(), config)
}

func generateModelText(ctx context.Context, modelName, prompt string) (string, error) {
	if geminiClient == nil {
		return "", errors.New("gemini client not initialized")
	}
	resp, err := geminiClient.Models.GenerateContent(ctx, modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return cleanModelOutput(resp.Text()), nil
}

// generateModelParts sends a multimodal request (text plus image or audio
// parts) and returns the cleaned text response.
func generateModelParts(ctx context.Context, modelName string, parts []*genai.Part, cfg *genai.GenerateContentConfig) (string, error) {
	if geminiClient == nil {
		return "", errors.New("gemini client not initialized")
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := geminiClient.Models.GenerateContent(ctx, modelName, contents, cfg)
	if err != nil {
		return "", err
	}
	return cleanModelOutput(resp.Text()), nil
}

func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
