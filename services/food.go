package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"battercoach/models"

	"google.golang.org/genai"
)

const foodSystemPrompt = "You are a nutrition coach providing practical, general nutrition guidance. " +
	"Help people make informed food choices for overall health, energy, performance, " +
	"and body composition. Be honest about uncertainty."

const foodUserPrompt = `Analyze the food in the image and provide general nutrition guidance.

Return JSON ONLY. No markdown, no extra text. Use this schema exactly:

{
  "items": ["string", "..."],
  "classification": "Healthy|Mixed|Junk",

  "total_calories_range": "###-### kcal",
  "calories_by_item": [
    { "item": "string", "calories_range": "##-## kcal" }
  ],
  "portion_assumption": "short (e.g., 1 medium avocado / 1 cup rice / cooked with ~1 tbsp oil)",

  "protein_estimate": "Low|Moderate|High",
  "protein_grams_range": "##-## g",
  "fiber_estimate": "Low|Moderate|High",
  "fiber_grams_range": "##-## g",
  "calorie_density": "Low|Medium|High",
  "added_sugar_risk": "None|Low|High",
  "fat_quality": "Mostly healthy|Mixed|Mostly refined",
  "blood_sugar_impact": "Low|Medium|High",
  "portion_risk": "Low|Medium|High",
  "satiety_score": 1,
  "timing_advice": "Anytime|Better earlier|Post-workout friendly|Occasional treat",
  "notes": "short explanation",
  "tips": ["tip 1", "tip 2", "tip 3"],
  "confidence": "Low|Medium|High"
}

Rules:
- satiety_score must be an integer 1-5.
- If you cannot identify the food, still fill fields with best-effort and set confidence Low.
- Keep notes short (1-2 sentences).
- tips should be practical and broadly applicable (portion awareness, balance, pairing foods, etc.).`

// AnalyzeFoodImage asks the model for a structured nutrition report on a
// food photo supplied as a data:image/... URL.
func AnalyzeFoodImage(ctx context.Context, imageDataURL string) (models.FoodReport, error) {
	mime, data, err := parseDataURL(imageDataURL)
	if err != nil {
		return models.FoodReport{}, fmt.Errorf("invalid image: %w", err)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(foodSystemPrompt + "\n\n" + foodUserPrompt),
		genai.NewPartFromBytes(data, mime),
	}
	response, err := generateModelParts(ctx, geminiModel, parts, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.2)),
		MaxOutputTokens:  700,
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return models.FoodReport{}, fmt.Errorf("food analysis error: %w", err)
	}

	var report models.FoodReport
	if err := json.Unmarshal([]byte(response), &report); err != nil {
		return models.FoodReport{}, fmt.Errorf("invalid food report format: %v", err)
	}
	return normalizeFoodReport(report), nil
}

// normalizeFoodReport fills defaults for fields the model left blank and
// clamps the satiety score into its 1-5 range.
func normalizeFoodReport(r models.FoodReport) models.FoodReport {
	if r.Items == nil {
		r.Items = []string{}
	}
	if r.CaloriesByItem == nil {
		r.CaloriesByItem = []models.FoodItemCalories{}
	}
	if r.Tips == nil {
		r.Tips = []string{}
	}

	defaultIfBlank(&r.Classification, "Mixed")
	defaultIfBlank(&r.TotalCaloriesRange, "—")
	defaultIfBlank(&r.ProteinEstimate, "Moderate")
	defaultIfBlank(&r.ProteinGramsRange, "—")
	defaultIfBlank(&r.FiberEstimate, "Moderate")
	defaultIfBlank(&r.FiberGramsRange, "—")
	defaultIfBlank(&r.CalorieDensity, "Medium")
	defaultIfBlank(&r.AddedSugarRisk, "Low")
	defaultIfBlank(&r.FatQuality, "Mixed")
	defaultIfBlank(&r.BloodSugarImpact, "Medium")
	defaultIfBlank(&r.PortionRisk, "Medium")
	defaultIfBlank(&r.TimingAdvice, "Anytime")
	defaultIfBlank(&r.Confidence, "Medium")

	if r.SatietyScore == 0 {
		r.SatietyScore = 3
	}
	if r.SatietyScore < 1 {
		r.SatietyScore = 1
	}
	if r.SatietyScore > 5 {
		r.SatietyScore = 5
	}
	return r
}

func defaultIfBlank(s *string, def string) {
	if strings.TrimSpace(*s) == "" {
		*s = def
	}
}
