package models

// FoodRequest is a food photo submitted as a data:image/... URL.
type FoodRequest struct {
	ImageDataURL string `json:"image_data_url" binding:"required"`
}

// FoodItemCalories is a per-item calorie estimate inside a FoodReport.
type FoodItemCalories struct {
	Item          string `json:"item"`
	CaloriesRange string `json:"calories_range"`
}

// FoodReport is the structured nutrition analysis returned by the model,
// normalized so every field is populated.
type FoodReport struct {
	Items          []string `json:"items"`
	Classification string   `json:"classification"`

	TotalCaloriesRange string             `json:"total_calories_range"`
	CaloriesByItem     []FoodItemCalories `json:"calories_by_item"`
	PortionAssumption  string             `json:"portion_assumption"`

	ProteinEstimate   string   `json:"protein_estimate"`
	ProteinGramsRange string   `json:"protein_grams_range"`
	FiberEstimate     string   `json:"fiber_estimate"`
	FiberGramsRange   string   `json:"fiber_grams_range"`
	CalorieDensity    string   `json:"calorie_density"`
	AddedSugarRisk    string   `json:"added_sugar_risk"`
	FatQuality        string   `json:"fat_quality"`
	BloodSugarImpact  string   `json:"blood_sugar_impact"`
	PortionRisk       string   `json:"portion_risk"`
	SatietyScore      int      `json:"satiety_score"`
	TimingAdvice      string   `json:"timing_advice"`
	Notes             string   `json:"notes"`
	Tips              []string `json:"tips"`
	Confidence        string   `json:"confidence"`
}
