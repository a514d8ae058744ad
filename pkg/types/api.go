package types

// BodyAnalysis is returned by POST /analyze-body/.
type BodyAnalysis struct {
	// Estimated body-fat percentage.
	// example: 21
	EstimatedFatPercentage int `json:"estimated_fat_percentage" example:"21"`
	// Coarse body-type label (Ectomorfo, Mesomorfo or Endomorfo).
	// example: Mesomorfo
	EstimatedBiotype string `json:"estimated_biotype" example:"Mesomorfo"`
	// Main goal suggested for the user.
	// example: Recomposição Corporal
	SuggestedGoal string `json:"suggested_goal" example:"Recomposição Corporal"`
	// Motivational feedback, two or three sentences.
	Feedback string `json:"feedback"`
}

// MealAnalysis is returned by POST /analyze-meal/.
type MealAnalysis struct {
	// Estimated calories of the whole plate.
	// example: 550
	TotalCalories int `json:"total_calories" example:"550"`
	// Macro split in grams.
	Macros Macros `json:"macros"`
	// Nutritional feedback with practical tips.
	Feedback string `json:"feedback"`
	// Meal label, e.g. "Almoço - Frango Grelhado com Arroz".
	// example: Almoço - Carne Moída com Purê e Legumes
	MealType string `json:"meal_type" example:"Almoço - Carne Moída com Purê e Legumes"`
}

// WorkoutPlan is returned by POST /generate-workout/.
type WorkoutPlan struct {
	// example: Treino A - Inferiores e Core
	Title string `json:"title" example:"Treino A - Inferiores e Core"`
	// example: Força e Estabilidade
	Focus     string     `json:"focus" example:"Força e Estabilidade"`
	Exercises []Exercise `json:"exercises"`
	Feedback  string     `json:"feedback"`
}

// RootResponse is returned by GET /.
type RootResponse struct {
	// example: FitScan API
	Message string `json:"message" example:"FitScan API"`
	// example: 1.0.0
	Version string `json:"version" example:"1.0.0"`
	// Either "openai" or "simulation".
	// example: simulation
	AIMode string `json:"ai_mode" example:"simulation"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	// example: ok
	Status string `json:"status" example:"ok"`
	// True when a model API key is configured.
	// example: false
	AIAvailable bool `json:"ai_available" example:"false"`
	// example: development
	Environment string `json:"environment" example:"development"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message shown to the user.
	// example: Idade deve estar entre 10 e 120 anos.
	Detail string `json:"detail" example:"Idade deve estar entre 10 e 120 anos."`
	// HTTP status code.
	// example: 422
	Code int `json:"code" example:"422"`
}
