package types

// Macros holds the macronutrient estimate of a meal, in grams.
type Macros struct {
	// example: 35
	Protein int `json:"protein" example:"35"`
	// example: 60
	Carbs int `json:"carbs" example:"60"`
	// example: 20
	Fat int `json:"fat" example:"20"`
}

// Exercise is one entry of a workout plan. Reps and Duration are both
// optional; timed exercises usually carry only one of them.
type Exercise struct {
	// example: Prancha
	Name string `json:"name" example:"Prancha"`
	// example: 3
	Sets int `json:"sets" example:"3"`
	// example: 30-60s
	Reps     string `json:"reps,omitempty" example:"30-60s"`
	Duration string `json:"duration,omitempty"`
	// example: Corpo alinhado, sem deixar o quadril cair.
	Tips string `json:"tips" example:"Corpo alinhado, sem deixar o quadril cair."`
}
