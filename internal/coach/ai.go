package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"fitscan/internal/vision"
	"fitscan/pkg/types"
)

// Generation parameters per operation.
const (
	imageDetail        = "low"
	analysisMaxTokens  = 500
	analysisTemp       = 0.3
	workoutMaxTokens   = 800
	workoutTemperature = 0.5
)

// The reply structs accept floats because models often answer 21.5 where
// an integer was asked for.
type bodyReply struct {
	Fat      float64 `json:"estimated_fat_percentage"`
	Biotype  string  `json:"estimated_biotype"`
	Goal     string  `json:"suggested_goal"`
	Feedback string  `json:"feedback"`
}

type mealReply struct {
	Calories float64 `json:"total_calories"`
	Macros   struct {
		Protein float64 `json:"protein"`
		Carbs   float64 `json:"carbs"`
		Fat     float64 `json:"fat"`
	} `json:"macros"`
	Feedback string `json:"feedback"`
	MealType string `json:"meal_type"`
}

type workoutReply struct {
	Title     string `json:"title"`
	Focus     string `json:"focus"`
	Exercises []struct {
		Name     string  `json:"name"`
		Sets     float64 `json:"sets"`
		Reps     any     `json:"reps"`
		Duration string  `json:"duration"`
		Tips     string  `json:"tips"`
	} `json:"exercises"`
	Feedback string `json:"feedback"`
}

func (s *Service) bodyWithAI(ctx context.Context, req BodyRequest) (types.BodyAnalysis, error) {
	var r bodyReply
	if err := s.ask(ctx, vision.Request{
		Prompt:      buildBodyPrompt(req),
		Image:       req.Image.Data,
		ImageMIME:   req.Image.MIME(),
		Detail:      imageDetail,
		MaxTokens:   analysisMaxTokens,
		Temperature: analysisTemp,
	}, &r); err != nil {
		return types.BodyAnalysis{}, err
	}
	if strings.TrimSpace(r.Biotype) == "" {
		return types.BodyAnalysis{}, errMalformedReply
	}
	return types.BodyAnalysis{
		EstimatedFatPercentage: roundInt(r.Fat),
		EstimatedBiotype:       r.Biotype,
		SuggestedGoal:          r.Goal,
		Feedback:               r.Feedback,
	}, nil
}

func (s *Service) mealWithAI(ctx context.Context, req MealRequest) (types.MealAnalysis, error) {
	var r mealReply
	if err := s.ask(ctx, vision.Request{
		Prompt:      buildMealPrompt(),
		Image:       req.Image.Data,
		ImageMIME:   req.Image.MIME(),
		Detail:      imageDetail,
		MaxTokens:   analysisMaxTokens,
		Temperature: analysisTemp,
	}, &r); err != nil {
		return types.MealAnalysis{}, err
	}
	if r.Calories <= 0 {
		return types.MealAnalysis{}, errMalformedReply
	}
	return types.MealAnalysis{
		TotalCalories: roundInt(r.Calories),
		Macros: types.Macros{
			Protein: roundInt(r.Macros.Protein),
			Carbs:   roundInt(r.Macros.Carbs),
			Fat:     roundInt(r.Macros.Fat),
		},
		Feedback: r.Feedback,
		MealType: r.MealType,
	}, nil
}

func (s *Service) workoutWithAI(ctx context.Context, req WorkoutRequest) (types.WorkoutPlan, error) {
	var r workoutReply
	if err := s.ask(ctx, vision.Request{
		Prompt:      buildWorkoutPrompt(req),
		MaxTokens:   workoutMaxTokens,
		Temperature: workoutTemperature,
	}, &r); err != nil {
		return types.WorkoutPlan{}, err
	}
	if len(r.Exercises) == 0 {
		return types.WorkoutPlan{}, errMalformedReply
	}
	plan := types.WorkoutPlan{Title: r.Title, Focus: r.Focus, Feedback: r.Feedback}
	for _, e := range r.Exercises {
		plan.Exercises = append(plan.Exercises, types.Exercise{
			Name:     e.Name,
			Sets:     roundInt(e.Sets),
			Reps:     repsString(e.Reps),
			Duration: e.Duration,
			Tips:     e.Tips,
		})
	}
	return plan, nil
}

// ask sends req and decodes the JSON object in the reply into out.
func (s *Service) ask(ctx context.Context, req vision.Request, out any) error {
	text, err := s.ai.Complete(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(vision.ExtractJSON(text)), out); err != nil {
		return fmt.Errorf("parse model reply: %w", err)
	}
	return nil
}

func roundInt(f float64) int { return int(math.Round(f)) }

// repsString accepts "8-12" as well as a bare number.
func repsString(v any) string {
	switch r := v.(type) {
	case string:
		return r
	case float64:
		return fmt.Sprintf("%d", roundInt(r))
	default:
		return ""
	}
}
