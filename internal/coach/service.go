package coach

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"fitscan/internal/vision"
	"fitscan/pkg/types"
)

// Operation names used in logs and metrics.
const (
	OpBody    = "analyze_body"
	OpMeal    = "analyze_meal"
	OpWorkout = "generate_workout"
)

// AI modes reported by Mode.
const (
	ModeOpenAI     = "openai"
	ModeSimulation = "simulation"
)

// Service runs the three FitScan analyses. With a Completer it asks the
// model first and falls back to the rule-based estimates; without one it
// only simulates. Safe for concurrent use.
type Service struct {
	ai       Completer
	delay    time.Duration
	log      zerolog.Logger
	validate *validator.Validate

	rngMu sync.Mutex
	rng   *rand.Rand
}

// AIAvailable reports whether a model API is configured.
func (s *Service) AIAvailable() bool { return s.ai != nil }

// Mode returns "openai" when a model API is configured, else "simulation".
func (s *Service) Mode() string {
	if s.AIAvailable() {
		return ModeOpenAI
	}
	return ModeSimulation
}

// AnalyzeBody estimates body composition from a photo and basic measures.
func (s *Service) AnalyzeBody(ctx context.Context, req BodyRequest) (types.BodyAnalysis, error) {
	if err := s.check(req); err != nil {
		return types.BodyAnalysis{}, err
	}
	if err := checkImage(req.Image); err != nil {
		return types.BodyAnalysis{}, err
	}
	s.log.Info().Str("op", OpBody).Int("age", req.Age).Int("height_cm", req.Height).Int("weight_kg", req.Weight).Msg("body analysis")

	res, src, err := resolve(ctx, s, OpBody,
		func() (types.BodyAnalysis, error) { return s.bodyWithAI(ctx, req) },
		func() (types.BodyAnalysis, error) { return s.simulateBody(ctx, req) },
	)
	if err != nil {
		return res, err
	}
	s.log.Info().Str("op", OpBody).Str("source", src).Str("biotype", res.EstimatedBiotype).Msg("analysis done")
	return res, nil
}

// AnalyzeMeal estimates calories and macros from a meal photo.
func (s *Service) AnalyzeMeal(ctx context.Context, req MealRequest) (types.MealAnalysis, error) {
	if err := checkImage(req.Image); err != nil {
		return types.MealAnalysis{}, err
	}
	s.log.Info().Str("op", OpMeal).Str("filename", req.Image.Filename).Msg("meal analysis")

	res, src, err := resolve(ctx, s, OpMeal,
		func() (types.MealAnalysis, error) { return s.mealWithAI(ctx, req) },
		func() (types.MealAnalysis, error) { return s.simulateMeal(ctx) },
	)
	if err != nil {
		return res, err
	}
	s.log.Info().Str("op", OpMeal).Str("source", src).Int("kcal", res.TotalCalories).Msg("analysis done")
	return res, nil
}

// GenerateWorkout builds a workout plan from free-text preferences.
func (s *Service) GenerateWorkout(ctx context.Context, req WorkoutRequest) (types.WorkoutPlan, error) {
	if err := s.check(req); err != nil {
		return types.WorkoutPlan{}, err
	}
	s.log.Info().Str("op", OpWorkout).Str("location", req.TrainingLocation).Str("limitations", req.Limitations).Msg("generating workout")

	res, src, err := resolve(ctx, s, OpWorkout,
		func() (types.WorkoutPlan, error) { return s.workoutWithAI(ctx, req) },
		func() (types.WorkoutPlan, error) { return s.simulateWorkout(ctx, req) },
	)
	if err != nil {
		return res, err
	}
	s.log.Info().Str("op", OpWorkout).Str("source", src).Str("title", res.Title).Msg("plan generated")
	return res, nil
}

// resolve runs the model path when configured and substitutes the
// rule-based result on any failure other than ctx ending. It returns the
// result source for logging and metrics.
func resolve[T any](ctx context.Context, s *Service, op string, ai, rules func() (T, error)) (T, string, error) {
	src := sourceSimulation
	if s.ai != nil {
		res, err := ai()
		if err == nil {
			observe(op, sourceAI)
			return res, sourceAI, nil
		}
		if ctx.Err() != nil {
			return res, "", ctx.Err()
		}
		cause := "other"
		if vision.IsUpstream(err) {
			cause = "status"
		}
		s.log.Error().Err(err).Str("op", op).Str("cause", cause).Msg("model api failed, using rule-based result")
		src = sourceFallback
	}
	res, err := rules()
	if err != nil {
		return res, "", err
	}
	observe(op, src)
	return res, src, nil
}
