package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fitscan/internal/coach"
	"fitscan/internal/config"
	"fitscan/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	AnalyzeBody(ctx context.Context, req coach.BodyRequest) (types.BodyAnalysis, error)
	AnalyzeMeal(ctx context.Context, req coach.MealRequest) (types.MealAnalysis, error)
	GenerateWorkout(ctx context.Context, req coach.WorkoutRequest) (types.WorkoutPlan, error)
	Mode() string
	AIAvailable() bool
}

// NewMux builds the FitScan router around svc, using the limiter, CORS and
// environment settings installed through the package setters.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(peerAddr)
	r.Use(middleware.RealIP)
	r.Use(MetricsMiddleware)
	r.Use(accessLog)
	r.Use(recoverer)
	r.Use(securityHeaders)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsAllowedOrigins,
			AllowedMethods:   corsAllowedMethods,
			AllowedHeaders:   corsAllowedHeaders,
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/", handleRoot(svc))
	r.Get("/health", handleHealth(svc))

	r.Group(func(r chi.Router) {
		r.Use(rateLimit)
		post(r, "/analyze-body", handleAnalyzeBody(svc))
		post(r, "/analyze-meal", handleAnalyzeMeal(svc))
		post(r, "/generate-workout", handleGenerateWorkout(svc))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	if isDevelopment() {
		MountSwagger(r)
	}
	return r
}

// post registers h for path with and without the trailing slash the mobile
// client sends.
func post(r chi.Router, path string, h http.HandlerFunc) {
	r.Post(path, h)
	r.Post(path+"/", h)
}

// handleRoot godoc
// @Summary      Service banner
// @Tags         meta
// @Produce      json
// @Success      200  {object}  types.RootResponse
// @Router       / [get]
func handleRoot(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.RootResponse{
			Message: "FitScan API",
			Version: config.Version,
			AIMode:  svc.Mode(),
		})
	}
}

// handleHealth godoc
// @Summary      Liveness probe
// @Tags         meta
// @Produce      json
// @Success      200  {object}  types.HealthResponse
// @Router       /health [get]
func handleHealth(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.HealthResponse{
			Status:      "ok",
			AIAvailable: svc.AIAvailable(),
			Environment: environment,
		})
	}
}

// handleAnalyzeBody godoc
// @Summary      Analyze body composition
// @Description  Estimates body fat, biotype and a goal from a photo plus age, height and weight.
// @Tags         analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        age     formData  int   true  "Age in years (10-120)"
// @Param        height  formData  int   true  "Height in cm (100-250)"
// @Param        weight  formData  int   true  "Weight in kg (30-300)"
// @Param        image   formData  file  true  "Body photo"
// @Success      200  {object}  types.BodyAnalysis
// @Failure      413  {object}  types.ErrorResponse
// @Failure      422  {object}  types.ErrorResponse
// @Failure      429  {object}  types.ErrorResponse
// @Failure      500  {object}  types.ErrorResponse
// @Router       /analyze-body/ [post]
func handleAnalyzeBody(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(w, r); err != nil {
			writeServiceError(w, r, err)
			return
		}
		var form bodyForm
		if err := decodeForm(&form, r); err != nil {
			writeServiceError(w, r, err)
			return
		}
		img, err := readImage(r)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		res, err := svc.AnalyzeBody(ctx, coach.BodyRequest{
			Age:    form.Age,
			Height: form.Height,
			Weight: form.Weight,
			Image:  img,
		})
		if err != nil {
			if r.Context().Err() != nil {
				return
			}
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// handleAnalyzeMeal godoc
// @Summary      Analyze a meal
// @Description  Estimates calories and macros from a meal photo.
// @Tags         analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Meal photo"
// @Success      200  {object}  types.MealAnalysis
// @Failure      413  {object}  types.ErrorResponse
// @Failure      422  {object}  types.ErrorResponse
// @Failure      429  {object}  types.ErrorResponse
// @Failure      500  {object}  types.ErrorResponse
// @Router       /analyze-meal/ [post]
func handleAnalyzeMeal(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(w, r); err != nil {
			writeServiceError(w, r, err)
			return
		}
		img, err := readImage(r)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		res, err := svc.AnalyzeMeal(ctx, coach.MealRequest{Image: img})
		if err != nil {
			if r.Context().Err() != nil {
				return
			}
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// handleGenerateWorkout godoc
// @Summary      Generate a workout plan
// @Description  Builds a workout from the training location and optional limitations.
// @Tags         workout
// @Accept       multipart/form-data,application/x-www-form-urlencoded
// @Produce      json
// @Param        training_location  formData  string  true   "Where the user trains, e.g. casa or academia"
// @Param        limitations        formData  string  false  "Injuries or limitations"
// @Param        user_context       formData  string  false  "Extra free-text context"
// @Success      200  {object}  types.WorkoutPlan
// @Failure      422  {object}  types.ErrorResponse
// @Failure      429  {object}  types.ErrorResponse
// @Failure      500  {object}  types.ErrorResponse
// @Router       /generate-workout/ [post]
func handleGenerateWorkout(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(w, r); err != nil {
			writeServiceError(w, r, err)
			return
		}
		var form workoutForm
		if err := decodeForm(&form, r); err != nil {
			writeServiceError(w, r, err)
			return
		}
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		res, err := svc.GenerateWorkout(ctx, coach.WorkoutRequest{
			TrainingLocation: strings.TrimSpace(form.TrainingLocation),
			Limitations:      strings.TrimSpace(form.Limitations),
			UserContext:      strings.TrimSpace(form.UserContext),
		})
		if err != nil {
			if r.Context().Err() != nil {
				return
			}
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && zlog != nil {
		zlog.Error().Err(err).Msg("encode response")
	}
}
