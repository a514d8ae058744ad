package httpapi

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"

	"fitscan/internal/coach"
	"fitscan/pkg/types"
)

type mockService struct {
	mu      sync.Mutex
	mode    string
	ai      bool
	err     error
	panics  bool
	body    []coach.BodyRequest
	meals   []coach.MealRequest
	workout []coach.WorkoutRequest
}

func (m *mockService) AnalyzeBody(ctx context.Context, req coach.BodyRequest) (types.BodyAnalysis, error) {
	m.mu.Lock()
	m.body = append(m.body, req)
	m.mu.Unlock()
	if m.panics {
		panic("boom")
	}
	if m.err != nil {
		return types.BodyAnalysis{}, m.err
	}
	return types.BodyAnalysis{EstimatedFatPercentage: 20, EstimatedBiotype: "Mesomorfo", SuggestedGoal: "Recomposição Corporal", Feedback: "ok"}, nil
}

func (m *mockService) AnalyzeMeal(ctx context.Context, req coach.MealRequest) (types.MealAnalysis, error) {
	m.mu.Lock()
	m.meals = append(m.meals, req)
	m.mu.Unlock()
	if m.err != nil {
		return types.MealAnalysis{}, m.err
	}
	return types.MealAnalysis{TotalCalories: 550, Macros: types.Macros{Protein: 35, Carbs: 60, Fat: 20}, MealType: "Almoço"}, nil
}

func (m *mockService) GenerateWorkout(ctx context.Context, req coach.WorkoutRequest) (types.WorkoutPlan, error) {
	m.mu.Lock()
	m.workout = append(m.workout, req)
	m.mu.Unlock()
	if m.err != nil {
		return types.WorkoutPlan{}, m.err
	}
	return types.WorkoutPlan{Title: "Treino A", Exercises: []types.Exercise{{Name: "Prancha", Sets: 3}}}, nil
}

func (m *mockService) Mode() string {
	if m.mode == "" {
		return "simulation"
	}
	return m.mode
}

func (m *mockService) AIAvailable() bool { return m.ai }

var jpeg = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

// multipartRequest builds a POST with the given fields and, when image is
// non-nil, an image part declared as imageType.
func multipartRequest(t *testing.T, path string, fields map[string]string, image []byte, imageType string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if image != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="image"; filename="photo.jpg"`)
		if imageType != "" {
			h.Set("Content-Type", imageType)
		}
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		_, _ = part.Write(image)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func bodyFields() map[string]string {
	return map[string]string{"age": "30", "height": "175", "weight": "70"}
}

// withEnvironment switches the package environment for one test.
func withEnvironment(t *testing.T, env string) {
	t.Helper()
	prev := environment
	SetEnvironment(env)
	t.Cleanup(func() { environment = prev })
}
