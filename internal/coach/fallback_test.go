package coach

import (
	"context"
	"strings"
	"testing"
)

func TestBMI(t *testing.T) {
	cases := []struct {
		w, h int
		want float64
	}{
		{70, 175, 22.9},
		{50, 180, 15.4},
		{100, 170, 34.6},
		{81, 180, 25.0},
	}
	for _, c := range cases {
		if got := BMI(c.w, c.h); got != c.want {
			t.Fatalf("BMI(%d,%d)=%v want %v", c.w, c.h, got, c.want)
		}
	}
}

func TestBiotypeForBMI_Boundaries(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{10, Ectomorph},
		{18.4, Ectomorph},
		{18.5, Mesomorph},
		{24.9, Mesomorph},
		{25.0, Endomorph},
		{29.9, Endomorph},
		{30.0, Endomorph},
		{45, Endomorph},
	}
	for _, c := range cases {
		if got := BiotypeForBMI(c.bmi); got != c.want {
			t.Fatalf("BiotypeForBMI(%v)=%s want %s", c.bmi, got, c.want)
		}
	}
}

func TestClassifyBMI_GoalsAtBoundaries(t *testing.T) {
	if g := classifyBMI(25.0).goal; g != "Emagrecimento com Preservação de Massa" {
		t.Fatalf("25.0 goal=%q", g)
	}
	if g := classifyBMI(30.0).goal; g != "Emagrecimento e Saúde Articular" {
		t.Fatalf("30.0 goal=%q", g)
	}
}

func TestSimulateBody_FatRangeAndFeedback(t *testing.T) {
	s := newTestService(nil)
	for i := 0; i < 50; i++ {
		res, err := s.simulateBody(testCtx(t), BodyRequest{Age: 30, Height: 180, Weight: 50})
		if err != nil { t.Fatalf("simulate: %v", err) }
		if res.EstimatedBiotype != Ectomorph { t.Fatalf("biotype=%s", res.EstimatedBiotype) }
		if res.EstimatedFatPercentage < 10 || res.EstimatedFatPercentage > 16 {
			t.Fatalf("fat=%d out of range", res.EstimatedFatPercentage)
		}
		if !strings.Contains(res.Feedback, "15.4") { t.Fatalf("feedback missing BMI: %q", res.Feedback) }
	}
}

func TestSimulateBody_FormatsWholeBMIWithDecimal(t *testing.T) {
	s := newTestService(nil)
	res, err := s.simulateBody(testCtx(t), BodyRequest{Age: 30, Height: 180, Weight: 81})
	if err != nil { t.Fatalf("simulate: %v", err) }
	if !strings.Contains(res.Feedback, "Seu IMC é 25.0,") { t.Fatalf("feedback=%q", res.Feedback) }
}

func TestSimulateMeal_PicksCannedMeal(t *testing.T) {
	s := newTestService(nil)
	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		res, err := s.simulateMeal(testCtx(t))
		if err != nil { t.Fatalf("simulate: %v", err) }
		seen[res.TotalCalories] = true
	}
	for kcal := range seen {
		if kcal != 750 && kcal != 550 && kcal != 400 { t.Fatalf("unexpected kcal %d", kcal) }
	}
	if len(seen) != 3 { t.Fatalf("expected all three meals over 100 draws, saw %v", seen) }
}

func exerciseNames(t *testing.T, loc, lim string) []string {
	t.Helper()
	plan := buildWorkoutPlan(loc, lim)
	var names []string
	for _, e := range plan.Exercises {
		names = append(names, e.Name)
	}
	return names
}

func TestBuildWorkoutPlan_Gym(t *testing.T) {
	got := strings.Join(exerciseNames(t, "Academia", ""), "|")
	if got != "Agachamento Livre|Leg Press|Cadeira Extensora|Stiff|Prancha" {
		t.Fatalf("gym plan=%s", got)
	}
	plan := buildWorkoutPlan("Academia", "")
	if plan.Feedback != "Treino focado em fortalecer a parte inferior e core." {
		t.Fatalf("feedback=%q", plan.Feedback)
	}
	if plan.Title != "Treino A - Inferiores e Core" || plan.Focus != "Força e Estabilidade" {
		t.Fatalf("plan=%+v", plan)
	}
}

func TestBuildWorkoutPlan_KneeSubstitutesSquat(t *testing.T) {
	names := exerciseNames(t, "academia", "Dor no JOELHO direito")
	if names[0] != "Leg Press 45°" || names[1] != "Leg Press" {
		t.Fatalf("names=%v", names)
	}
	if fb := buildWorkoutPlan("academia", "joelho").Feedback; !strings.Contains(fb, "proteger seus joelhos") {
		t.Fatalf("feedback=%q", fb)
	}
}

func TestBuildWorkoutPlan_BackSubstitutesLegPress(t *testing.T) {
	for _, lim := range []string{"hérnia lombar", "dor nas costas"} {
		names := exerciseNames(t, "academia", lim)
		if names[0] != "Agachamento Livre" || names[1] != "Cadeira Extensora" {
			t.Fatalf("%q: names=%v", lim, names)
		}
		if fb := buildWorkoutPlan("academia", lim).Feedback; !strings.Contains(fb, "proteger sua lombar") {
			t.Fatalf("feedback=%q", fb)
		}
	}
}

func TestBuildWorkoutPlan_HomeUsesBodyweight(t *testing.T) {
	plan := buildWorkoutPlan("Em Casa", "joelho")
	if plan.Exercises[0].Name != "Agachamento Sumô" || len(plan.Exercises) != 5 {
		t.Fatalf("home plan=%+v", plan.Exercises)
	}
	want := "Treino focado em fortalecer a parte inferior e core. Exercícios adaptados para proteger seus joelhos. Adaptado para casa, usando peso corporal."
	if plan.Feedback != want {
		t.Fatalf("feedback=%q", plan.Feedback)
	}
}

func TestSleep_RespectsContext(t *testing.T) {
	s := New(Config{SimulationDelay: DefaultSimulationDelay})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.sleep(ctx); err == nil { t.Fatalf("expected canceled context error") }
}
