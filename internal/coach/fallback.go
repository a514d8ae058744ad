package coach

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"fitscan/pkg/types"
)

// Biotype labels.
const (
	Ectomorph = "Ectomorfo"
	Mesomorph = "Mesomorfo"
	Endomorph = "Endomorfo"
)

// BMI returns weight / (height in meters)^2 rounded to one decimal.
func BMI(weightKg, heightCm int) float64 {
	m := float64(heightCm) / 100
	return math.Round(float64(weightKg)/(m*m)*10) / 10
}

// bodyProfile is one BMI bucket of the rule-based body analysis.
type bodyProfile struct {
	biotype        string
	goal           string
	fatMin, fatMax int
	// feedback has a single %s verb for the formatted BMI.
	feedback string
}

var bodyProfiles = [...]bodyProfile{
	{
		biotype: Ectomorph, goal: "Ganho de Massa Muscular (Bulking)", fatMin: 10, fatMax: 16,
		feedback: "Seu IMC é %s. Você tem um metabolismo rápido, característico de um ectomorfo. " +
			"Nosso plano focará em um superávit calórico e treinos de força para ganho de massa muscular.",
	},
	{
		biotype: Mesomorph, goal: "Recomposição Corporal", fatMin: 18, fatMax: 24,
		feedback: "Seu IMC é %s, que é considerado saudável. Você parece ter uma boa base muscular. " +
			"Nosso foco será a recomposição corporal: ganhar massa magra enquanto reduzimos gordura.",
	},
	{
		biotype: Endomorph, goal: "Emagrecimento com Preservação de Massa", fatMin: 25, fatMax: 32,
		feedback: "Seu IMC é %s, indicando sobrepeso. Nosso objetivo será um déficit calórico controlado " +
			"para queimar gordura, combinado com musculação para preservar seus músculos.",
	},
	{
		biotype: Endomorph, goal: "Emagrecimento e Saúde Articular", fatMin: 30, fatMax: 40,
		feedback: "Seu IMC é %s, indicando obesidade. Nossa prioridade é sua saúde. Iniciaremos com " +
			"déficit calórico e exercícios de baixo impacto para proteger suas articulações.",
	},
}

// classifyBMI picks the bucket for bmi. Each threshold belongs to the
// bucket above it.
func classifyBMI(bmi float64) bodyProfile {
	switch {
	case bmi < 18.5:
		return bodyProfiles[0]
	case bmi < 25:
		return bodyProfiles[1]
	case bmi < 30:
		return bodyProfiles[2]
	default:
		return bodyProfiles[3]
	}
}

// BiotypeForBMI returns the biotype label the rule-based analysis assigns.
func BiotypeForBMI(bmi float64) string { return classifyBMI(bmi).biotype }

func (s *Service) simulateBody(ctx context.Context, req BodyRequest) (types.BodyAnalysis, error) {
	if err := s.sleep(ctx); err != nil {
		return types.BodyAnalysis{}, err
	}
	bmi := BMI(req.Weight, req.Height)
	p := classifyBMI(bmi)
	return types.BodyAnalysis{
		EstimatedFatPercentage: s.intBetween(p.fatMin, p.fatMax),
		EstimatedBiotype:       p.biotype,
		SuggestedGoal:          p.goal,
		Feedback:               fmt.Sprintf(p.feedback, strconv.FormatFloat(bmi, 'f', 1, 64)),
	}, nil
}

var cannedMeals = [...]types.MealAnalysis{
	{
		TotalCalories: 750,
		Macros:        types.Macros{Protein: 40, Carbs: 80, Fat: 30},
		Feedback:      "Ótima fonte de proteína! A porção de arroz está adequada. Tente um molho mais leve na próxima vez.",
		MealType:      "Almoço - Frango Grelhado com Arroz e Salada",
	},
	{
		TotalCalories: 550,
		Macros:        types.Macros{Protein: 35, Carbs: 60, Fat: 20},
		Feedback:      "Refeição equilibrada! Boa combinação de nutrientes. Considere adicionar mais vegetais para aumentar fibras.",
		MealType:      "Almoço - Carne Moída com Purê e Legumes",
	},
	{
		TotalCalories: 400,
		Macros:        types.Macros{Protein: 25, Carbs: 30, Fat: 15},
		Feedback:      "Excelente opção para um lanche ou refeição leve! Boa proporção de proteínas e carboidratos complexos.",
		MealType:      "Jantar - Salmão Assado com Batata Doce",
	},
}

func (s *Service) simulateMeal(ctx context.Context) (types.MealAnalysis, error) {
	if err := s.sleep(ctx); err != nil {
		return types.MealAnalysis{}, err
	}
	return cannedMeals[s.intBetween(0, len(cannedMeals)-1)], nil
}

// workoutFlags are the keyword matches that shape the rule-based plan.
type workoutFlags struct {
	home, knee, back bool
}

func parseWorkoutFlags(location, limitations string) workoutFlags {
	loc := strings.ToLower(location)
	lim := strings.ToLower(limitations)
	return workoutFlags{
		home: strings.Contains(loc, "casa"),
		knee: strings.Contains(lim, "joelho"),
		back: strings.Contains(lim, "lombar") || strings.Contains(lim, "costas"),
	}
}

var plank = types.Exercise{Name: "Prancha", Sets: 3, Reps: "30-60s", Tips: "Corpo alinhado, sem deixar o quadril cair."}

func homeExercises() []types.Exercise {
	return []types.Exercise{
		{Name: "Agachamento Sumô", Sets: 3, Reps: "15-20", Tips: "Pés afastados, pontas para fora."},
		{Name: "Afundo", Sets: 3, Reps: "10-12 por perna", Tips: "Tronco reto, joelho de trás quase no chão."},
		{Name: "Elevação de Quadril", Sets: 3, Reps: "15-20", Tips: "Contraia o glúteo na subida."},
		{Name: "Flexão de Braço", Sets: 3, Reps: "10-15", Tips: "Corpo alinhado, desça até o peito quase tocar o chão."},
		plank,
	}
}

func gymExercises(f workoutFlags) []types.Exercise {
	squat := types.Exercise{Name: "Agachamento Livre", Sets: 3, Reps: "8-12", Tips: "Core ativado, coluna reta."}
	if f.knee {
		squat = types.Exercise{Name: "Leg Press 45°", Sets: 3, Reps: "8-12", Tips: "Costas apoiadas, cuidado com os joelhos."}
	}
	press := types.Exercise{Name: "Leg Press", Sets: 3, Reps: "10-15", Tips: "Não trave os joelhos."}
	if f.back {
		press = types.Exercise{Name: "Cadeira Extensora", Sets: 3, Reps: "10-15", Tips: "Movimento controlado."}
	}
	return []types.Exercise{
		squat,
		press,
		{Name: "Cadeira Extensora", Sets: 3, Reps: "12-15", Tips: "Controle o movimento, sem balançar."},
		{Name: "Stiff", Sets: 3, Reps: "10-12", Tips: "Joelhos levemente flexionados."},
		plank,
	}
}

// buildWorkoutPlan is the deterministic rule-based plan.
func buildWorkoutPlan(location, limitations string) types.WorkoutPlan {
	f := parseWorkoutFlags(location, limitations)
	exercises := homeExercises()
	if !f.home {
		exercises = gymExercises(f)
	}
	feedback := []string{"Treino focado em fortalecer a parte inferior e core."}
	if f.knee {
		feedback = append(feedback, "Exercícios adaptados para proteger seus joelhos.")
	}
	if f.back {
		feedback = append(feedback, "Exercícios adaptados para proteger sua lombar.")
	}
	if f.home {
		feedback = append(feedback, "Adaptado para casa, usando peso corporal.")
	}
	return types.WorkoutPlan{
		Title:     "Treino A - Inferiores e Core",
		Focus:     "Força e Estabilidade",
		Exercises: exercises,
		Feedback:  strings.Join(feedback, " "),
	}
}

func (s *Service) simulateWorkout(ctx context.Context, req WorkoutRequest) (types.WorkoutPlan, error) {
	if err := s.sleep(ctx); err != nil {
		return types.WorkoutPlan{}, err
	}
	return buildWorkoutPlan(req.TrainingLocation, req.Limitations), nil
}

// sleep waits the simulated latency unless ctx ends first.
func (s *Service) sleep(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// intBetween returns a uniform integer in [lo, hi].
func (s *Service) intBetween(lo, hi int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return lo + s.rng.IntN(hi-lo+1)
}
