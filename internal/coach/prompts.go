package coach

import (
	"fmt"
	"strconv"
	"strings"
)

const bodyPrompt = `Você é um personal trainer e nutricionista profissional analisando a foto corporal de um cliente.

Dados do cliente:
- Idade: %d anos
- Altura: %d cm
- Peso: %d kg
- IMC calculado: %s

Analise a foto e retorne EXATAMENTE um JSON com esta estrutura (sem markdown, sem blocos de código):
{
  "estimated_fat_percentage": <número entre 8 e 45>,
  "estimated_biotype": "<Ectomorfo, Mesomorfo ou Endomorfo>",
  "suggested_goal": "<meta principal sugerida em português>",
  "feedback": "<feedback detalhado e motivacional em português, 2-3 frases>"
}

Seja preciso na estimativa do percentual de gordura baseado na imagem.
O feedback deve ser profissional, motivacional e em português brasileiro.`

const mealPrompt = `Você é um nutricionista profissional analisando a foto de uma refeição.

Analise a refeição na imagem e retorne EXATAMENTE um JSON com esta estrutura (sem markdown, sem blocos de código):
{
  "total_calories": <número estimado de calorias>,
  "macros": {
    "protein": <gramas de proteína>,
    "carbs": <gramas de carboidratos>,
    "fat": <gramas de gordura>
  },
  "feedback": "<feedback nutricional detalhado em português, 2-3 frases com dicas>",
  "meal_type": "<tipo da refeição - ex: Almoço - Frango Grelhado com Arroz>"
}

Seja preciso nas estimativas baseado no que vê na imagem.
O feedback deve incluir sugestões práticas em português brasileiro.`

const workoutPrompt = `Você é um personal trainer profissional criando um treino personalizado.

Informações do cliente:
- Local de treino: %s
- Limitações/lesões: %s
%s
Crie um plano de treino e retorne EXATAMENTE um JSON com esta estrutura (sem markdown, sem blocos de código):
{
  "title": "<nome do treino - ex: Treino A - Superiores>",
  "focus": "<foco principal - ex: Força e Hipertrofia>",
  "exercises": [
    {
      "name": "<nome do exercício>",
      "sets": <número de séries>,
      "reps": "<repetições - ex: 8-12>",
      "tips": "<dica de execução em português>"
    }
  ],
  "feedback": "<observações gerais sobre o treino, 2-3 frases em português>"
}

Inclua 4-6 exercícios. Adapte ao local e respeite as limitações.
Se treina em casa, use exercícios com peso corporal.
As dicas devem ser práticas e em português brasileiro.`

func buildBodyPrompt(req BodyRequest) string {
	bmi := strconv.FormatFloat(BMI(req.Weight, req.Height), 'f', 1, 64)
	return fmt.Sprintf(bodyPrompt, req.Age, req.Height, req.Weight, bmi)
}

func buildMealPrompt() string { return mealPrompt }

func buildWorkoutPrompt(req WorkoutRequest) string {
	limitations := strings.TrimSpace(req.Limitations)
	if limitations == "" {
		limitations = "Nenhuma informada"
	}
	var extra string
	if uc := strings.TrimSpace(req.UserContext); uc != "" {
		extra = "- Contexto adicional: " + uc + "\n"
	}
	return fmt.Sprintf(workoutPrompt, strings.TrimSpace(req.TrainingLocation), limitations, extra)
}
