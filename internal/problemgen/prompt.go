package problemgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/thermoviz/internal/practice"
)

const systemPrompt = `You write numeric practice problems for an introductory high-school thermodynamics course.

Rules:
- Generate a single problem for the given topic and difficulty.
- The problem must have one numeric answer. State every constant the learner needs (masses, specific heats, enthalpies of formation, temperatures).
- Use these reference values when relevant: c(water) = 4.18 J/(g·°C), c(ice) = 2.09 J/(g·°C), c(steam) = 2.01 J/(g·°C), ΔHfus = 334 J/g, ΔHvap = 2260 J/g, k = 1.38 × 10^-23 J/K.
- Write temperatures as "from X°C to Y°C" and masses in g or kg.
- The answer must be correct and expressed in the stated unit (J, kJ or kJ/mol).
- Set tolerance to the rounding a careful student would make, never more than 5% of the answer.
- The hint nudges toward the method without giving the answer.
- The explanation shows the solution step by step.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	topic := input.Topic
	if topic == "" {
		topic = practice.TopicAll
	}
	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = practice.DifficultyMedium
	}

	var b strings.Builder
	if topic == practice.TopicAll {
		b.WriteString("Topic: any of thermal energy, enthalpy, Hess's Law, heating curves, kinetic theory\n")
	} else {
		fmt.Fprintf(&b, "Topic: %s\n", topic.Label())
	}
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))
	return b.String()
}

// buildDedup numbers the most recent max prior questions, or "None".
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	lines := make([]string, len(prior))
	for i, q := range prior {
		lines[i] = fmt.Sprintf("%d. %s", i+1, q)
	}
	return strings.Join(lines, "\n")
}
