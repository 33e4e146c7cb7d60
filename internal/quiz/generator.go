package quiz

import "fmt"

const (
	// QuestionsPerQuiz is the number of questions in every generated quiz.
	QuestionsPerQuiz = 3

	MultipleChoicePoints = 15
	FillBlankPoints      = 10

	// FillBlankAnswer is the expected word for every fill-in-blank question.
	FillBlankAnswer = "research"
)

// Options returns the fixed multiple-choice option set in display order.
func Options() []string {
	return []string{
		"Innovation and Research",
		"Practical Applications",
		"Theoretical Framework",
		"Historical Development",
	}
}

var promptTemplates = [...]string{
	"What is the primary focus of %s?",
	"Which field is most closely related to %s?",
	"What are the main applications of %s?",
	"How does %s contribute to modern society?",
	"What skills are essential for understanding %s?",
}

const fillBlankTemplate = "The study of %s primarily involves _____ and analysis."

// Rand is the subset of math/rand/v2 the generator draws from.
type Rand interface {
	IntN(n int) int
}

// Generator builds quizzes from the fixed prompt pool.
type Generator struct {
	rng Rand
}

// NewGenerator returns a Generator drawing from rng.
func NewGenerator(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate samples QuestionsPerQuiz distinct prompts for topic in random
// order. Even positions become multiple-choice questions whose answer is a
// uniformly drawn option; odd positions become the fill-in-blank question.
//
// The multiple-choice answer is not derived from the prompt; any of the four
// options may be the one marked correct.
func (g *Generator) Generate(topic string) []Question {
	n := min(QuestionsPerQuiz, len(promptTemplates))
	order := g.sample(len(promptTemplates), n)

	questions := make([]Question, 0, n)
	for i, idx := range order {
		if i%2 == 0 {
			opts := Options()
			questions = append(questions, Question{
				Text:    fmt.Sprintf(promptTemplates[idx], topic),
				Type:    TypeMultipleChoice,
				Options: opts,
				Answer:  opts[g.rng.IntN(len(opts))],
				Points:  MultipleChoicePoints,
			})
			continue
		}
		questions = append(questions, Question{
			Text:   fmt.Sprintf(fillBlankTemplate, topic),
			Type:   TypeFillBlank,
			Answer: FillBlankAnswer,
			Points: FillBlankPoints,
		})
	}
	return questions
}

// sample draws k distinct indexes from [0, n) without replacement.
func (g *Generator) sample(n, k int) []int {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := range k {
		j := i + g.rng.IntN(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
