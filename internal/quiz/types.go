package quiz

// QuestionType describes how the learner answers a question.
type QuestionType string

const (
	// TypeMultipleChoice means the learner picks one of Options.
	TypeMultipleChoice QuestionType = "multiple_choice"

	// TypeFillBlank means the learner types a single word.
	TypeFillBlank QuestionType = "fill_blank"
)

// Question is one generated quiz question.
type Question struct {
	// Text is the prompt shown to the learner.
	Text string `json:"question"`

	Type QuestionType `json:"type"`

	// Options is populated only for multiple-choice questions.
	Options []string `json:"options,omitempty"`

	// Answer is the stored correct answer. For multiple choice it is the
	// exact text of one of Options.
	Answer string `json:"answer"`

	Points int `json:"points"`
}

// GradeResult is the outcome of grading a full quiz.
type GradeResult struct {
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// TotalPoints sums the point values of questions.
func TotalPoints(questions []Question) int {
	total := 0
	for _, q := range questions {
		total += q.Points
	}
	return total
}
