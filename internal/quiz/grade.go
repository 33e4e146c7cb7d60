package quiz

import "strings"

// CheckAnswer reports whether answer is correct for q.
//
// Fill-in-blank answers are trimmed and compared case-insensitively.
// Multiple-choice answers must match the stored option exactly.
func CheckAnswer(answer string, q Question) bool {
	switch q.Type {
	case TypeFillBlank:
		return strings.ToLower(strings.TrimSpace(answer)) == strings.ToLower(q.Answer)
	default:
		return answer == q.Answer
	}
}

// Grade scores answers against questions. Answers are keyed by 0-based
// question index; a missing answer counts as wrong.
func Grade(questions []Question, answers map[int]string) GradeResult {
	res := GradeResult{Total: TotalPoints(questions)}

	for i, q := range questions {
		answer, ok := answers[i]
		if !ok {
			continue
		}
		if CheckAnswer(answer, q) {
			res.Score += q.Points
		}
	}

	if res.Total > 0 {
		res.Percentage = float64(res.Score) / float64(res.Total) * 100
	}
	return res
}

// Verdict buckets a percentage into feedback tiers.
type Verdict string

const (
	VerdictExcellent Verdict = "excellent"
	VerdictGood      Verdict = "good"
	VerdictPractice  Verdict = "practice"
)

// VerdictFor returns the feedback tier for a quiz percentage.
func VerdictFor(percentage float64) Verdict {
	switch {
	case percentage >= 80:
		return VerdictExcellent
	case percentage >= 60:
		return VerdictGood
	default:
		return VerdictPractice
	}
}
