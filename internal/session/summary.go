package session

import (
	"slices"
	"time"

	"github.com/eduwiki/eduwiki/internal/quiz"
)

// Snapshot is a read-only copy of a session for display and analytics.
type Snapshot struct {
	ID              string           `json:"id"`
	Score           int              `json:"score"`
	Level           int              `json:"level"`
	LevelProgress   float64          `json:"level_progress"`
	Language        string           `json:"language"`
	SelectedTopic   string           `json:"selected_topic,omitempty"`
	Bookmarks       []string         `json:"bookmarks"`
	QuizHistory     []QuizRecord     `json:"quiz_history"`
	LearningHistory []LearningRecord `json:"learning_history"`
	ActiveQuiz      *ActiveQuiz      `json:"active_quiz,omitempty"`
	TopicsStudied   int              `json:"topics_studied"`
	QuizzesTaken    int              `json:"quizzes_taken"`
	CreatedAt       time.Time        `json:"created_at"`
}

// Snapshot returns a copy of the session that shares no mutable state with it.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		ID:              s.ID,
		Score:           s.Score,
		Level:           s.Level(),
		LevelProgress:   s.LevelProgress(),
		Language:        s.Language,
		SelectedTopic:   s.SelectedTopic,
		Bookmarks:       nonNil(slices.Clone(s.Bookmarks)),
		QuizHistory:     nonNil(slices.Clone(s.QuizHistory)),
		LearningHistory: nonNil(slices.Clone(s.LearningHistory)),
		TopicsStudied:   len(s.LearningHistory),
		QuizzesTaken:    len(s.QuizHistory),
		CreatedAt:       s.CreatedAt,
	}
	if s.ActiveQuiz != nil {
		questions := make([]quiz.Question, len(s.ActiveQuiz.Questions))
		for i, q := range s.ActiveQuiz.Questions {
			q.Options = slices.Clone(q.Options)
			questions[i] = q
		}
		snap.ActiveQuiz = &ActiveQuiz{Topic: s.ActiveQuiz.Topic, Questions: questions}
	}
	return snap
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// AverageQuizPercentage is the mean percentage across the quiz history, or
// 0 when no quiz has been taken.
func (s Snapshot) AverageQuizPercentage() float64 {
	if len(s.QuizHistory) == 0 {
		return 0
	}
	var sum float64
	for _, q := range s.QuizHistory {
		sum += q.Percentage
	}
	return sum / float64(len(s.QuizHistory))
}
