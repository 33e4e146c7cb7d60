package session

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/eduwiki/eduwiki/internal/quiz"
)

// DefaultLanguage is the language code every new session starts with.
const DefaultLanguage = "en"

// dateLayout formats quiz history dates.
const dateLayout = "2006-01-02"

// ErrNoActiveQuiz is returned by SubmitQuiz when no quiz was started.
var ErrNoActiveQuiz = errors.New("no active quiz")

// QuizRecord is one completed quiz in the session history.
type QuizRecord struct {
	Topic      string  `json:"topic"`
	Percentage float64 `json:"percentage"`
	Points     int     `json:"points"`
	Date       string  `json:"date"`
}

// LearningRecord is one topic marked as studied.
type LearningRecord struct {
	Topic     string    `json:"topic"`
	Timestamp time.Time `json:"timestamp"`
	Points    int       `json:"points"`
}

// ActiveQuiz is a quiz that has been generated but not yet submitted.
type ActiveQuiz struct {
	Topic     string          `json:"topic"`
	Questions []quiz.Question `json:"questions"`
}

// State is the mutable progress of one learner. It is owned by a single
// user at a time and is not safe for concurrent use; Registry serialises
// access when sessions are shared across goroutines.
type State struct {
	ID string

	// Score is the cumulative points total. Never negative.
	Score int

	// Bookmarks holds saved topics in insertion order, without duplicates.
	Bookmarks []string

	QuizHistory     []QuizRecord
	LearningHistory []LearningRecord

	// SelectedTopic is the topic currently being studied ("" if none).
	SelectedTopic string

	// ActiveQuiz is the quiz awaiting submission (nil if none).
	ActiveQuiz *ActiveQuiz

	Language string

	CreatedAt time.Time

	now func() time.Time
}

// Option configures a new State.
type Option func(*State)

// WithClock overrides the time source used for history timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// WithID sets the session ID instead of generating one.
func WithID(id string) Option {
	return func(s *State) { s.ID = id }
}

// New creates a session with zero score, empty history and the default
// language.
func New(opts ...Option) *State {
	s := &State{
		Language: DefaultLanguage,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.CreatedAt = s.now()
	return s
}

// Bookmark saves topic unless it is already saved. It reports whether the
// bookmark list changed.
func (s *State) Bookmark(topic string) bool {
	if slices.Contains(s.Bookmarks, topic) {
		return false
	}
	s.Bookmarks = append(s.Bookmarks, topic)
	return true
}

// CompleteTopic awards 30 + 5×currentLevel points for studying topic and
// appends a learning record. It returns the points awarded.
func (s *State) CompleteTopic(topic string, currentLevel int) int {
	points := CompletionPoints(currentLevel)
	s.Score += points
	s.LearningHistory = append(s.LearningHistory, LearningRecord{
		Topic:     topic,
		Timestamp: s.now(),
		Points:    points,
	})
	return points
}

// RecordQuiz appends a quiz result and adds score to the cumulative total.
func (s *State) RecordQuiz(topic string, score, total int, date time.Time) QuizRecord {
	var pct float64
	if total > 0 {
		pct = float64(score) / float64(total) * 100
	}
	rec := QuizRecord{
		Topic:      topic,
		Percentage: pct,
		Points:     score,
		Date:       date.Format(dateLayout),
	}
	s.QuizHistory = append(s.QuizHistory, rec)
	s.Score += score
	return rec
}

// Level returns the learner's current level.
func (s *State) Level() int {
	return Level(s.Score)
}

// LevelProgress returns the fraction of the current level completed, in [0, 1).
func (s *State) LevelProgress() float64 {
	return float64(s.Score%pointsPerLevel) / pointsPerLevel
}

// SelectTopic makes topic the one being studied.
func (s *State) SelectTopic(topic string) {
	s.SelectedTopic = topic
}

// SetLanguage switches the interface language code.
func (s *State) SetLanguage(code string) {
	s.Language = code
}

// StartQuiz replaces any active quiz with questions for topic.
func (s *State) StartQuiz(topic string, questions []quiz.Question) {
	s.ActiveQuiz = &ActiveQuiz{Topic: topic, Questions: questions}
}

// SubmitQuiz grades the active quiz, records the result dated today and
// clears the quiz.
func (s *State) SubmitQuiz(answers map[int]string) (quiz.GradeResult, error) {
	if s.ActiveQuiz == nil {
		return quiz.GradeResult{}, ErrNoActiveQuiz
	}
	res := quiz.Grade(s.ActiveQuiz.Questions, answers)
	s.RecordQuiz(s.ActiveQuiz.Topic, res.Score, res.Total, s.now())
	s.ActiveQuiz = nil
	return res, nil
}

// RecentBookmarks returns up to n of the most recently saved bookmarks,
// oldest first.
func (s *State) RecentBookmarks(n int) []string {
	return lastN(s.Bookmarks, n)
}

// RecentQuizzes returns up to n of the most recent quiz results, oldest first.
func (s *State) RecentQuizzes(n int) []QuizRecord {
	return lastN(s.QuizHistory, n)
}

func lastN[T any](items []T, n int) []T {
	if n <= 0 {
		return nil
	}
	if len(items) > n {
		items = items[len(items)-n:]
	}
	return slices.Clone(items)
}
