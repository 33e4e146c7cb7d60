package api

import (
	"errors"
	"net/http"

	"github.com/eduwiki/eduwiki/internal/quiz"
	"github.com/eduwiki/eduwiki/internal/session"
)

// questionView hides the stored answer from clients.
type questionView struct {
	Index   int               `json:"index"`
	Text    string            `json:"question"`
	Type    quiz.QuestionType `json:"type"`
	Options []string          `json:"options,omitempty"`
	Points  int               `json:"points"`
}

type quizView struct {
	Topic       string         `json:"topic"`
	Questions   []questionView `json:"questions"`
	TotalPoints int            `json:"total_points"`
}

func newQuizView(aq *session.ActiveQuiz) *quizView {
	if aq == nil {
		return nil
	}
	v := &quizView{
		Topic:       aq.Topic,
		Questions:   make([]questionView, len(aq.Questions)),
		TotalPoints: quiz.TotalPoints(aq.Questions),
	}
	for i, q := range aq.Questions {
		v.Questions[i] = questionView{Index: i, Text: q.Text, Type: q.Type, Options: q.Options, Points: q.Points}
	}
	return v
}

type sessionView struct {
	session.Snapshot
	ActiveQuiz            *quizView `json:"active_quiz,omitempty"`
	AverageQuizPercentage float64   `json:"average_quiz_percentage"`
}

func newSessionView(snap session.Snapshot) sessionView {
	return sessionView{
		Snapshot:              snap,
		ActiveQuiz:            newQuizView(snap.ActiveQuiz),
		AverageQuizPercentage: snap.AverageQuizPercentage(),
	}
}

type topicRequest struct {
	Topic string `json:"topic"`
}

type quizRequest struct {
	Topic  string `json:"topic"`
	Random bool   `json:"random"`
}

type submitRequest struct {
	Answers map[int]string `json:"answers"`
}

type languageRequest struct {
	Language string `json:"language"`
}

// sessionError maps registry and state errors onto responses. It reports
// whether err was handled.
func sessionError(w http.ResponseWriter, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, session.ErrNotFound):
		respondError(w, http.StatusNotFound, "session_not_found", "session not found")
	case errors.Is(err, session.ErrNoActiveQuiz):
		respondError(w, http.StatusConflict, "no_active_quiz", "no quiz has been started")
	case errors.Is(err, errNoTopic):
		respondError(w, http.StatusBadRequest, "validation_error", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "session update failed")
	}
	return true
}

var errNoTopic = errors.New("topic is required when no topic is selected")

// resolveTopic prefers the requested topic, then the session's selected one.
func resolveTopic(requested string, st *session.State) (string, error) {
	if requested != "" {
		return requested, nil
	}
	if st.SelectedTopic != "" {
		return st.SelectedTopic, nil
	}
	return "", errNoTopic
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	snap := s.sessions.Create()
	if s.svc.Language != session.DefaultLanguage {
		_ = s.sessions.With(snap.ID, func(st *session.State) error {
			st.SetLanguage(s.svc.Language)
			snap = st.Snapshot()
			return nil
		})
	}
	s.logger.InfoContext(r.Context(), "session created", "session_id", snap.ID)
	respondJSON(w, http.StatusCreated, newSessionView(snap))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	snap, err := s.sessions.Get(pathParam(r, "id"))
	if sessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, newSessionView(snap))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	if sessionError(w, s.sessions.Delete(id)) {
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"id": id, "status": "deleted"})
}

func (s *Server) handleSelectTopic(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Topic == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "topic is required")
		return
	}
	if !s.svc.Catalog.Contains(req.Topic) {
		respondError(w, http.StatusNotFound, "topic_not_found", "unknown topic: "+req.Topic)
		return
	}

	var snap session.Snapshot
	err := s.sessions.With(pathParam(r, "id"), func(st *session.State) error {
		st.SelectTopic(req.Topic)
		snap = st.Snapshot()
		return nil
	})
	if sessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, newSessionView(snap))
}

func (s *Server) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	code, ok := s.svc.Strings.Normalize(req.Language)
	if !ok {
		respondError(w, http.StatusBadRequest, "unsupported_language", "language is not supported")
		return
	}

	var snap session.Snapshot
	err := s.sessions.With(pathParam(r, "id"), func(st *session.State) error {
		st.SetLanguage(code)
		snap = st.Snapshot()
		return nil
	})
	if sessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, newSessionView(snap))
}

func (s *Server) handleBookmark(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	var (
		added     bool
		bookmarks []string
	)
	err := s.sessions.With(pathParam(r, "id"), func(st *session.State) error {
		topic, err := resolveTopic(req.Topic, st)
		if err != nil {
			return err
		}
		added = st.Bookmark(topic)
		bookmarks = st.Snapshot().Bookmarks
		return nil
	})
	if sessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"added":     added,
		"bookmarks": bookmarks,
	})
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	var (
		points int
		snap   session.Snapshot
	)
	err := s.sessions.With(pathParam(r, "id"), func(st *session.State) error {
		topic, err := resolveTopic(req.Topic, st)
		if err != nil {
			return err
		}
		points = st.CompleteTopic(topic, st.Level())
		snap = st.Snapshot()
		return nil
	})
	if sessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"points":  points,
		"session": newSessionView(snap),
	})
}

func (s *Server) handleStartQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	var view *quizView
	err := s.sessions.With(pathParam(r, "id"), func(st *session.State) error {
		topic := req.Topic
		if req.Random {
			topic = s.svc.Catalog.RandomTopic(s.svc.Rand)
		}
		topic, err := resolveTopic(topic, st)
		if err != nil {
			return err
		}
		st.StartQuiz(topic, s.svc.Quizzes.Generate(topic))
		view = newQuizView(st.ActiveQuiz)
		return nil
	})
	if sessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, view)
}

func (s *Server) handleSubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	var (
		result quiz.GradeResult
		snap   session.Snapshot
	)
	err := s.sessions.With(pathParam(r, "id"), func(st *session.State) error {
		var err error
		result, err = st.SubmitQuiz(req.Answers)
		snap = st.Snapshot()
		return err
	})
	if sessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"result":  result,
		"verdict": quiz.VerdictFor(result.Percentage),
		"session": newSessionView(snap),
	})
}
