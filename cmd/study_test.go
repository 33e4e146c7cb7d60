package cmd

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduwiki/eduwiki/internal/app"
	"github.com/eduwiki/eduwiki/internal/config"
	"github.com/eduwiki/eduwiki/internal/encyclopedia"
	"github.com/eduwiki/eduwiki/internal/quiz"
	"github.com/eduwiki/eduwiki/internal/session"
)

func testServices(t *testing.T) *app.Services {
	t.Helper()
	c := config.Default()
	c.Seed = 3
	return app.New(app.Options{
		Config: c,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Wiki: encyclopedia.SourceFunc(func(_ context.Context, topic string) (encyclopedia.Summary, bool) {
			if topic != "Physics" {
				return encyclopedia.Summary{}, false
			}
			return encyclopedia.Summary{Title: "Physics", Extract: "Physics is a natural science.",
				PageURL: encyclopedia.PageURL(topic), Source: encyclopedia.SourceWikipedia}, true
		}),
	})
}

func runScript(t *testing.T, lines ...string) (*studySession, string) {
	t.Helper()
	var out bytes.Buffer
	s := newStudySession(context.Background(), &out, strings.NewReader(strings.Join(lines, "\n")+"\n"), testServices(t))
	require.NoError(t, s.run())
	return s, out.String()
}

func TestResolveAnswer(t *testing.T) {
	mc := quiz.Question{Type: quiz.TypeMultipleChoice, Options: quiz.Options()}
	fill := quiz.Question{Type: quiz.TypeFillBlank}

	assert.Equal(t, "Innovation and Research", resolveAnswer("1", mc))
	assert.Equal(t, "Historical Development", resolveAnswer(" 4 ", mc))
	assert.Equal(t, "5", resolveAnswer("5", mc))
	assert.Equal(t, "Practical Applications", resolveAnswer("Practical Applications", mc))
	assert.Equal(t, "1", resolveAnswer("1", fill))
}

func TestTopicArg(t *testing.T) {
	assert.Equal(t, "Machine Learning", topicArg([]string{"Machine", "Learning"}))
	assert.Equal(t, "", topicArg(nil))
}

func TestTakeQuiz(t *testing.T) {
	st := session.New()
	_, err := takeQuiz(io.Discard, bufio.NewScanner(strings.NewReader("")), st)
	assert.ErrorIs(t, err, session.ErrNoActiveQuiz)

	questions := []quiz.Question{
		{Text: "q1", Type: quiz.TypeMultipleChoice, Options: quiz.Options(), Answer: "Theoretical Framework", Points: 15},
		{Text: "q2", Type: quiz.TypeFillBlank, Answer: quiz.FillBlankAnswer, Points: 10},
		{Text: "q3", Type: quiz.TypeMultipleChoice, Options: quiz.Options(), Answer: "Innovation and Research", Points: 15},
	}
	st.StartQuiz("Physics", questions)

	var out bytes.Buffer
	res, err := takeQuiz(&out, bufio.NewScanner(strings.NewReader("3\n Research \n\n")), st)
	require.NoError(t, err)
	assert.Equal(t, quiz.GradeResult{Score: 25, Total: 40, Percentage: 62.5}, res)
	assert.Equal(t, 25, st.Score)
	assert.Nil(t, st.ActiveQuiz)
	assert.Contains(t, out.String(), "(skipped)")
	assert.Contains(t, out.String(), "Good!")
}

func TestTakeQuiz_InputClosed(t *testing.T) {
	st := session.New()
	st.StartQuiz("Art", []quiz.Question{
		{Text: "q1", Type: quiz.TypeFillBlank, Answer: quiz.FillBlankAnswer, Points: 10},
		{Text: "q2", Type: quiz.TypeFillBlank, Answer: quiz.FillBlankAnswer, Points: 10},
	})
	var out bytes.Buffer
	res, err := takeQuiz(&out, bufio.NewScanner(strings.NewReader("research\n")), st)
	require.NoError(t, err)
	assert.Equal(t, 10, res.Score)
	assert.Equal(t, 20, res.Total)
	assert.Contains(t, out.String(), "(input closed)")
}

func TestStudy_LearnBookmarkDone(t *testing.T) {
	s, out := runScript(t,
		"done",
		"learn Physics",
		"bookmark",
		"bookmark Physics",
		"done",
		"wiki",
		"wiki Dark Matter",
		"quit",
	)

	assert.Contains(t, out, errNoSelection.Error())
	assert.Contains(t, out, "Saved Physics")
	assert.Contains(t, out, "already bookmarked")
	assert.Contains(t, out, "+35 points!")
	assert.Contains(t, out, "Physics is a natural science.")
	assert.Contains(t, out, "Could not fetch Wikipedia content.")

	snap := s.state.Snapshot()
	assert.Equal(t, []string{"Physics"}, snap.Bookmarks)
	assert.Equal(t, 35, snap.Score)
	assert.Equal(t, "Physics", snap.SelectedTopic)
	assert.Equal(t, 1, snap.TopicsStudied)
}

func TestStudy_QuizAndStats(t *testing.T) {
	s, out := runScript(t, "quiz Chemistry", "1", "research", "1", "stats", "exit")

	assert.Contains(t, out, "Quiz: Chemistry")
	assert.Contains(t, out, "Recent Activity")
	snap := s.state.Snapshot()
	require.Len(t, snap.QuizHistory, 1)
	assert.Equal(t, "Chemistry", snap.QuizHistory[0].Topic)
	assert.GreaterOrEqual(t, snap.Score, quiz.FillBlankPoints)
}

func TestStudy_Language(t *testing.T) {
	s, out := runScript(t, "lang", "lang hi-IN", "lang xx", "help")

	assert.Contains(t, out, "* 🇬🇧 en")
	assert.Contains(t, out, `unsupported language "xx"`)
	assert.Contains(t, out, "स्तर")
	assert.Equal(t, "hi", s.state.Language)
}

func TestStudy_TopicsAndSearch(t *testing.T) {
	_, out := runScript(t, "topics", "topics science", "topics Nowhere", "search machine", "featured", "frobnicate")

	assert.Contains(t, out, "Health & Medicine")
	assert.Contains(t, out, "• Physics")
	assert.Contains(t, out, `unknown category "Nowhere"`)
	assert.Contains(t, out, "Machine Learning")
	assert.Contains(t, out, `unknown command "frobnicate"`)
}
