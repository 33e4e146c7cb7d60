package components

import (
	"fmt"
	"strings"

	"github.com/eduwiki/eduwiki/internal/catalog"
	"github.com/eduwiki/eduwiki/internal/content"
	"github.com/eduwiki/eduwiki/internal/encyclopedia"
	"github.com/eduwiki/eduwiki/internal/i18n"
	"github.com/eduwiki/eduwiki/internal/quiz"
	"github.com/eduwiki/eduwiki/internal/session"
	"github.com/eduwiki/eduwiki/internal/ui/theme"
)

const (
	recentItems   = 5
	progressWidth = 24
)

// Categories renders each category heading followed by its topics.
func Categories(cats []catalog.Category) string {
	var b strings.Builder
	for i, c := range cats {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s\n", theme.Heading.Render(c.Name), theme.Subtitle.Render(fmt.Sprintf("(%d)", len(c.Topics))))
		for _, t := range c.Topics {
			fmt.Fprintf(&b, "  • %s\n", t)
		}
	}
	return b.String()
}

// SearchResults renders the topics found for query.
func SearchResults(query string, results []string, c *catalog.Catalog) string {
	if len(results) == 0 {
		return theme.Hint.Render(fmt.Sprintf("No topics match %q.", query)) + "\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", theme.Subtitle.Render(fmt.Sprintf("Results for %q (%d)", query, len(results))))
	for _, t := range results {
		fmt.Fprintf(&b, "  • %s %s\n", t, theme.Hint.Render(c.CategoryOf(t)))
	}
	return b.String()
}

// Record renders generated study material as a card.
func Record(rec content.Record) string {
	meta := fmt.Sprintf("Category: %s | Level: %s | Time: %s", rec.Category, rec.Difficulty, rec.EstimatedTime)
	body := strings.Join([]string{
		theme.Title.Render("📖 " + rec.Title),
		theme.Subtitle.Render(meta),
		"",
		theme.Body.Render(rec.Body),
	}, "\n")
	return theme.Card.Render(body) + "\n"
}

// Summary renders an encyclopedia summary, or a notice when none exists.
func Summary(topic string, s encyclopedia.Summary, ok bool) string {
	if !ok {
		return theme.Caution.Render("Could not fetch Wikipedia content.") + "\n" +
			theme.Hint.Render("Try the direct link: "+encyclopedia.PageURL(topic)) + "\n"
	}
	lines := []string{
		theme.Heading.Render("📝 Wikipedia Summary: " + s.Title),
		theme.Body.Render(s.Extract),
	}
	if s.PageURL != "" {
		lines = append(lines, theme.Link.Render(s.PageURL))
	}
	if s.Source == encyclopedia.SourceAI {
		lines = append(lines, theme.Hint.Render("Generated summary; verify against the article."))
	}
	return theme.Card.Render(strings.Join(lines, "\n")) + "\n"
}

// Question renders the n-th of total questions with numbered options.
func Question(n, total int, q quiz.Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", theme.Heading.Render(fmt.Sprintf("Question %d/%d", n, total)),
		theme.Subtitle.Render(fmt.Sprintf("(%d points)", q.Points)))
	fmt.Fprintf(&b, "%s\n", q.Text)
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "  %d) %s\n", i+1, opt)
	}
	return b.String()
}

// Feedback renders the outcome of a single answer.
func Feedback(correct bool, q quiz.Question) string {
	if correct {
		return theme.Correct.Render("✓ Correct!") + "\n"
	}
	return theme.Incorrect.Render("✗ Wrong.") + " Answer: " + q.Answer + "\n"
}

// Grade renders the final quiz result with its verdict.
func Grade(res quiz.GradeResult) string {
	line := fmt.Sprintf("%d/%d (%.0f%%)", res.Score, res.Total, res.Percentage)
	switch quiz.VerdictFor(res.Percentage) {
	case quiz.VerdictExcellent:
		return theme.Correct.Render("🌟 Excellent! "+line) + "\n"
	case quiz.VerdictGood:
		return theme.Correct.Render("👍 Good! "+line) + "\n"
	default:
		return theme.Caution.Render("📚 Keep practicing! "+line) + "\n"
	}
}

// Dashboard renders a session's level, score and recent activity using the
// session's interface language for labels.
func Dashboard(snap session.Snapshot, bundle *i18n.Bundle) string {
	t := func(key string) string { return bundle.T(snap.Language, key) }

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s   %s %s\n",
		theme.Badge.Render(t(i18n.KeyLevel)), theme.Body.Render(fmt.Sprint(snap.Level)),
		theme.Badge.Render(t(i18n.KeyScore)), theme.Body.Render(fmt.Sprint(snap.Score)))
	fmt.Fprintf(&b, "%s\n\n", NewProgressBar("", snap.LevelProgress, true, progressWidth).View())

	fmt.Fprintf(&b, "Topics studied: %d   Quizzes taken: %d   Bookmarks: %d\n",
		snap.TopicsStudied, snap.QuizzesTaken, len(snap.Bookmarks))

	if n := len(snap.Bookmarks); n > 0 {
		b.WriteString("\n" + theme.Heading.Render("🔖 Bookmarks") + "\n")
		for _, bm := range snap.Bookmarks[max(0, n-recentItems):] {
			fmt.Fprintf(&b, "  • %s\n", bm)
		}
	}

	if n := len(snap.QuizHistory); n > 0 {
		b.WriteString("\n" + theme.Heading.Render("📋 Recent Activity") + "\n")
		for _, q := range snap.QuizHistory[max(0, n-recentItems):] {
			fmt.Fprintf(&b, "  📖 %-28s 🎯 %3.0f%%  📅 %s\n", q.Topic, q.Percentage, q.Date)
		}
		fmt.Fprintf(&b, "  %s\n", theme.Subtitle.Render(fmt.Sprintf("Average: %.0f%%", snap.AverageQuizPercentage())))
	} else {
		b.WriteString("\n" + theme.Hint.Render("🚀 Start learning and taking quizzes to see your analytics!") + "\n")
	}
	return b.String()
}
