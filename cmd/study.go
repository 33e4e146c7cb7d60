package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eduwiki/eduwiki/internal/app"
	"github.com/eduwiki/eduwiki/internal/catalog"
	"github.com/eduwiki/eduwiki/internal/i18n"
	"github.com/eduwiki/eduwiki/internal/search"
	"github.com/eduwiki/eduwiki/internal/session"
	"github.com/eduwiki/eduwiki/internal/ui/components"
	"github.com/eduwiki/eduwiki/internal/ui/theme"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Start an interactive study session",
	Args:  cobra.NoArgs,
	RunE:  runStudy,
}

func runStudy(cmd *cobra.Command, _ []string) error {
	e := bootstrap(cmd.Context())
	defer e.Close()

	s := newStudySession(cmd.Context(), output(cmd), cmd.InOrStdin(), e.svc)
	return s.run()
}

const studyHelp = `Commands:
  topics [category]   %s: list categories or one category's topics
  featured            show six random topics
  search <query>      %s
  learn <topic>       %s: select a topic and read its material
  wiki [topic]        Wikipedia summary of a topic (default: selected)
  bookmark [topic]    save a topic (default: selected)
  done                mark the selected topic as studied
  quiz [topic]        %s (default: selected)
  random              quiz on a random topic
  stats               %s
  lang [code]         list languages or switch language
  help                show this help
  quit                leave`

// studySession is the interactive loop behind the study command. It owns one
// session.State for the lifetime of the process.
type studySession struct {
	ctx   context.Context
	w     io.Writer
	in    *bufio.Scanner
	svc   *app.Services
	state *session.State
}

func newStudySession(ctx context.Context, w io.Writer, r io.Reader, svc *app.Services) *studySession {
	st := session.New()
	st.SetLanguage(svc.Language)
	return &studySession{ctx: ctx, w: w, in: bufio.NewScanner(r), svc: svc, state: st}
}

func (s *studySession) t(key string) string {
	return s.svc.Strings.T(s.state.Language, key)
}

func (s *studySession) run() error {
	fmt.Fprintln(s.w, theme.Title.Render("🌟 EduWiki"))
	fmt.Fprintln(s.w, theme.Subtitle.Render(fmt.Sprintf("%d topics • %s • type 'help' for commands",
		s.svc.Catalog.TopicCount(), s.svc.Strings.Name(s.state.Language))))

	for {
		fmt.Fprintf(s.w, "\n%s %d | %s %d > ", s.t(i18n.KeyLevel), s.state.Level(), s.t(i18n.KeyScore), s.state.Score)
		if !s.in.Scan() {
			fmt.Fprintln(s.w)
			return s.in.Err()
		}
		quit, err := s.dispatch(s.in.Text())
		if err != nil {
			fmt.Fprintln(s.w, theme.Incorrect.Render(err.Error()))
		}
		if quit {
			return nil
		}
	}
}

var errNoSelection = errors.New("no topic selected; use 'learn <topic>' first")

// orSelected returns arg, or the selected topic when arg is empty.
func (s *studySession) orSelected(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if s.state.SelectedTopic == "" {
		return "", errNoSelection
	}
	return s.state.SelectedTopic, nil
}

func (s *studySession) dispatch(line string) (quit bool, err error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "":
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprintf(s.w, studyHelp+"\n", s.t(i18n.KeyExplore), s.t(i18n.KeySearch),
			s.t(i18n.KeyLearn), s.t(i18n.KeyQuiz), s.t(i18n.KeyAnalytics))
	case "topics":
		return false, s.topics(arg)
	case "featured":
		for _, t := range s.svc.Catalog.Featured(s.svc.Rand, 6) {
			fmt.Fprintf(s.w, "  • %s\n", t)
		}
	case "search":
		fmt.Fprint(s.w, components.SearchResults(arg, search.Search(arg, s.svc.Catalog), s.svc.Catalog))
	case "learn":
		if arg == "" {
			return false, errors.New("usage: learn <topic>")
		}
		s.state.SelectTopic(arg)
		fmt.Fprint(s.w, components.Record(s.svc.Content.Generate(arg)))
	case "wiki":
		topic, err := s.orSelected(arg)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(s.w, theme.Hint.Render("Fetching Wikipedia content..."))
		sum, ok := s.svc.Lookup.Lookup(s.ctx, topic)
		fmt.Fprint(s.w, components.Summary(topic, sum, ok))
	case "bookmark", "save":
		topic, err := s.orSelected(arg)
		if err != nil {
			return false, err
		}
		if s.state.Bookmark(topic) {
			fmt.Fprintln(s.w, theme.Correct.Render("🔖 Saved "+topic))
		} else {
			fmt.Fprintln(s.w, theme.Hint.Render(topic+" is already bookmarked"))
		}
	case "done":
		topic, err := s.orSelected("")
		if err != nil {
			return false, err
		}
		points := s.state.CompleteTopic(topic, s.state.Level())
		fmt.Fprintln(s.w, theme.Correct.Render(fmt.Sprintf("🎉 +%d points!", points)))
	case "quiz":
		topic, err := s.orSelected(arg)
		if err != nil {
			return false, err
		}
		return false, s.quiz(topic)
	case "random":
		return false, s.quiz(s.svc.Catalog.RandomTopic(s.svc.Rand))
	case "stats":
		fmt.Fprintln(s.w, theme.Title.Render("📈 "+s.t(i18n.KeyAnalytics)))
		fmt.Fprint(s.w, components.Dashboard(s.state.Snapshot(), s.svc.Strings))
	case "lang", "language":
		return false, s.language(arg)
	default:
		return false, fmt.Errorf("unknown command %q; type 'help'", name)
	}
	return false, nil
}

func (s *studySession) topics(category string) error {
	cats := s.svc.Catalog.Categories()
	if category == "" {
		for _, c := range cats {
			fmt.Fprintf(s.w, "  %s %s\n", theme.Heading.Render(c.Name), theme.Subtitle.Render(fmt.Sprintf("(%d)", len(c.Topics))))
		}
		return nil
	}
	for _, c := range cats {
		if strings.EqualFold(c.Name, category) {
			fmt.Fprint(s.w, components.Categories([]catalog.Category{c}))
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", category)
}

func (s *studySession) quiz(topic string) error {
	s.state.StartQuiz(topic, s.svc.Quizzes.Generate(topic))
	_, err := takeQuiz(s.w, s.in, s.state)
	return err
}

func (s *studySession) language(code string) error {
	if code == "" {
		for _, l := range s.svc.Strings.Languages() {
			marker := " "
			if l.Code == s.state.Language {
				marker = "*"
			}
			fmt.Fprintf(s.w, " %s %s %-3s %s\n", marker, l.Flag, l.Code, l.Name)
		}
		return nil
	}
	norm, ok := s.svc.Strings.Normalize(code)
	if !ok {
		return fmt.Errorf("unsupported language %q", code)
	}
	s.state.SetLanguage(norm)
	fmt.Fprintln(s.w, theme.Correct.Render("🌐 "+s.svc.Strings.Name(norm)))
	return nil
}
