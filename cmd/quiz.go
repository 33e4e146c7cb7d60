package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eduwiki/eduwiki/internal/quiz"
	"github.com/eduwiki/eduwiki/internal/session"
	"github.com/eduwiki/eduwiki/internal/ui/components"
	"github.com/eduwiki/eduwiki/internal/ui/theme"
)

var quizCmd = &cobra.Command{
	Use:   "quiz [topic]",
	Short: "Take a quiz on a topic",
	Long: `Generate a short quiz on a topic and answer it interactively.

Multiple-choice questions accept the option number or its text.
Use --random to let EduWiki pick the topic.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		random, _ := cmd.Flags().GetBool("random")
		svc := coreServices()

		topic := topicArg(args)
		switch {
		case random:
			topic = svc.Catalog.RandomTopic(svc.Rand)
		case topic == "":
			return errors.New("a topic is required (or use --random)")
		}

		st := session.New()
		st.StartQuiz(topic, svc.Quizzes.Generate(topic))
		_, err := takeQuiz(output(cmd), bufio.NewScanner(cmd.InOrStdin()), st)
		return err
	},
}

func init() {
	quizCmd.Flags().Bool("random", false, "Quiz on a randomly chosen topic")
}

// takeQuiz asks every question of the session's active quiz, then submits
// the answers. Empty answers are skipped; closed input submits what was
// answered so far.
func takeQuiz(w io.Writer, in *bufio.Scanner, st *session.State) (quiz.GradeResult, error) {
	aq := st.ActiveQuiz
	if aq == nil {
		return quiz.GradeResult{}, session.ErrNoActiveQuiz
	}

	fmt.Fprintln(w, theme.Title.Render("🧠 Quiz: "+aq.Topic))
	answers := make(map[int]string, len(aq.Questions))
	for i, q := range aq.Questions {
		fmt.Fprint(w, "\n"+components.Question(i+1, len(aq.Questions), q))
		fmt.Fprint(w, "Your answer: ")
		if !in.Scan() {
			fmt.Fprintln(w, "\n(input closed)")
			break
		}
		answer := resolveAnswer(in.Text(), q)
		if answer == "" {
			fmt.Fprintln(w, theme.Hint.Render("(skipped)"))
			continue
		}
		answers[i] = answer
		fmt.Fprint(w, components.Feedback(quiz.CheckAnswer(answer, q), q))
	}

	res, err := st.SubmitQuiz(answers)
	if err != nil {
		return res, err
	}
	fmt.Fprint(w, "\n"+components.Grade(res))
	return res, nil
}
