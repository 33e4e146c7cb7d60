package cmd

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/eduwiki/eduwiki/internal/quiz"
)

// output returns the command's stdout, downsampling colors to what the
// terminal supports and honouring NO_COLOR.
func output(cmd *cobra.Command) io.Writer {
	return colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ())
}

// topicArg joins positional arguments so multi-word topics need no quoting.
func topicArg(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// resolveAnswer lets the learner answer a multiple-choice question with the
// option number instead of its text.
func resolveAnswer(input string, q quiz.Question) string {
	input = strings.TrimSpace(input)
	if q.Type != quiz.TypeMultipleChoice {
		return input
	}
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(q.Options) {
		return q.Options[n-1]
	}
	return input
}
