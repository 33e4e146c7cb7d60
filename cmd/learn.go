package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eduwiki/eduwiki/internal/ui/components"
	"github.com/eduwiki/eduwiki/internal/ui/theme"
)

var learnCmd = &cobra.Command{
	Use:   "learn <topic>",
	Short: "Show study material for a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		withWiki, _ := cmd.Flags().GetBool("wiki")
		topic := topicArg(args)
		w := output(cmd)

		if !withWiki {
			fmt.Fprint(w, components.Record(coreServices().Content.Generate(topic)))
			return nil
		}

		e := bootstrap(cmd.Context())
		defer e.Close()

		fmt.Fprint(w, components.Record(e.svc.Content.Generate(topic)))
		fmt.Fprintln(w, theme.Hint.Render("Fetching Wikipedia content..."))
		s, ok := e.svc.Lookup.Lookup(cmd.Context(), topic)
		fmt.Fprint(w, components.Summary(topic, s, ok))
		return nil
	},
}

var wikiCmd = &cobra.Command{
	Use:   "wiki <topic>",
	Short: "Look up the encyclopedia summary of a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := topicArg(args)
		e := bootstrap(cmd.Context())
		defer e.Close()

		s, ok := e.svc.Lookup.Lookup(cmd.Context(), topic)
		fmt.Fprint(output(cmd), components.Summary(topic, s, ok))
		return nil
	},
}

func init() {
	learnCmd.Flags().Bool("wiki", false, "Also fetch the Wikipedia summary")
}
