package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eduwiki/eduwiki/internal/llm"
	"github.com/eduwiki/eduwiki/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Inspect recorded lookups and LLM requests",
}

var journalLookupsCmd = &cobra.Command{
	Use:   "lookups",
	Short: "List recent encyclopedia lookups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		topic, _ := cmd.Flags().GetString("topic")

		s, err := openJournal()
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLookups(cmd.Context(), store.QueryOpts{Limit: limit, Filter: topic})
		if err != nil {
			return fmt.Errorf("query lookups: %w", err)
		}

		w := output(cmd)
		if len(events) == 0 {
			fmt.Fprintln(w, "No lookups recorded.")
			return nil
		}

		fmt.Fprintf(w, "%-5s  %-19s  %-28s  %-10s  %-7s  %s\n",
			"Seq", "Timestamp", "Topic", "Source", "Ms", "Found")
		fmt.Fprintln(w, strings.Repeat("─", 84))
		for _, e := range events {
			fmt.Fprintf(w, "%-5d  %-19s  %-28s  %-10s  %-7d  %s\n",
				e.Sequence,
				e.Timestamp.Local().Format(timeLayout),
				truncate(e.Topic, 28),
				e.Source,
				e.LatencyMs,
				mark(e.Found),
			)
		}
		return nil
	},
}

var journalLLMCmd = &cobra.Command{
	Use:   "llm",
	Short: "List recent LLM requests with estimated cost",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openJournal()
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Filter: purpose})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		w := output(cmd)
		if len(events) == 0 {
			fmt.Fprintln(w, "No LLM requests recorded.")
			return nil
		}
		printLLMEvents(w, events)
		return nil
	},
}

var journalUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show aggregated LLM token usage by purpose",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openJournal()
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := s.EventRepo().LLMUsageByPurpose(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		w := output(cmd)
		if len(stats) == 0 {
			fmt.Fprintln(w, "No LLM usage recorded yet.")
			return nil
		}

		fmt.Fprintf(w, "%-16s  %6s  %10s  %10s  %10s\n", "Purpose", "Calls", "Input", "Output", "Total")
		fmt.Fprintln(w, strings.Repeat("─", 60))
		var calls, in, out int
		for _, st := range stats {
			fmt.Fprintf(w, "%-16s  %6d  %10d  %10d  %10d\n",
				st.Purpose, st.Requests, st.InputTokens, st.OutputTokens, st.InputTokens+st.OutputTokens)
			calls += st.Requests
			in += st.InputTokens
			out += st.OutputTokens
		}
		fmt.Fprintln(w, strings.Repeat("─", 60))
		fmt.Fprintf(w, "%-16s  %6d  %10d  %10d  %10d\n", "TOTAL", calls, in, out, in+out)
		return nil
	},
}

func printLLMEvents(w io.Writer, events []store.LLMRequestEvent) {
	fmt.Fprintf(w, "%-5s  %-19s  %-14s  %-28s  %-6s  %-6s  %-7s  %-9s  %s\n",
		"Seq", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "Cost", "OK")
	fmt.Fprintln(w, strings.Repeat("─", 112))

	var total float64
	var unknown bool
	for _, e := range events {
		cost := "?"
		if c := llm.LookupCost(e.Model); c != nil {
			usd := c.Cost(e.InputTokens, e.OutputTokens)
			total += usd
			cost = formatCost(usd)
		} else {
			unknown = true
		}
		fmt.Fprintf(w, "%-5d  %-19s  %-14s  %-28s  %-6d  %-6d  %-7d  %-9s  %s\n",
			e.Sequence,
			e.Timestamp.Local().Format(timeLayout),
			e.Purpose,
			truncate(e.Model, 28),
			e.InputTokens,
			e.OutputTokens,
			e.LatencyMs,
			cost,
			outcome(e),
		)
	}

	fmt.Fprintln(w, strings.Repeat("─", 112))
	label := "Estimated total"
	if unknown {
		label += " (partial)"
	}
	fmt.Fprintf(w, "%s: %s\n", label, formatCost(total))
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	journalLookupsCmd.Flags().IntP("limit", "n", 20, "Number of lookups to show")
	journalLookupsCmd.Flags().StringP("topic", "t", "", "Only show lookups of this topic")
	journalLLMCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	journalLLMCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. topic-summary)")

	journalCmd.AddCommand(journalLookupsCmd)
	journalCmd.AddCommand(journalLLMCmd)
	journalCmd.AddCommand(journalUsageCmd)
}

func outcome(e store.LLMRequestEvent) string {
	if e.Success || e.ErrorKind == "" {
		return mark(e.Success)
	}
	return mark(false) + " " + e.ErrorKind
}
