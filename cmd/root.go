package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/eduwiki/eduwiki/internal/config"
	"github.com/eduwiki/eduwiki/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "eduwiki",
	Short: "Offline-first learning platform",
	Long: `EduWiki lets you browse topics, read generated study material, look up
encyclopedia summaries and test yourself with quizzes.

Run without a command to start an interactive study session.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runStudy,
}

// Settings shared by every command, resolved in loadConfig.
var (
	cfg    config.Config
	logger *slog.Logger
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to the journal database (overrides EDUWIKI_JOURNAL_PATH)")
	pf.Bool("no-journal", false, "Do not record lookups and LLM requests")
	pf.String("lang", "", "Interface language code, e.g. hi or ta (overrides EDUWIKI_LANGUAGE)")
	pf.String("log-level", "", "Log level: debug, info, warn or error (overrides EDUWIKI_LOG_LEVEL)")

	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(wikiCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads EDUWIKI_* settings and applies command-line overrides.
func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if v, _ := flags.GetString("db"); v != "" {
		c.Journal.Path = v
	}
	if v, _ := flags.GetBool("no-journal"); v {
		c.Journal.Enabled = false
	}
	if v, _ := flags.GetString("lang"); v != "" {
		c.Language = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		if _, err := config.ParseLevel(v); err != nil {
			return err
		}
		c.Log.Level = v
	}

	cfg = c
	logger = c.Log.NewLogger(cmd.ErrOrStderr())
	slog.SetDefault(logger)
	return nil
}

// resolveDBPath returns the journal path using --db or EDUWIKI_JOURNAL_PATH,
// then EDUWIKI_DB, then the default XDG path.
func resolveDBPath() (string, error) {
	if p := cfg.Journal.Path; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
