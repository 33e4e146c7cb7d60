package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/eduwiki/eduwiki/internal/app"
	"github.com/eduwiki/eduwiki/internal/cache"
	"github.com/eduwiki/eduwiki/internal/llm"
	"github.com/eduwiki/eduwiki/internal/store"
)

// coreServices builds the services without any optional infrastructure,
// for commands that never look anything up.
func coreServices() *app.Services {
	return app.New(app.Options{Config: cfg, Logger: logger})
}

// env is the assembled runtime of one command invocation.
type env struct {
	svc     *app.Services
	journal store.EventRepo
	closers []func() error
}

// Close releases the journal and cache connections.
func (e *env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i]())
	}
	return errors.Join(errs...)
}

// bootstrap opens the optional infrastructure and builds the services.
// Journal, cache and LLM failures are logged and the feature is skipped.
func bootstrap(ctx context.Context) *env {
	e := &env{}
	opts := app.Options{Config: cfg, Logger: logger}

	if cfg.Journal.Enabled {
		if st, err := openJournal(); err != nil {
			logger.Warn("activity journal unavailable", "error", err)
		} else {
			e.closers = append(e.closers, st.Close)
			e.journal = st.EventRepo()
			opts.Journal = e.journal
		}
	}

	if cfg.Cache.URL != "" {
		cs, err := cache.Open(ctx, cfg.Cache.URL)
		if err != nil {
			logger.Warn("summary cache unavailable", "url", cfg.Cache.URL, "error", err)
		} else {
			e.closers = append(e.closers, cs.Close)
			opts.Cache = cs
		}
	}

	if cfg.Wiki.AIFallback {
		provider, err := llm.NewProvider(ctx, cfg.LLM, e.journal, logger)
		if err != nil {
			logger.Warn("LLM provider not configured, AI summaries disabled", "error", err)
		} else {
			opts.LLM = provider
		}
	}

	e.svc = app.New(opts)
	return e
}

func openJournal() (*store.Store, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("journal opened", "path", dbPath)
	return st, nil
}
