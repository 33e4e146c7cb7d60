// Package app assembles the EduWiki services shared by the CLI and the HTTP
// API.
package app

import (
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/eduwiki/eduwiki/internal/cache"
	"github.com/eduwiki/eduwiki/internal/catalog"
	"github.com/eduwiki/eduwiki/internal/config"
	"github.com/eduwiki/eduwiki/internal/content"
	"github.com/eduwiki/eduwiki/internal/encyclopedia"
	"github.com/eduwiki/eduwiki/internal/i18n"
	"github.com/eduwiki/eduwiki/internal/llm"
	"github.com/eduwiki/eduwiki/internal/quiz"
	"github.com/eduwiki/eduwiki/internal/store"
)

// Options holds the optional infrastructure. Any nil field disables the
// feature it backs.
type Options struct {
	Config  config.Config
	Logger  *slog.Logger
	Journal store.EventRepo
	Cache   cache.Store
	LLM     llm.Provider

	// Wiki replaces the Wikipedia client, mainly for tests.
	Wiki encyclopedia.Source
}

// Services is the set of core components built from one configuration.
type Services struct {
	Catalog  *catalog.Catalog
	Content  *content.Generator
	Quizzes  *quiz.Generator
	Lookup   encyclopedia.Source
	Cache    cache.Store // nil when no cache is configured
	Strings  *i18n.Bundle
	Rand     *Rand
	Language string
	Logger   *slog.Logger
}

// New wires the core components. The encyclopedia chain is
// cache → (wikipedia, then AI) → journal, with each layer present only when
// its dependency is.
func New(opts Options) *Services {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rng := NewRand(opts.Config.Seed)
	cat := catalog.Default()

	bundle := i18n.Default()
	lang, ok := bundle.Normalize(opts.Config.Language)
	if !ok {
		logger.Warn("unsupported language, using English", "language", opts.Config.Language)
		lang = i18n.DefaultLanguage
	}

	return &Services{
		Catalog:  cat,
		Content:  content.NewGenerator(cat, rng),
		Quizzes:  quiz.NewGenerator(rng),
		Lookup:   lookupChain(opts, logger),
		Cache:    opts.Cache,
		Strings:  bundle,
		Rand:     rng,
		Language: lang,
		Logger:   logger,
	}
}

func lookupChain(opts Options, logger *slog.Logger) encyclopedia.Source {
	wc := opts.Config.Wiki

	var src encyclopedia.Source = opts.Wiki
	if src == nil {
		src = encyclopedia.NewWikipedia(
			encyclopedia.WithBaseURL(wc.BaseURL),
			encyclopedia.WithTimeout(wc.Timeout),
			encyclopedia.WithUserAgent(wc.UserAgent),
			encyclopedia.WithLogger(logger),
		)
	}
	if opts.Journal != nil {
		src = encyclopedia.WithJournal(src, opts.Journal, encyclopedia.SourceWikipedia, logger)
	}

	if wc.AIFallback && opts.LLM != nil {
		var ai encyclopedia.Source = encyclopedia.NewAISource(opts.LLM, logger)
		if opts.Journal != nil {
			ai = encyclopedia.WithJournal(ai, opts.Journal, encyclopedia.SourceAI, logger)
		}
		src = encyclopedia.Fallback(src, ai)
	}

	if opts.Cache != nil {
		src = encyclopedia.WithCache(src, opts.Cache, opts.Config.Cache.TTL, logger)
	}
	return src
}

// Rand is a math/rand/v2 generator that is safe for concurrent use.
type Rand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand returns a generator seeded with seed, or a randomly seeded one
// when seed is zero.
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a uniform integer in [0, n). It panics if n <= 0.
func (r *Rand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.IntN(n)
}
