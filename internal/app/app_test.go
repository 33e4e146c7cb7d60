package app

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduwiki/eduwiki/internal/cache"
	"github.com/eduwiki/eduwiki/internal/config"
	"github.com/eduwiki/eduwiki/internal/encyclopedia"
	"github.com/eduwiki/eduwiki/internal/llm"
	"github.com/eduwiki/eduwiki/internal/store"
)

type journal struct {
	mu      sync.Mutex
	lookups []store.LookupEventData
}

func (j *journal) AppendLookup(_ context.Context, d store.LookupEventData) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.lookups = append(j.lookups, d)
	return nil
}

func (j *journal) QueryLookups(context.Context, store.QueryOpts) ([]store.LookupEvent, error) {
	return nil, nil
}

func (j *journal) AppendLLMRequest(context.Context, store.LLMRequestEventData) error { return nil }

func (j *journal) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMRequestEvent, error) {
	return nil, nil
}

func (j *journal) LLMUsageByPurpose(context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func missingWiki() encyclopedia.Source {
	return encyclopedia.SourceFunc(func(context.Context, string) (encyclopedia.Summary, bool) {
		return encyclopedia.Summary{}, false
	})
}

func TestNew_Defaults(t *testing.T) {
	svc := New(Options{Config: config.Default(), Wiki: missingWiki()})

	assert.Equal(t, "en", svc.Language)
	assert.Equal(t, 123, svc.Catalog.TopicCount())
	assert.Len(t, svc.Quizzes.Generate("Physics"), 3)

	_, ok := svc.Lookup.Lookup(context.Background(), "Physics")
	assert.False(t, ok)
}

func TestNew_LanguageNormalised(t *testing.T) {
	cfg := config.Default()
	cfg.Language = "ta-IN"
	assert.Equal(t, "ta", New(Options{Config: cfg, Wiki: missingWiki()}).Language)

	cfg.Language = "xx"
	assert.Equal(t, "en", New(Options{Config: cfg, Wiki: missingWiki()}).Language)
}

func TestNew_SeedIsReproducible(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 7

	a := New(Options{Config: cfg, Wiki: missingWiki()})
	b := New(Options{Config: cfg, Wiki: missingWiki()})
	assert.Equal(t, a.Quizzes.Generate("Chemistry"), b.Quizzes.Generate("Chemistry"))
	assert.Equal(t, a.Catalog.Featured(a.Rand, 6), b.Catalog.Featured(b.Rand, 6))
}

func TestLookupChain_AIFallbackJournaledAndCached(t *testing.T) {
	cfg := config.Default()
	cfg.Wiki.AIFallback = true

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title":"Quantum Computing","summary":"Computing with qubits."}`),
	})

	j := &journal{}
	mem := cache.NewMemory()
	svc := New(Options{
		Config:  cfg,
		Wiki:    missingWiki(),
		Journal: j,
		Cache:   mem,
		LLM:     mock,
	})

	ctx := context.Background()
	s, ok := svc.Lookup.Lookup(ctx, "Quantum Computing")
	require.True(t, ok)
	assert.Equal(t, "Computing with qubits.", s.Extract)
	assert.Equal(t, encyclopedia.SourceAI, s.Source)

	s, ok = svc.Lookup.Lookup(ctx, "Quantum Computing")
	require.True(t, ok)
	assert.Equal(t, encyclopedia.SourceCache, s.Source)

	require.Len(t, j.lookups, 2)
	assert.Equal(t, encyclopedia.SourceWikipedia, j.lookups[0].Source)
	assert.False(t, j.lookups[0].Found)
	assert.Equal(t, encyclopedia.SourceAI, j.lookups[1].Source)
	assert.True(t, j.lookups[1].Found)
	assert.Equal(t, 1, mem.Len())
}

func TestLookupChain_AIFallbackNeedsProvider(t *testing.T) {
	cfg := config.Default()
	cfg.Wiki.AIFallback = true

	svc := New(Options{Config: cfg, Wiki: missingWiki()})
	_, ok := svc.Lookup.Lookup(context.Background(), "Anything")
	assert.False(t, ok)
}

func TestRand_Concurrent(t *testing.T) {
	r := NewRand(1)
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				v := r.IntN(10)
				assert.True(t, v >= 0 && v < 10)
			}
		}()
	}
	wg.Wait()
}
