package encyclopedia

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduwiki/eduwiki/internal/cache"
	"github.com/eduwiki/eduwiki/internal/llm"
	"github.com/eduwiki/eduwiki/internal/store"
)

// countingSource answers from a fixed map and counts calls.
type countingSource struct {
	calls   atomic.Int32
	results map[string]Summary
	delay   time.Duration
}

func (c *countingSource) Lookup(_ context.Context, topic string) (Summary, bool) {
	c.calls.Add(1)
	time.Sleep(c.delay)
	s, ok := c.results[topic]
	return s, ok
}

func physicsSource() *countingSource {
	return &countingSource{results: map[string]Summary{
		"Physics": {Title: "Physics", Extract: "The study of matter.", Source: SourceWikipedia},
	}}
}

func TestWithCache_CachesHitsOnly(t *testing.T) {
	ctx := context.Background()
	inner := physicsSource()
	src := WithCache(inner, cache.NewMemory(), time.Hour, quietLogger)

	first, ok := src.Lookup(ctx, "Physics")
	require.True(t, ok)
	assert.Equal(t, SourceWikipedia, first.Source)

	second, ok := src.Lookup(ctx, "Physics")
	require.True(t, ok)
	assert.Equal(t, SourceCache, second.Source)
	assert.Equal(t, first.Extract, second.Extract)
	assert.EqualValues(t, 1, inner.calls.Load())

	_, ok = src.Lookup(ctx, "Nothing")
	assert.False(t, ok)
	_, ok = src.Lookup(ctx, "Nothing")
	assert.False(t, ok)
	assert.EqualValues(t, 3, inner.calls.Load(), "misses must not be cached")
}

func TestWithCache_KeyIgnoresCaseAndSpaces(t *testing.T) {
	assert.Equal(t, cacheKey("Quantum Physics"), cacheKey("quantum_physics"))
}

func TestWithCache_CorruptEntryRefetched(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemory()
	require.NoError(t, mem.Set(ctx, cacheKey("Physics"), []byte("{not json"), 0))

	inner := physicsSource()
	s, ok := WithCache(inner, mem, time.Hour, quietLogger).Lookup(ctx, "Physics")
	require.True(t, ok)
	assert.Equal(t, SourceWikipedia, s.Source)

	raw, ok, _ := mem.Get(ctx, cacheKey("Physics"))
	require.True(t, ok)
	assert.True(t, json.Valid(raw))
}

func TestWithCache_CoalescesConcurrentMisses(t *testing.T) {
	inner := physicsSource()
	inner.delay = 50 * time.Millisecond
	src := WithCache(inner, cache.NewMemory(), time.Hour, quietLogger)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok := src.Lookup(context.Background(), "Physics")
			assert.True(t, ok)
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, inner.calls.Load(), int32(2))
}

// gatedSource blocks every lookup until release is closed and fails when
// its context has been canceled by then.
type gatedSource struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gatedSource) Lookup(ctx context.Context, topic string) (Summary, bool) {
	g.once.Do(func() { close(g.started) })
	<-g.release
	if ctx.Err() != nil {
		return Summary{}, false
	}
	return Summary{Title: topic, Extract: "ok", Source: SourceWikipedia}, true
}

func TestWithCache_CanceledCallerDoesNotFailOthers(t *testing.T) {
	inner := &gatedSource{started: make(chan struct{}), release: make(chan struct{})}
	mem := cache.NewMemory()
	src := WithCache(inner, mem, time.Hour, quietLogger)

	firstCtx, cancel := context.WithCancel(context.Background())
	firstDone := make(chan bool, 1)
	go func() {
		_, ok := src.Lookup(firstCtx, "Physics")
		firstDone <- ok
	}()
	<-inner.started

	secondDone := make(chan bool, 1)
	go func() {
		_, ok := src.Lookup(context.Background(), "Physics")
		secondDone <- ok
	}()

	cancel()
	select {
	case ok := <-firstDone:
		assert.False(t, ok, "canceled caller should give up")
	case <-time.After(time.Second):
		t.Fatal("canceled caller still waiting on the shared lookup")
	}

	close(inner.release)
	select {
	case ok := <-secondDone:
		assert.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("second caller never returned")
	}

	_, cached, err := mem.Get(context.Background(), cacheKey("Physics"))
	require.NoError(t, err)
	assert.True(t, cached, "shared result should be cached despite the first caller leaving")
}

type lookupRecorder struct {
	store.EventRepo
	mu     sync.Mutex
	events []store.LookupEventData
	err    error
}

func (r *lookupRecorder) AppendLookup(_ context.Context, data store.LookupEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return r.err
}

func TestWithJournal(t *testing.T) {
	ctx := context.Background()
	repo := &lookupRecorder{}
	mem := cache.NewMemory()
	src := WithJournal(WithCache(physicsSource(), mem, 0, quietLogger), repo, SourceWikipedia, quietLogger)

	src.Lookup(ctx, "Physics")
	src.Lookup(ctx, "Physics")
	src.Lookup(ctx, "Unknown")

	require.Len(t, repo.events, 3)
	assert.Equal(t, store.LookupEventData{Topic: "Physics", Source: SourceWikipedia, Found: true, LatencyMs: repo.events[0].LatencyMs}, repo.events[0])
	assert.Equal(t, SourceCache, repo.events[1].Source)
	assert.False(t, repo.events[2].Found)
	assert.Equal(t, SourceWikipedia, repo.events[2].Source)
}

func TestWithJournal_FailureIgnored(t *testing.T) {
	repo := &lookupRecorder{err: errors.New("disk full")}
	s, ok := WithJournal(physicsSource(), repo, SourceWikipedia, quietLogger).Lookup(context.Background(), "Physics")
	assert.True(t, ok)
	assert.Equal(t, "Physics", s.Title)
}

func TestFallback(t *testing.T) {
	ctx := context.Background()
	primary := physicsSource()
	secondary := &countingSource{results: map[string]Summary{
		"Physics": {Title: "from secondary"},
		"Ethics":  {Title: "Ethics", Source: SourceAI},
	}}
	src := Fallback(primary, secondary)

	s, ok := src.Lookup(ctx, "Physics")
	require.True(t, ok)
	assert.Equal(t, "Physics", s.Title)
	assert.EqualValues(t, 0, secondary.calls.Load())

	s, ok = src.Lookup(ctx, "Ethics")
	require.True(t, ok)
	assert.Equal(t, SourceAI, s.Source)

	_, ok = src.Lookup(ctx, "Nowhere")
	assert.False(t, ok)
}

func TestAISource(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"title":"Ethics","summary":"Ethics studies right and wrong conduct."}`)},
		llm.MockResponse{Content: json.RawMessage(`{"title":"Ethics"}`)},
	)
	src := NewAISource(mock, quietLogger)

	s, ok := src.Lookup(context.Background(), "Ethics")
	require.True(t, ok)
	assert.Equal(t, Summary{
		Title:   "Ethics",
		Extract: "Ethics studies right and wrong conduct.",
		PageURL: "https://en.wikipedia.org/wiki/Ethics",
		Source:  SourceAI,
	}, s)

	require.Equal(t, 1, mock.CallCount())
	assert.Equal(t, "topic-summary", mock.Calls[0].Schema.Name)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, `"Ethics"`)

	// Schema violation and an exhausted provider both fail soft.
	_, ok = src.Lookup(context.Background(), "Ethics")
	assert.False(t, ok)
	_, ok = src.Lookup(context.Background(), "Ethics")
	assert.False(t, ok)
}
