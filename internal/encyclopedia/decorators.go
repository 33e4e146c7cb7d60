package encyclopedia

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/eduwiki/eduwiki/internal/cache"
	"github.com/eduwiki/eduwiki/internal/store"
)

type cachedSource struct {
	inner  Source
	store  cache.Store
	ttl    time.Duration
	group  singleflight.Group
	logger *slog.Logger
}

// WithCache serves repeated lookups from store. Only successful lookups are
// cached, so a failed lookup can be retried immediately. Concurrent misses
// for the same topic share one upstream request.
func WithCache(src Source, cs cache.Store, ttl time.Duration, logger *slog.Logger) Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &cachedSource{inner: src, store: cs, ttl: ttl, logger: logger}
}

func cacheKey(topic string) string {
	return "summary:" + strings.ToLower(articleName(topic))
}

func (c *cachedSource) Lookup(ctx context.Context, topic string) (Summary, bool) {
	key := cacheKey(topic)

	if raw, ok, err := c.store.Get(ctx, key); err != nil {
		c.logger.WarnContext(ctx, "summary cache read failed", "topic", topic, "error", err)
	} else if ok {
		var s Summary
		if err := json.Unmarshal(raw, &s); err == nil {
			s.Source = SourceCache
			return s, true
		}
		c.logger.WarnContext(ctx, "discarding corrupt cache entry", "topic", topic)
	}

	type result struct {
		summary Summary
		ok      bool
	}
	// The shared call outlives any one caller; the inner source bounds it.
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		s, ok := c.inner.Lookup(shared, topic)
		if ok {
			if raw, err := json.Marshal(s); err == nil {
				if err := c.store.Set(shared, key, raw, c.ttl); err != nil {
					c.logger.WarnContext(shared, "summary cache write failed", "topic", topic, "error", err)
				}
			}
		}
		return result{s, ok}, nil
	})

	select {
	case res := <-ch:
		r := res.Val.(result)
		return r.summary, r.ok
	case <-ctx.Done():
		return Summary{}, false
	}
}

type journaledSource struct {
	inner  Source
	repo   store.EventRepo
	name   string
	logger *slog.Logger
}

// WithJournal records every lookup through src in the activity journal
// under the given source name. Journal failures are logged and ignored.
func WithJournal(src Source, repo store.EventRepo, name string, logger *slog.Logger) Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &journaledSource{inner: src, repo: repo, name: name, logger: logger}
}

func (j *journaledSource) Lookup(ctx context.Context, topic string) (Summary, bool) {
	start := time.Now()
	s, ok := j.inner.Lookup(ctx, topic)

	source := j.name
	if ok && s.Source != "" {
		source = s.Source
	}
	err := j.repo.AppendLookup(ctx, store.LookupEventData{
		Topic:     topic,
		Source:    source,
		Found:     ok,
		LatencyMs: time.Since(start).Milliseconds(),
	})
	if err != nil {
		j.logger.WarnContext(ctx, "failed to journal lookup", "topic", topic, "error", err)
	}
	return s, ok
}

// Fallback consults secondary only when primary yields nothing.
func Fallback(primary, secondary Source) Source {
	return SourceFunc(func(ctx context.Context, topic string) (Summary, bool) {
		if s, ok := primary.Lookup(ctx, topic); ok {
			return s, true
		}
		return secondary.Lookup(ctx, topic)
	})
}
