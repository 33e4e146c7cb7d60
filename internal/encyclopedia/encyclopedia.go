// Package encyclopedia looks up short topic summaries from external
// reference sources. Every Source is fail-soft: a lookup either yields a
// summary or reports that nothing is available, it never returns an error.
package encyclopedia

import (
	"context"
	"strings"
)

// Source names recorded in Summary.Source and the activity journal.
const (
	SourceWikipedia = "wikipedia"
	SourceCache     = "cache"
	SourceAI        = "ai"
)

// Summary is a short description of a topic from an external reference.
type Summary struct {
	Title        string `json:"title"`
	Extract      string `json:"summary"`
	PageURL      string `json:"url"`
	ThumbnailURL string `json:"image"`
	Source       string `json:"source"`
}

// Source looks up a topic summary. ok is false when no summary could be
// produced for any reason.
type Source interface {
	Lookup(ctx context.Context, topic string) (Summary, bool)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, topic string) (Summary, bool)

// Lookup calls f(ctx, topic).
func (f SourceFunc) Lookup(ctx context.Context, topic string) (Summary, bool) {
	return f(ctx, topic)
}

const wikiPageBase = "https://en.wikipedia.org/wiki/"

// PageURL is the canonical English Wikipedia article URL for topic.
func PageURL(topic string) string {
	return wikiPageBase + articleName(topic)
}

// articleName converts a display title into Wikipedia's article form.
func articleName(topic string) string {
	return strings.ReplaceAll(topic, " ", "_")
}
