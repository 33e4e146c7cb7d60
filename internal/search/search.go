// Package search finds catalog topics matching a free-text query.
package search

import (
	"strings"

	"github.com/eduwiki/eduwiki/internal/catalog"
)

const (
	// MaxResults caps the number of topics returned.
	MaxResults = 20

	// MinDirectMatches is the number of substring hits below which the
	// per-word pass runs.
	MinDirectMatches = 5
)

// Search returns the topics matching query, case-insensitively, in catalog
// order. Topics containing the whole query come first; if there are fewer
// than MinDirectMatches of them, topics containing any single query word are
// appended. Blank queries match nothing.
func Search(query string, c *catalog.Catalog) []string {
	if strings.TrimSpace(query) == "" {
		return []string{}
	}
	q := strings.ToLower(query)

	topics := c.AllTopics()
	lowered := make([]string, len(topics))
	for i, t := range topics {
		lowered[i] = strings.ToLower(t)
	}

	results := make([]string, 0, MaxResults)
	included := make(map[string]bool)

	for i, t := range topics {
		if strings.Contains(lowered[i], q) {
			results = append(results, t)
			included[t] = true
		}
	}

	if len(results) < MinDirectMatches {
		words := strings.Fields(q)
		for i, t := range topics {
			if included[t] {
				continue
			}
			if containsAny(lowered[i], words) {
				results = append(results, t)
				included[t] = true
			}
		}
	}

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
