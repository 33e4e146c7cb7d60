package encyclopedia

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultWikipediaBaseURL = "https://en.wikipedia.org"
	DefaultTimeout          = 5 * time.Second
	DefaultUserAgent        = "EduWiki/1.0 (https://github.com/eduwiki/eduwiki)"

	noSummary = "No summary available"

	// maxBodyBytes caps how much of a response is decoded.
	maxBodyBytes = 1 << 20
)

// Wikipedia fetches page summaries from the Wikipedia REST API.
type Wikipedia struct {
	baseURL   string
	userAgent string
	client    *http.Client
	logger    *slog.Logger
}

// WikipediaOption configures a Wikipedia client.
type WikipediaOption func(*Wikipedia)

// WithBaseURL points the client at another MediaWiki host.
func WithBaseURL(u string) WikipediaOption {
	return func(w *Wikipedia) { w.baseURL = strings.TrimRight(u, "/") }
}

// WithTimeout replaces the 5 second request timeout.
func WithTimeout(d time.Duration) WikipediaOption {
	return func(w *Wikipedia) { w.client.Timeout = d }
}

// WithUserAgent sets the User-Agent header, which the Wikimedia API
// requires to identify the client.
func WithUserAgent(ua string) WikipediaOption {
	return func(w *Wikipedia) { w.userAgent = ua }
}

// WithLogger sets the logger for failed lookups.
func WithLogger(l *slog.Logger) WikipediaOption {
	return func(w *Wikipedia) { w.logger = l }
}

// NewWikipedia returns a client for en.wikipedia.org with a 5 second timeout
// and no retries.
func NewWikipedia(opts ...WikipediaOption) *Wikipedia {
	w := &Wikipedia{
		baseURL:   DefaultWikipediaBaseURL,
		userAgent: DefaultUserAgent,
		client:    &http.Client{Timeout: DefaultTimeout},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

type restSummary struct {
	Title       *string `json:"title"`
	Extract     *string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
	Thumbnail *struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
}

// SummaryURL is the REST endpoint queried for topic.
func (w *Wikipedia) SummaryURL(topic string) string {
	return w.baseURL + "/api/rest_v1/page/summary/" + url.PathEscape(articleName(topic))
}

// Lookup fetches the summary for topic. Non-200 responses, transport
// failures, timeouts and undecodable bodies all yield ok=false.
func (w *Wikipedia) Lookup(ctx context.Context, topic string) (Summary, bool) {
	endpoint := w.SummaryURL(topic)
	log := w.logger.With("topic", topic, "url", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.WarnContext(ctx, "build wikipedia request", "error", err)
		return Summary{}, false
	}
	req.Header.Set("User-Agent", w.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		log.WarnContext(ctx, "wikipedia request failed", "error", err)
		return Summary{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.DebugContext(ctx, "wikipedia summary unavailable", "status", resp.StatusCode)
		return Summary{}, false
	}

	var body restSummary
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		log.WarnContext(ctx, "decode wikipedia summary", "error", err)
		return Summary{}, false
	}

	s := Summary{
		Title:   topic,
		Extract: noSummary,
		PageURL: body.ContentURLs.Desktop.Page,
		Source:  SourceWikipedia,
	}
	if body.Title != nil {
		s.Title = *body.Title
	}
	if body.Extract != nil {
		s.Extract = *body.Extract
	}
	if body.Thumbnail != nil {
		s.ThumbnailURL = body.Thumbnail.Source
	}
	return s, true
}
