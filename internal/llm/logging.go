package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/eduwiki/eduwiki/internal/store"
)

// LoggingProvider is a decorator that records every LLM request in the
// activity journal and the structured log.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
	provider  string
	logger    *slog.Logger
}

// WithLogging wraps a Provider with event logging. repo may be nil, in
// which case requests are only written to the log.
func WithLogging(p Provider, providerName string, repo store.EventRepo, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingProvider{inner: p, eventRepo: repo, provider: providerName, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
	}
	if err != nil {
		attributeProvider(err, l.provider)
		data.ErrorKind = ErrorKind(err)
		data.ErrorMessage = err.Error()
	}

	l.logger.DebugContext(ctx, "llm request",
		"provider", data.Provider,
		"model", data.Model,
		"purpose", data.Purpose,
		"latency_ms", data.LatencyMs,
		"input_tokens", data.InputTokens,
		"output_tokens", data.OutputTokens,
		"success", data.Success,
		"error_kind", data.ErrorKind,
	)

	// A journal failure never fails the request.
	if l.eventRepo != nil {
		if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
			l.logger.WarnContext(ctx, "failed to journal LLM request", "error", logErr)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
