package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Error kinds recorded in the activity journal for failed requests.
const (
	KindRateLimit   = "rate_limit"
	KindUnavailable = "unavailable"
	KindInvalid     = "invalid_response"
	KindTruncated   = "max_tokens"
	KindTimeout     = "timeout"
	KindCanceled    = "canceled"
	KindOther       = "other"
)

// ErrRateLimit is a 429 from the provider. RetryAfter is zero when the
// provider sent no hint.
type ErrRateLimit struct {
	Provider   string
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	msg := "rate limited"
	if e.Provider != "" {
		msg = e.Provider + ": " + msg
	}
	if e.RetryAfter > 0 {
		msg += fmt.Sprintf(" (retry after %s)", e.RetryAfter)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse means the summary JSON did not match the request
// schema. Content keeps the raw reply for the journal and the retry log.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable covers transport failures and non-429 API errors.
type ErrProviderUnavailable struct {
	Provider string
	Err      error
}

func (e *ErrProviderUnavailable) Error() string {
	name := "LLM provider"
	if e.Provider != "" {
		name = e.Provider
	}
	if e.Err != nil {
		return fmt.Sprintf("%s unavailable: %v", name, e.Err)
	}
	return name + " unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded means the reply was cut off at Request.MaxTokens.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// ErrorKind classifies err for the journal. It returns "" for nil.
func ErrorKind(err error) string {
	var (
		rl    *ErrRateLimit
		down  *ErrProviderUnavailable
		inv   *ErrInvalidResponse
		trunc *ErrMaxTokensExceeded
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.As(err, &rl):
		return KindRateLimit
	case errors.As(err, &down):
		return KindUnavailable
	case errors.As(err, &inv):
		return KindInvalid
	case errors.As(err, &trunc):
		return KindTruncated
	default:
		return KindOther
	}
}

// attributeProvider stamps name on provider errors that do not carry one.
// OpenRouter shares the OpenAI client, so the mapping functions cannot
// always tell which vendor answered.
func attributeProvider(err error, name string) {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.Provider == "" {
		rl.Provider = name
	}
	var down *ErrProviderUnavailable
	if errors.As(err, &down) && down.Provider == "" {
		down.Provider = name
	}
}
