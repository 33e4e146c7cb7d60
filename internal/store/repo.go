package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	Filter string    // topic for lookups, purpose for LLM events ("" = all)
}

// LookupEventData captures one encyclopedia lookup.
type LookupEventData struct {
	Topic     string
	Source    string
	Found     bool
	LatencyMs int64
}

// LookupEvent is a stored lookup with its journal position.
type LookupEvent struct {
	Sequence  int64
	Timestamp time.Time
	LookupEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorKind    string // e.g. rate_limit, timeout; empty on success
	ErrorMessage string
}

// LLMRequestEvent is a stored LLM request with its journal position.
type LLMRequestEvent struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM token usage for one purpose.
type PurposeUsage struct {
	Purpose      string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to journal events.
type EventRepo interface {
	// AppendLookup records an encyclopedia lookup.
	AppendLookup(ctx context.Context, data LookupEventData) error

	// QueryLookups returns lookups newest first.
	QueryLookups(ctx context.Context, opts QueryOpts) ([]LookupEvent, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// LLMUsageByPurpose sums token usage per purpose, ordered by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
}
