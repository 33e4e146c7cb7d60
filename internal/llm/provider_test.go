package llm

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"
)

func TestMockProvider(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(summaryJSON), Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		MockResponse{Err: &ErrRateLimit{}},
	)
	mock.AddResponse(MockResponse{Content: json.RawMessage(`{"title":"x"}`)})

	resp, err := mock.Generate(context.Background(), summaryRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.TotalTokens != 15 || resp.Model != "mock" || resp.StopReason != "end" {
		t.Errorf("resp = %+v", resp)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Errorf("expected ErrRateLimit, got %T", err)
	}

	// Third response violates the summary schema.
	_, err = mock.Generate(context.Background(), summaryRequest())
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Errorf("expected ErrInvalidResponse, got %T", err)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("expected ErrProviderUnavailable on empty queue, got %T", err)
	}

	if mock.CallCount() != 4 || mock.Calls[0].System == "" {
		t.Errorf("calls = %d", mock.CallCount())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != PurposeUnknown {
		t.Fatalf("expected %q, got %q", PurposeUnknown, p)
	}
	ctx = WithPurpose(ctx, PurposeTopicSummary)
	if p := PurposeFrom(ctx); p != "topic-summary" {
		t.Fatalf("expected 'topic-summary', got %q", p)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "anthropic" || cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Retry.MaxAttempts != 3 || cfg.Retry.InitialWait != time.Second || cfg.Retry.Multiplier != 2 {
		t.Errorf("retry = %+v", cfg.Retry)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("timeout = %s", cfg.Timeout)
	}
	if cfg.OpenRouter.BaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("openrouter base = %q", cfg.OpenRouter.BaseURL)
	}
}

func clearVendorKeys(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearVendorKeys(t)
	t.Setenv("EDUWIKI_LLM_PROVIDER", "openai")
	t.Setenv("EDUWIKI_LLM_OPENAI_API_KEY", "sk-test")
	t.Setenv("EDUWIKI_LLM_OPENAI_MODEL", "gpt-4o")
	t.Setenv("EDUWIKI_LLM_RETRY_MAX_ATTEMPTS", "5")
	t.Setenv("EDUWIKI_LLM_TIMEOUT", "10s")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Retry.MaxAttempts != 5 || cfg.Timeout != 10*time.Second {
		t.Errorf("retry = %+v, timeout = %s", cfg.Retry, cfg.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestConfigFromEnv_Discovery(t *testing.T) {
	clearVendorKeys(t)
	t.Setenv("EDUWIKI_LLM_PROVIDER", "")
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Provider != "gemini" || cfg.Gemini.APIKey != "g-key" {
		t.Errorf("cfg = %+v", cfg)
	}

	t.Setenv("GEMINI_API_KEY", "")
	if _, ok := DiscoverConfig(); ok {
		t.Error("DiscoverConfig found a provider with no keys set")
	}
}

func TestConfigFromEnv_BadValue(t *testing.T) {
	t.Setenv("EDUWIKI_LLM_TIMEOUT", "soon")
	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openrouter with key", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	p, err := NewProvider(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q", p.ModelID())
	}

	cfg.Provider = "anthropic"
	if _, err := NewProvider(context.Background(), cfg, nil, nil); err == nil {
		t.Error("expected error for anthropic without key")
	}
}

func TestModelCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("gpt-4o-mini missing from pricing table")
	}
	if got := c.Cost(1_000_000, 1_000_000); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Cost = %f, want 0.75", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Error("unknown model has a price")
	}
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestWithTimeout(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 20*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if p.ModelID() != "blocking" {
		t.Errorf("ModelID = %q", p.ModelID())
	}

	var bp Provider = blockingProvider{}
	if WithTimeout(bp, 0) != bp {
		t.Error("zero timeout should not wrap")
	}
}
