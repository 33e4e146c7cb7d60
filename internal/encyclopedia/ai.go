package encyclopedia

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/eduwiki/eduwiki/internal/llm"
)

const aiSystemPrompt = `You write short, factual encyclopedia summaries for students.
Answer in plain English prose of two to four sentences. Do not invent citations.`

var aiSummarySchema = &llm.Schema{
	Name:        "topic-summary",
	Description: "A short encyclopedia-style summary of a study topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Canonical title of the topic",
				"minLength":   1,
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "Two to four sentence summary",
				"minLength":   1,
			},
		},
		"required":             []any{"title", "summary"},
		"additionalProperties": false,
	},
}

type aiSummary struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

type aiSource struct {
	provider llm.Provider
	logger   *slog.Logger
}

// NewAISource produces summaries with an LLM. It is meant as the secondary
// of a Fallback, for topics the primary reference cannot resolve. The page
// URL still points at the Wikipedia article name.
func NewAISource(provider llm.Provider, logger *slog.Logger) Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &aiSource{provider: provider, logger: logger}
}

func (a *aiSource) Lookup(ctx context.Context, topic string) (Summary, bool) {
	ctx = llm.WithPurpose(ctx, llm.PurposeTopicSummary)
	resp, err := a.provider.Generate(ctx, llm.Request{
		System: aiSystemPrompt,
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf("Summarise the study topic %q.", topic),
		}},
		Schema:    aiSummarySchema,
		MaxTokens: 400,
	})
	if err != nil {
		a.logger.WarnContext(ctx, "ai summary failed", "topic", topic, "error", err)
		return Summary{}, false
	}

	var out aiSummary
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		a.logger.WarnContext(ctx, "decode ai summary", "topic", topic, "error", err)
		return Summary{}, false
	}
	return Summary{
		Title:   out.Title,
		Extract: out.Summary,
		PageURL: PageURL(topic),
		Source:  SourceAI,
	}, true
}
