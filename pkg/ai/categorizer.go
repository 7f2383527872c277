// Package ai provides the best-effort resource categorization client.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"shario-backend/internal/domain"
	"shario-backend/pkg/logger"
)

const (
	DefaultModel   = "gpt-4o-mini"
	DefaultTimeout = 10 * time.Second

	// CategoryOther is the fallback category used whenever classification
	// is unavailable or fails.
	CategoryOther = "Other"
)

// Categories is the closed vocabulary the classifier must choose from.
var Categories = []string{
	"Web Development",
	"Design",
	"Data Science",
	"AI/ML",
	"Business",
	"Productivity",
	"Career",
	"Mathematics",
	CategoryOther,
}

// ChatClient abstracts the OpenAI client so tests can inject a mock.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Categorizer asks an external text-generation service for a category and
// tags describing a resource. It is strictly advisory: every failure mode
// degrades to the default result, never to an error.
type Categorizer struct {
	client  ChatClient
	model   string
	timeout time.Duration
}

// NewCategorizer builds a categorizer from an API key. An empty key yields
// an unconfigured categorizer whose every call returns the default result,
// so a missing credential never crashes the process.
func NewCategorizer(apiKey, model string, timeout time.Duration) *Categorizer {
	c := &Categorizer{model: model, timeout: timeout}
	if c.model == "" {
		c.model = DefaultModel
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if apiKey != "" {
		c.client = openai.NewClient(apiKey)
	}
	return c
}

// NewCategorizerWithClient injects a custom chat client (used by tests).
func NewCategorizerWithClient(client ChatClient, model string, timeout time.Duration) *Categorizer {
	c := NewCategorizer("", model, timeout)
	c.client = client
	return c
}

// IsConfigured reports whether an upstream credential is present.
func (c *Categorizer) IsConfigured() bool {
	return c.client != nil
}

// Categorize classifies a resource by title and description. The call is
// single-attempt with a bounded timeout; on any failure it returns
// {Category: "Other", Tags: nil, Degraded: true}.
func (c *Categorizer) Categorize(ctx context.Context, title, description string) domain.Enrichment {
	fallback := domain.Enrichment{Category: CategoryOther, Degraded: true}

	if c.client == nil {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(title, description),
			},
		},
		Temperature: 0,
	})
	if err != nil {
		logger.Log.Warn("AI categorization request failed", "error", err)
		return fallback
	}
	if len(resp.Choices) == 0 {
		logger.Log.Warn("AI categorization returned no choices")
		return fallback
	}

	var parsed struct {
		Category string   `json:"category"`
		Tags     []string `json:"tags"`
	}
	content := stripCodeFence(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		logger.Log.Warn("AI categorization returned unparseable content", "error", err)
		return fallback
	}

	if parsed.Category == "" {
		parsed.Category = CategoryOther
	}
	return domain.Enrichment{Category: parsed.Category, Tags: parsed.Tags}
}

func buildPrompt(title, description string) string {
	return fmt.Sprintf(`You are a helpful classifier. Given the resource title and description, return JSON with fields:
{ "category": "<one short category>", "tags": ["tag1","tag2"] }
Category must be one of: "%s".
Title: %s
Description: %s
Respond with ONLY valid JSON.`, strings.Join(Categories, `", "`), title, description)
}

// stripCodeFence removes a surrounding markdown fence that chat models
// sometimes wrap JSON answers in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
