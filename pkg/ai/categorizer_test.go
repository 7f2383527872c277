package ai_test

import (
	"context"
	"errors"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"

	"shario-backend/pkg/ai"
)

type mockChatClient struct {
	response openai.ChatCompletionResponse
	err      error

	lastRequest openai.ChatCompletionRequest
}

func (m *mockChatClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	m.lastRequest = req
	return m.response, m.err
}

func chatResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestCategorizeSuccess(t *testing.T) {
	client := &mockChatClient{
		response: chatResponse(`{"category": "Web Development", "tags": ["react", "frontend"]}`),
	}
	c := ai.NewCategorizerWithClient(client, "", 0)

	got := c.Categorize(context.Background(), "Intro to React", "Learn React basics")
	assert.Equal(t, "Web Development", got.Category)
	assert.Equal(t, []string{"react", "frontend"}, got.Tags)
	assert.False(t, got.Degraded)

	// Prompt carries both inputs and demands JSON
	assert.Contains(t, client.lastRequest.Messages[0].Content, "Intro to React")
	assert.Contains(t, client.lastRequest.Messages[0].Content, "Learn React basics")
	assert.Equal(t, ai.DefaultModel, client.lastRequest.Model)
}

func TestCategorizeFencedJSON(t *testing.T) {
	client := &mockChatClient{
		response: chatResponse("```json\n{\"category\": \"AI/ML\", \"tags\": [\"llm\"]}\n```"),
	}
	c := ai.NewCategorizerWithClient(client, "gpt-4o-mini", time.Second)

	got := c.Categorize(context.Background(), "t", "d")
	assert.Equal(t, "AI/ML", got.Category)
	assert.Equal(t, []string{"llm"}, got.Tags)
}

func TestCategorizeDegradesOnError(t *testing.T) {
	client := &mockChatClient{err: errors.New("upstream unavailable")}
	c := ai.NewCategorizerWithClient(client, "", 0)

	got := c.Categorize(context.Background(), "t", "d")
	assert.Equal(t, ai.CategoryOther, got.Category)
	assert.Empty(t, got.Tags)
	assert.True(t, got.Degraded)
}

func TestCategorizeDegradesOnEmptyChoices(t *testing.T) {
	client := &mockChatClient{response: openai.ChatCompletionResponse{}}
	c := ai.NewCategorizerWithClient(client, "", 0)

	got := c.Categorize(context.Background(), "t", "d")
	assert.Equal(t, ai.CategoryOther, got.Category)
	assert.True(t, got.Degraded)
}

func TestCategorizeDegradesOnBadJSON(t *testing.T) {
	client := &mockChatClient{response: chatResponse("Sure! The category is probably Design.")}
	c := ai.NewCategorizerWithClient(client, "", 0)

	got := c.Categorize(context.Background(), "t", "d")
	assert.Equal(t, ai.CategoryOther, got.Category)
	assert.True(t, got.Degraded)
}

func TestCategorizeEmptyCategoryFallsBack(t *testing.T) {
	client := &mockChatClient{response: chatResponse(`{"category": "", "tags": ["misc"]}`)}
	c := ai.NewCategorizerWithClient(client, "", 0)

	got := c.Categorize(context.Background(), "t", "d")
	assert.Equal(t, ai.CategoryOther, got.Category)
	assert.Equal(t, []string{"misc"}, got.Tags)
	assert.False(t, got.Degraded)
}

func TestCategorizeUnconfigured(t *testing.T) {
	c := ai.NewCategorizer("", "", 0)
	assert.False(t, c.IsConfigured())

	got := c.Categorize(context.Background(), "t", "d")
	assert.Equal(t, ai.CategoryOther, got.Category)
	assert.True(t, got.Degraded)
}
