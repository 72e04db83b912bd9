package backend

import (
	"context"
	"errors"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient talks to any OpenAI-compatible chat API (Open WebUI in the
// usual deployment).
type OpenAIClient struct {
	client        *openai.Client
	model         string
	maxTokens     int
	searchPrompt  string
	searchTimeout time.Duration
}

func NewOpenAI(apiKey, baseURL, model string, maxTokens int, searchPrompt string, searchTimeout time.Duration) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIClient{
		client:        openai.NewClientWithConfig(config),
		model:         model,
		maxTokens:     maxTokens,
		searchPrompt:  searchPrompt,
		searchTimeout: searchTimeout,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, messages []Message) (Response, error) {
	var oaMsgs []openai.ChatCompletionMessage
	for _, m := range messages {
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  oaMsgs,
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return Response{}, classify("chat completion", err)
	}
	if len(resp.Choices) == 0 {
		return Response{}, &Error{Kind: KindAPI, Op: "chat completion", Err: errors.New("empty choices")}
	}

	out := Response{
		Content: resp.Choices[0].Message.Content,
		Model:   c.model,
	}
	out.PromptTokens = resp.Usage.PromptTokens
	out.CompletionTokens = resp.Usage.CompletionTokens
	out.TotalTokens = resp.Usage.TotalTokens
	return out, nil
}

// SearchComplete submits the raw query under the search-oriented system
// prompt. Retrieval-backed calls take longer than plain completions, so the
// call carries its own timeout on top of whatever the caller set.
func (c *OpenAIClient) SearchComplete(ctx context.Context, query string) (Response, error) {
	if c.searchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.searchTimeout)
		defer cancel()
	}
	msgs := []Message{
		{Role: "system", Content: c.searchPrompt},
		{Role: "user", Content: query},
	}
	return c.Complete(ctx, msgs)
}

func (c *OpenAIClient) ListModels(ctx context.Context) ([]string, error) {
	list, err := c.client.ListModels(ctx)
	if err != nil {
		return nil, classify("list models", err)
	}
	out := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		out = append(out, m.ID)
	}
	return out, nil
}

// classify splits failures into reached-but-refused (API) and never-reached
// (network) so the composer can decide whether falling back makes sense.
func classify(op string, err error) *Error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &Error{Kind: KindAPI, Op: op, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &Error{Kind: KindAPI, Op: op, Err: err}
	}
	return &Error{Kind: KindNetwork, Op: op, Err: err}
}
