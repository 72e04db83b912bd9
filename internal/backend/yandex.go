package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/Morwran/yagpt"
)

// YandexClient is the alternative provider. yagpt has no search-augmented
// surface, so SearchComplete degrades to a plain completion under the search
// system prompt.
type YandexClient struct {
	ya           yagpt.YaGPTFace
	iamToken     string
	searchPrompt string
}

func NewYandex(oauthToken, folderID, searchPrompt string) (*YandexClient, error) {
	iam, err := yagpt.NewYaIam(oauthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init yandex iam: %w", err)
	}
	resp, err := iam.Create()
	if err != nil {
		return nil, fmt.Errorf("failed to create iam token: %w", err)
	}

	ya, err := yagpt.NewYagpt(folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to init yagpt: %w", err)
	}

	return &YandexClient{
		ya:           ya,
		iamToken:     resp.IamToken,
		searchPrompt: searchPrompt,
	}, nil
}

func (c *YandexClient) Complete(ctx context.Context, messages []Message) (Response, error) {
	var yaMsgs []yagpt.Message
	for _, m := range messages {
		yaMsgs = append(yaMsgs, yagpt.Message{Role: m.Role, Content: m.Content})
	}

	resp, err := c.ya.CompletionWithCtx(ctx, c.iamToken, yaMsgs)
	if err != nil {
		return Response{}, &Error{Kind: KindNetwork, Op: "yagpt completion", Err: err}
	}
	if resp == nil || len(resp.Alternatives) == 0 {
		return Response{}, &Error{Kind: KindAPI, Op: "yagpt completion", Err: errors.New("empty response")}
	}
	out := Response{Content: resp.Alternatives[0].Message.Content, Model: yagpt.YaModelLite}
	out.PromptTokens = int(resp.Usage.InputTextTokens)
	out.CompletionTokens = int(resp.Usage.CompletionTokens)
	out.TotalTokens = int(resp.Usage.TotalTokens)
	return out, nil
}

func (c *YandexClient) SearchComplete(ctx context.Context, query string) (Response, error) {
	msgs := []Message{
		{Role: "system", Content: c.searchPrompt},
		{Role: "user", Content: query},
	}
	return c.Complete(ctx, msgs)
}

func (c *YandexClient) ListModels(ctx context.Context) ([]string, error) {
	return []string{yagpt.YaModelLite}, nil
}
