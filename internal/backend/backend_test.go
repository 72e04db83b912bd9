package backend

import (
	"errors"
	"net"
	"testing"

	"github.com/sashabaranov/go-openai"
)

func TestClassifySplitsAPIAndNetworkFailures(t *testing.T) {
	apiErr := &openai.APIError{HTTPStatusCode: 429, Message: "rate limited"}
	if got := classify("chat completion", apiErr); got.Kind != KindAPI {
		t.Fatalf("APIError should classify as KindAPI, got %v", got.Kind)
	}

	reqErr := &openai.RequestError{HTTPStatusCode: 502, Err: errors.New("bad gateway")}
	if got := classify("chat completion", reqErr); got.Kind != KindAPI {
		t.Fatalf("RequestError should classify as KindAPI, got %v", got.Kind)
	}

	netErr := &net.OpError{Op: "dial", Err: errors.New("connection refused")}
	if got := classify("chat completion", netErr); got.Kind != KindNetwork {
		t.Fatalf("transport error should classify as KindNetwork, got %v", got.Kind)
	}
}

func TestErrorUnwraps(t *testing.T) {
	inner := errors.New("boom")
	err := &Error{Kind: KindNetwork, Op: "chat completion", Err: inner}
	if !errors.Is(err, inner) {
		t.Fatalf("Error should unwrap to the inner error")
	}
	var be *Error
	if !errors.As(error(err), &be) || be.Kind != KindNetwork {
		t.Fatalf("errors.As should recover the typed failure")
	}
}

func TestFactoryRejectsUnknownProvider(t *testing.T) {
	f := &Factory{}
	if _, err := f.CreateClient("acme", "some-model"); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}

func TestFactoryBuildsOpenAIClient(t *testing.T) {
	f := &Factory{OpenAIAPIKey: "key", OpenAIBaseURL: "http://localhost:3002/api", MaxTokens: 2048}
	c, err := f.CreateClient("openai", "haiku-4.5")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, ok := c.(*OpenAIClient); !ok {
		t.Fatalf("expected *OpenAIClient, got %T", c)
	}
}
