package backend

import (
	"context"
	"fmt"
)

// DefaultSearchPrompt steers search-augmented answers toward fresh, cited
// information; direct answers use the chat system prompt instead.
const DefaultSearchPrompt = `You are a research assistant with live web access. Answer with the most current information you can retrieve.
Cite your sources with links and mention when a result may already be out of date.
Keep the answer short and formatted for chat.`

type Message struct {
	Role    string
	Content string
}

type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Client is the chat-completion collaborator. Complete answers from the
// prompt alone; SearchComplete performs a web-augmented lookup for a query
// and is allowed a longer timeout budget because it does external retrieval.
type Client interface {
	Complete(ctx context.Context, messages []Message) (Response, error)
	SearchComplete(ctx context.Context, query string) (Response, error)
	ListModels(ctx context.Context) ([]string, error)
}

type ErrorKind int

const (
	// KindNetwork covers transport failures: the backend was never reached
	// or the connection broke mid-call.
	KindNetwork ErrorKind = iota
	// KindAPI covers non-2xx responses from a reachable backend.
	KindAPI
)

// Error is the typed failure every Client method returns, so callers can
// branch on the failure class instead of string-matching.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
