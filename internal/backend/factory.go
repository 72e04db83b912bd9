package backend

import (
	"fmt"
	"strings"
	"time"
)

const (
	ProviderOpenAI = "openai"
	ProviderYandex = "yandex"
)

// Factory creates backend clients with consistent logic.
type Factory struct {
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	MaxTokens        int
	SearchPrompt     string
	SearchTimeout    time.Duration
	YandexOAuthToken string
	YandexFolderID   string
}

func (f *Factory) CreateClient(provider, model string) (Client, error) {
	switch strings.ToLower(provider) {
	case ProviderOpenAI:
		return NewOpenAI(f.OpenAIAPIKey, f.OpenAIBaseURL, model, f.MaxTokens, f.SearchPrompt, f.SearchTimeout), nil
	case ProviderYandex:
		return NewYandex(f.YandexOAuthToken, f.YandexFolderID, f.SearchPrompt)
	default:
		return nil, fmt.Errorf("unknown backend provider: %s", provider)
	}
}
