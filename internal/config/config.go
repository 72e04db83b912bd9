package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	// Messaging platform
	Platform         string `env:"PLATFORM" envDefault:"webex"`
	WebexBotToken    string `env:"WEBEX_BOT_TOKEN"`
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`

	// Chat backend
	BackendProvider  string        `env:"AI_PROVIDER" envDefault:"openai"`
	OpenWebUIAPIKey  string        `env:"OPENWEBUI_API_KEY"`
	OpenWebUIBaseURL string        `env:"OPENWEBUI_BASE_URL" envDefault:"http://localhost:3002/api"`
	Model            string        `env:"AI_MODEL" envDefault:"haiku-4.5"`
	MaxTokens        int           `env:"AI_MAX_TOKENS" envDefault:"2048"`
	SearchTimeout    time.Duration `env:"SEARCH_TIMEOUT" envDefault:"90s"`
	YandexOAuthToken string        `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string        `env:"YANDEX_FOLDER_ID"`

	// Polling
	PollInterval     time.Duration `env:"POLL_INTERVAL" envDefault:"2s"`
	BackoffInterval  time.Duration `env:"POLL_BACKOFF" envDefault:"5s"`
	RoomLimit        int           `env:"ROOM_LIMIT" envDefault:"50"`
	MessageLimit     int           `env:"MESSAGE_LIMIT" envDefault:"5"`
	SeenRetainCycles int           `env:"SEEN_RETAIN_CYCLES" envDefault:"0"`

	// Prompts
	SystemPromptPath string `env:"SYSTEM_PROMPT_PATH"`

	// Storage
	TranscriptFilePath string `env:"TRANSCRIPT_FILE_PATH"`

	// Scheduled announcements (both must be set to enable)
	AnnounceCron string `env:"ANNOUNCE_CRON"`
	AnnounceText string `env:"ANNOUNCE_TEXT"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}

// Validate checks the credentials the selected platform and provider need.
// A missing credential is fatal at startup; nothing else is.
func (c *Config) Validate() error {
	switch c.Platform {
	case "webex":
		if c.WebexBotToken == "" {
			return fmt.Errorf("WEBEX_BOT_TOKEN is required for the webex platform")
		}
	case "telegram":
		if c.TelegramBotToken == "" {
			return fmt.Errorf("TELEGRAM_BOT_TOKEN is required for the telegram platform")
		}
	default:
		return fmt.Errorf("unknown platform: %s", c.Platform)
	}
	switch c.BackendProvider {
	case "openai":
		if c.OpenWebUIAPIKey == "" {
			return fmt.Errorf("OPENWEBUI_API_KEY is required for the openai provider")
		}
	case "yandex":
		if c.YandexOAuthToken == "" || c.YandexFolderID == "" {
			return fmt.Errorf("YANDEX_OAUTH_TOKEN and YANDEX_FOLDER_ID are required for the yandex provider")
		}
	default:
		return fmt.Errorf("unknown backend provider: %s", c.BackendProvider)
	}
	return nil
}
