package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"webex-chatter/internal/announce"
	"webex-chatter/internal/backend"
	"webex-chatter/internal/bot"
	"webex-chatter/internal/config"
	"webex-chatter/internal/history"
	"webex-chatter/internal/platform"
	"webex-chatter/internal/storage"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	backendClient, err := newBackendClient(cfg)
	if err != nil {
		log.Fatalf("failed to create backend client: %v", err)
	}

	platformClient, err := newPlatformClient(cfg)
	if err != nil {
		log.Fatalf("failed to create platform client: %v", err)
	}

	var rec storage.Recorder
	if cfg.TranscriptFilePath != "" {
		fr, err := storage.NewFileRecorder(cfg.TranscriptFilePath)
		if err != nil {
			log.Printf("failed to init transcript recorder: %v", err)
		} else {
			rec = fr
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := bot.New(ctx, bot.Options{
		Platform:         platformClient,
		Backend:          backendClient,
		History:          history.NewStore(),
		Recorder:         rec,
		SystemPrompt:     readSystemPrompt(cfg.SystemPromptPath),
		PollInterval:     cfg.PollInterval,
		BackoffInterval:  cfg.BackoffInterval,
		RoomLimit:        cfg.RoomLimit,
		MessageLimit:     cfg.MessageLimit,
		SeenRetainCycles: cfg.SeenRetainCycles,
	})
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	if cfg.AnnounceCron != "" && cfg.AnnounceText != "" {
		a := announce.New(platformClient, cfg.RoomLimit)
		if err := a.Schedule(cfg.AnnounceCron, cfg.AnnounceText); err != nil {
			log.Printf("failed to schedule announcements: %v", err)
		} else {
			defer a.Stop()
		}
	}

	if err := b.Run(ctx); err != nil {
		log.Fatalf("bot run failed: %v", err)
	}
}

func newBackendClient(cfg *config.Config) (backend.Client, error) {
	f := &backend.Factory{
		OpenAIAPIKey:     cfg.OpenWebUIAPIKey,
		OpenAIBaseURL:    cfg.OpenWebUIBaseURL,
		MaxTokens:        cfg.MaxTokens,
		SearchPrompt:     backend.DefaultSearchPrompt,
		SearchTimeout:    cfg.SearchTimeout,
		YandexOAuthToken: cfg.YandexOAuthToken,
		YandexFolderID:   cfg.YandexFolderID,
	}
	return f.CreateClient(cfg.BackendProvider, cfg.Model)
}

func newPlatformClient(cfg *config.Config) (platform.Client, error) {
	switch cfg.Platform {
	case "webex":
		return platform.NewWebex(cfg.WebexBotToken), nil
	case "telegram":
		return platform.NewTelegram(cfg.TelegramBotToken)
	default:
		return nil, fmt.Errorf("unknown platform: %s", cfg.Platform)
	}
}

func readSystemPrompt(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("system prompt file not found or unreadable at %s: %v", path, err)
		return ""
	}
	return string(data)
}
