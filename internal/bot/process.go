package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"webex-chatter/internal/backend"
	"webex-chatter/internal/commands"
	"webex-chatter/internal/history"
	"webex-chatter/internal/platform"
	"webex-chatter/internal/storage"
	"webex-chatter/internal/trigger"
)

const defaultSystemPrompt = `You are a helpful AI assistant in a team chat with web search capabilities.
Be concise but friendly. Format responses nicely for chat - use short paragraphs.
If you don't know something or need current/real-time information, say so honestly.
When you need up-to-date info, the system will automatically search the web for you.`

const helpText = `**Available Commands:**
• Just type your message - AI auto-searches when needed 🔍
• ` + "`/search <query>`" + ` - Force a web search
• ` + "`/clear`" + ` - Clear conversation history
• ` + "`/help`" + ` - Show this help message
• ` + "`/models`" + ` - List available AI models

💡 *Web search activates automatically for current events, troubleshooting, and when you need real-time info!*`

const (
	clearedText      = "✓ Conversation history cleared!"
	emptyQueryText   = "❌ Please provide a search query. Example: `/search latest AI news`"
	apologyText      = "Sorry, something went wrong while answering. Please try again."
	searchPrefix     = "🔍 Searching the web...\n\n"
	autoSearchPrefix = "🔍 *Searching for current info...*\n\n"
)

func (b *Bot) processMessage(ctx context.Context, msg platform.Message) {
	var response string

	cmd := commands.Parse(msg.Text)
	switch cmd.Kind {
	case commands.Clear:
		if err := b.history.Clear(msg.RoomID); err != nil {
			log.Printf("clear failed for room %s: %v", msg.RoomID, err)
			response = "❌ Could not clear history for this room."
		} else {
			response = clearedText
		}
	case commands.Help:
		response = helpText
	case commands.Models:
		response = b.listModels(ctx)
	case commands.Search:
		if cmd.Query == "" {
			response = emptyQueryText
		} else {
			response = searchPrefix + b.respondSearch(ctx, msg, cmd.Query)
		}
	default:
		if v := trigger.Classify(msg.Text); v.NeedsSearch {
			log.Printf("auto-search triggered by %s", v.Reason)
			response = autoSearchPrefix + b.respondSearch(ctx, msg, msg.Text)
		} else {
			response = b.respondDirect(ctx, msg, msg.Text, "direct")
		}
	}

	if err := b.platform.SendMessage(ctx, msg.RoomID, response); err != nil {
		log.Printf("failed to send response to room %s: %v", msg.RoomID, err)
		return
	}
	log.Printf("responded to %s: %.100s", msg.PersonEmail, response)
}

// respondSearch asks the search-augmented endpoint; if that fails it falls
// back to a direct completion with the rewritten query instead of surfacing
// the failure.
func (b *Bot) respondSearch(ctx context.Context, msg platform.Message, query string) string {
	resp, err := b.backend.SearchComplete(ctx, query)
	if err != nil {
		log.Printf("search failed (%v), falling back to direct completion", err)
		return b.respondDirect(ctx, msg, "Please search for: "+query, "fallback")
	}
	b.record(msg, resp.Content, "search")
	return resp.Content
}

// respondDirect runs system prompt + room history + the user turn through the
// backend and stores the exchange.
func (b *Bot) respondDirect(ctx context.Context, msg platform.Message, prompt, mode string) string {
	msgs := []backend.Message{{Role: "system", Content: b.systemPrompt}}
	turns, err := b.history.History(msg.RoomID)
	if err != nil {
		log.Printf("history lookup failed for room %q: %v", msg.RoomID, err)
	}
	for _, t := range turns {
		msgs = append(msgs, backend.Message{Role: t.Role, Content: t.Content})
	}
	msgs = append(msgs, backend.Message{Role: "user", Content: prompt})

	resp, err := b.backend.Complete(ctx, msgs)
	if err != nil {
		log.Printf("completion failed: %v", err)
		return apologyText
	}

	if err := b.history.Append(msg.RoomID,
		history.Turn{Role: "user", Content: prompt},
		history.Turn{Role: "assistant", Content: resp.Content},
	); err != nil {
		log.Printf("history append failed for room %q: %v", msg.RoomID, err)
	}
	b.record(msg, resp.Content, mode)
	return resp.Content
}

func (b *Bot) listModels(ctx context.Context) string {
	models, err := b.backend.ListModels(ctx)
	if err != nil {
		log.Printf("model listing failed: %v", err)
		return "Sorry, I could not fetch the model list right now."
	}
	var sb strings.Builder
	sb.WriteString("**Available Models:**\n")
	for _, m := range models {
		fmt.Fprintf(&sb, "• %s\n", m)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (b *Bot) record(msg platform.Message, response, mode string) {
	if b.recorder == nil {
		return
	}
	err := b.recorder.AppendInteraction(storage.Event{
		Timestamp:         time.Now().UTC(),
		RoomID:            msg.RoomID,
		PersonEmail:       msg.PersonEmail,
		UserMessage:       msg.Text,
		AssistantResponse: response,
		Mode:              mode,
	})
	if err != nil {
		log.Printf("transcript append failed: %v", err)
	}
}
