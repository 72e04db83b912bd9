package platform

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// telegramBufferCap bounds the per-chat buffer; the poller only ever asks for
// the most recent handful of messages anyway.
const telegramBufferCap = 50

type telegramAPI interface {
	GetUpdates(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error)
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramClient adapts Telegram's pull-based update stream to the
// rooms/messages polling contract: a synchronous GetUpdates drain feeds a
// per-chat buffer, and every chat ever seen becomes a room. Buffered
// messages are oldest-first.
type TelegramClient struct {
	api    telegramAPI
	self   tgbotapi.User
	offset int
	chats  []Room
	seen   map[int64]bool
	buffer map[int64][]Message
}

func NewTelegram(botToken string) (*TelegramClient, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("init telegram api: %w", err)
	}
	return newTelegramWith(api, api.Self), nil
}

func newTelegramWith(api telegramAPI, self tgbotapi.User) *TelegramClient {
	return &TelegramClient{
		api:    api,
		self:   self,
		seen:   make(map[int64]bool),
		buffer: make(map[int64][]Message),
	}
}

func (c *TelegramClient) ListRooms(_ context.Context, limit int) ([]Room, error) {
	if err := c.drain(); err != nil {
		return nil, err
	}
	rooms := c.chats
	if limit > 0 && len(rooms) > limit {
		rooms = rooms[:limit]
	}
	out := make([]Room, len(rooms))
	copy(out, rooms)
	return out, nil
}

func (c *TelegramClient) ListMessages(_ context.Context, roomID string, limit int) ([]Message, error) {
	chatID, err := strconv.ParseInt(roomID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad telegram room id %q: %w", roomID, err)
	}
	if err := c.drain(); err != nil {
		return nil, err
	}
	msgs := c.buffer[chatID]
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (c *TelegramClient) SendMessage(_ context.Context, roomID, markdown string) error {
	chatID, err := strconv.ParseInt(roomID, 10, 64)
	if err != nil {
		return fmt.Errorf("bad telegram room id %q: %w", roomID, err)
	}
	msg := tgbotapi.NewMessage(chatID, markdown)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := c.api.Send(msg); err != nil {
		return fmt.Errorf("send message to chat %d: %w", chatID, err)
	}
	return nil
}

func (c *TelegramClient) Me(_ context.Context) (Identity, error) {
	return Identity{
		ID:          strconv.FormatInt(c.self.ID, 10),
		Email:       c.self.UserName,
		DisplayName: c.self.FirstName,
	}, nil
}

// drain pulls whatever updates Telegram has queued and files them per chat.
func (c *TelegramClient) drain() error {
	u := tgbotapi.NewUpdate(c.offset)
	u.Limit = 100
	updates, err := c.api.GetUpdates(u)
	if err != nil {
		return fmt.Errorf("get updates: %w", err)
	}
	for _, upd := range updates {
		if upd.UpdateID >= c.offset {
			c.offset = upd.UpdateID + 1
		}
		if upd.Message == nil {
			continue
		}
		chatID := upd.Message.Chat.ID
		if !c.seen[chatID] {
			c.seen[chatID] = true
			c.chats = append(c.chats, Room{
				ID:    strconv.FormatInt(chatID, 10),
				Title: upd.Message.Chat.Title,
			})
		}
		var from string
		if upd.Message.From != nil {
			from = upd.Message.From.UserName
		}
		buf := append(c.buffer[chatID], Message{
			ID:          fmt.Sprintf("%d:%d", chatID, upd.Message.MessageID),
			RoomID:      strconv.FormatInt(chatID, 10),
			PersonEmail: from,
			Text:        upd.Message.Text,
			Created:     upd.Message.Time(),
		})
		if len(buf) > telegramBufferCap {
			buf = buf[len(buf)-telegramBufferCap:]
		}
		c.buffer[chatID] = buf
	}
	return nil
}
