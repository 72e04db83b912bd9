package platform

import (
	"context"
	"fmt"

	webexteams "github.com/jbogarin/go-cisco-webex-teams/sdk"
)

// WebexClient adapts the Webex Teams REST API. Webex lists messages
// newest-first.
type WebexClient struct {
	sdk *webexteams.Client
}

func NewWebex(accessToken string) *WebexClient {
	client := webexteams.NewClient()
	client.SetAuthToken(accessToken)
	return &WebexClient{sdk: client}
}

func (c *WebexClient) ListRooms(_ context.Context, limit int) ([]Room, error) {
	resp, _, err := c.sdk.Rooms.ListRooms(&webexteams.ListRoomsQueryParams{Max: limit})
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	out := make([]Room, 0, len(resp.Items))
	for _, r := range resp.Items {
		out = append(out, Room{ID: r.ID, Title: r.Title})
	}
	return out, nil
}

func (c *WebexClient) ListMessages(_ context.Context, roomID string, limit int) ([]Message, error) {
	resp, _, err := c.sdk.Messages.ListMessages(&webexteams.ListMessagesQueryParams{
		RoomID: roomID,
		Max:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list messages for room %s: %w", roomID, err)
	}
	out := make([]Message, 0, len(resp.Items))
	for _, m := range resp.Items {
		out = append(out, Message{
			ID:          m.ID,
			RoomID:      m.RoomID,
			PersonEmail: m.PersonEmail,
			Text:        m.Text,
			Created:     m.Created,
		})
	}
	return out, nil
}

func (c *WebexClient) SendMessage(_ context.Context, roomID, markdown string) error {
	_, _, err := c.sdk.Messages.CreateMessage(&webexteams.MessageCreateRequest{
		RoomID:   roomID,
		Markdown: markdown,
	})
	if err != nil {
		return fmt.Errorf("send message to room %s: %w", roomID, err)
	}
	return nil
}

func (c *WebexClient) Me(_ context.Context) (Identity, error) {
	me, _, err := c.sdk.People.GetMe()
	if err != nil {
		return Identity{}, fmt.Errorf("get own identity: %w", err)
	}
	id := Identity{ID: me.ID, DisplayName: me.DisplayName}
	if len(me.Emails) > 0 {
		id.Email = me.Emails[0]
	}
	return id, nil
}
