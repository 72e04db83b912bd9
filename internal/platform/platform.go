// Package platform abstracts the team-chat side of the relay: room listing,
// message listing, message send and the bot's own identity.
package platform

import (
	"context"
	"time"
)

type Room struct {
	ID    string
	Title string
}

type Message struct {
	ID          string
	RoomID      string
	PersonEmail string
	Text        string
	Created     time.Time
}

type Identity struct {
	ID          string
	Email       string
	DisplayName string
}

// Client is the messaging collaborator. ListMessages returns the most recent
// messages in whatever order the platform uses; callers must not assume one.
type Client interface {
	ListRooms(ctx context.Context, limit int) ([]Room, error)
	ListMessages(ctx context.Context, roomID string, limit int) ([]Message, error)
	SendMessage(ctx context.Context, roomID, markdown string) error
	Me(ctx context.Context) (Identity, error)
}
