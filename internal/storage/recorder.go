package storage

import "time"

// Event is one question/answer exchange as seen from the chat surface.
// Mode records how the answer was produced: "direct", "search" or "fallback".
// Events are expected to be appended in chronological order.
type Event struct {
	Timestamp         time.Time `json:"timestamp"`
	RoomID            string    `json:"room_id"`
	PersonEmail       string    `json:"person_email"`
	UserMessage       string    `json:"user_message"`
	AssistantResponse string    `json:"assistant_response"`
	Mode              string    `json:"mode"`
}

// Recorder abstracts persistence of interaction events.
// Implementations can be file-based, database, etc.
// LoadInteractions should return events in chronological order.
// AppendInteraction should atomically append a new event.
// Implementations must be safe for concurrent use.
type Recorder interface {
	AppendInteraction(event Event) error
	LoadInteractions() ([]Event, error)
}
