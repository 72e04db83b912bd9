package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func TestFileRecorderAppendAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "transcript.jsonl")
	r, err := NewFileRecorder(path)
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	first := Event{
		Timestamp:         time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		RoomID:            "room-1",
		PersonEmail:       "alice@example.com",
		UserMessage:       "what's the weather today?",
		AssistantResponse: "Sunny.",
		Mode:              "search",
	}
	second := Event{
		Timestamp:         time.Date(2026, 8, 1, 12, 1, 0, 0, time.UTC),
		RoomID:            "room-1",
		PersonEmail:       "alice@example.com",
		UserMessage:       "thanks!",
		AssistantResponse: "Anytime.",
		Mode:              "direct",
	}
	if err := r.AppendInteraction(first); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := r.AppendInteraction(second); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := r.LoadInteractions()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0] != first || events[1] != second {
		t.Fatalf("round trip mismatch: %+v", events)
	}
}

func TestFileRecorderEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.jsonl")
	r, err := NewFileRecorder(path)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	events, err := r.LoadInteractions()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}
