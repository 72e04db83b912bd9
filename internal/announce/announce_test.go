package announce

import (
	"context"
	"testing"

	"webex-chatter/internal/platform"
)

type fakePlatform struct {
	rooms []platform.Room
	sent  map[string][]string
}

func (f *fakePlatform) ListRooms(context.Context, int) ([]platform.Room, error) {
	return f.rooms, nil
}

func (f *fakePlatform) ListMessages(context.Context, string, int) ([]platform.Message, error) {
	return nil, nil
}

func (f *fakePlatform) SendMessage(_ context.Context, roomID, markdown string) error {
	if f.sent == nil {
		f.sent = make(map[string][]string)
	}
	f.sent[roomID] = append(f.sent[roomID], markdown)
	return nil
}

func (f *fakePlatform) Me(context.Context) (platform.Identity, error) {
	return platform.Identity{}, nil
}

func TestBroadcastReachesAllRooms(t *testing.T) {
	p := &fakePlatform{rooms: []platform.Room{{ID: "r1"}, {ID: "r2"}}}
	a := New(p, 50)
	defer a.Stop()

	if err := a.broadcast(context.Background(), "standup in 5"); err != nil {
		t.Fatalf("broadcast: %v", err)
	}
	for _, room := range []string{"r1", "r2"} {
		if got := p.sent[room]; len(got) != 1 || got[0] != "standup in 5" {
			t.Fatalf("room %s did not get the announcement: %+v", room, got)
		}
	}
}

func TestScheduleRejectsBadSpec(t *testing.T) {
	a := New(&fakePlatform{}, 50)
	defer a.Stop()

	if err := a.Schedule("not a cron spec", "hi"); err == nil {
		t.Fatalf("expected error for malformed cron spec")
	}
}
