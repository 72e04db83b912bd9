// Package bot runs the relay pipeline: poll the messaging platform, dedup,
// dispatch commands, compose a backend answer and send it back.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"webex-chatter/internal/backend"
	"webex-chatter/internal/history"
	"webex-chatter/internal/platform"
	"webex-chatter/internal/storage"
)

type Options struct {
	Platform platform.Client
	Backend  backend.Client
	History  *history.Store
	Recorder storage.Recorder // optional transcript

	SystemPrompt string // empty = built-in default

	PollInterval    time.Duration
	BackoffInterval time.Duration
	RoomLimit       int
	MessageLimit    int

	// SeenRetainCycles drops a seen id after this many cycles without the
	// platform listing it again. 0 keeps ids for the process lifetime.
	SeenRetainCycles int
}

type Bot struct {
	platform platform.Client
	backend  backend.Client
	history  *history.Store
	recorder storage.Recorder

	systemPrompt string

	pollInterval    time.Duration
	backoffInterval time.Duration
	roomLimit       int
	messageLimit    int
	retainCycles    uint64

	self  platform.Identity
	cycle uint64
	seen  map[string]uint64 // message id -> last cycle it was observed
}

func New(ctx context.Context, opts Options) (*Bot, error) {
	if opts.Platform == nil || opts.Backend == nil || opts.History == nil {
		return nil, errors.New("bot: platform, backend and history are required")
	}
	self, err := opts.Platform.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve own identity: %w", err)
	}

	b := &Bot{
		platform:        opts.Platform,
		backend:         opts.Backend,
		history:         opts.History,
		recorder:        opts.Recorder,
		systemPrompt:    opts.SystemPrompt,
		pollInterval:    opts.PollInterval,
		backoffInterval: opts.BackoffInterval,
		roomLimit:       opts.RoomLimit,
		messageLimit:    opts.MessageLimit,
		retainCycles:    uint64(max(opts.SeenRetainCycles, 0)),
		self:            self,
		seen:            make(map[string]uint64),
	}
	if b.systemPrompt == "" {
		b.systemPrompt = defaultSystemPrompt
	}
	if b.pollInterval <= 0 {
		b.pollInterval = 2 * time.Second
	}
	if b.backoffInterval <= 0 {
		b.backoffInterval = 5 * time.Second
	}
	if b.roomLimit <= 0 {
		b.roomLimit = 50
	}
	if b.messageLimit <= 0 {
		b.messageLimit = 5
	}
	return b, nil
}

// Run polls until ctx is cancelled. One cycle fully completes, backend calls
// included, before the next begins; there is no concurrency inside the loop.
func (b *Bot) Run(ctx context.Context) error {
	b.seed(ctx)
	log.Printf("bot started as %s, polling every %s", b.self.Email, b.pollInterval)

	for {
		wait := b.pollInterval
		if err := b.pollCycle(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Printf("poll cycle failed: %v", err)
			wait = b.backoffInterval
		}
		select {
		case <-ctx.Done():
			log.Printf("bot stopped")
			return nil
		case <-time.After(wait):
		}
	}
}

// seed marks every currently listed message as seen without processing it, so
// a restart does not replay history. Failure here is only a warning.
func (b *Bot) seed(ctx context.Context) {
	rooms, err := b.platform.ListRooms(ctx, b.roomLimit)
	if err != nil {
		log.Printf("warning: could not fetch initial rooms: %v", err)
		return
	}
	for _, room := range rooms {
		msgs, err := b.platform.ListMessages(ctx, room.ID, b.messageLimit)
		if err != nil {
			log.Printf("warning: could not fetch initial messages for room %s: %v", room.ID, err)
			continue
		}
		for _, msg := range msgs {
			b.seen[msg.ID] = b.cycle
		}
	}
}

func (b *Bot) pollCycle(ctx context.Context) error {
	b.cycle++

	rooms, err := b.platform.ListRooms(ctx, b.roomLimit)
	if err != nil {
		return fmt.Errorf("list rooms: %w", err)
	}
	for _, room := range rooms {
		msgs, err := b.platform.ListMessages(ctx, room.ID, b.messageLimit)
		if err != nil {
			return fmt.Errorf("list messages for room %s: %w", room.ID, err)
		}
		for _, msg := range msgs {
			_, dispatched := b.seen[msg.ID]
			// Stamp before processing: a crash mid-processing must not
			// cause a replay (at-most-once per process lifetime).
			b.seen[msg.ID] = b.cycle
			if dispatched {
				continue
			}
			if msg.PersonEmail == b.self.Email {
				continue
			}
			log.Printf("new message from %s in room %s", msg.PersonEmail, msg.RoomID)
			b.processMessage(ctx, msg)
		}
	}

	b.evictSeen()
	return nil
}

// evictSeen drops ids the platform has not listed for retainCycles cycles.
// Anything still inside the recent-message window keeps getting re-stamped
// and survives.
func (b *Bot) evictSeen() {
	if b.retainCycles == 0 {
		return
	}
	for id, last := range b.seen {
		if b.cycle-last >= b.retainCycles {
			delete(b.seen, id)
		}
	}
}
