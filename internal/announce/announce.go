// Package announce posts a configured message to every room on a cron
// schedule. It only ever sends; the poll loop stays the single writer of
// conversation and dedup state.
package announce

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"webex-chatter/internal/platform"
)

type Announcer struct {
	cron      *cron.Cron
	ctx       context.Context
	cancel    context.CancelFunc
	platform  platform.Client
	roomLimit int
}

func New(p platform.Client, roomLimit int) *Announcer {
	ctx, cancel := context.WithCancel(context.Background())
	return &Announcer{
		cron:      cron.New(cron.WithLocation(time.UTC)),
		ctx:       ctx,
		cancel:    cancel,
		platform:  p,
		roomLimit: roomLimit,
	}
}

// Schedule registers the announcement and starts the cron runner. The spec is
// a standard five-field cron expression, evaluated in UTC.
func (a *Announcer) Schedule(spec, message string) error {
	_, err := a.cron.AddFunc(spec, func() {
		if err := a.broadcast(a.ctx, message); err != nil {
			log.Printf("announcement broadcast failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	a.cron.Start()
	log.Printf("announcer started with schedule %q", spec)
	return nil
}

func (a *Announcer) Stop() {
	if a.cron != nil {
		ctx := a.cron.Stop()
		<-ctx.Done()
	}
	if a.cancel != nil {
		a.cancel()
	}
	log.Printf("announcer stopped")
}

func (a *Announcer) broadcast(ctx context.Context, message string) error {
	rooms, err := a.platform.ListRooms(ctx, a.roomLimit)
	if err != nil {
		return err
	}
	for _, room := range rooms {
		if err := a.platform.SendMessage(ctx, room.ID, message); err != nil {
			log.Printf("failed to announce to room %s: %v", room.ID, err)
		}
	}
	return nil
}
