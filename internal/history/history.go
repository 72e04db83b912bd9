package history

import (
	"errors"
	"sync"
)

// DefaultLimit is the maximum number of turns kept per room. Older turns are
// evicted in user+assistant pairs so a reply is never orphaned from its
// question.
const DefaultLimit = 20

var ErrEmptyRoomID = errors.New("history: empty room id")

type Turn struct {
	Role    string
	Content string
}

// Store keeps a bounded conversation log per room. Logs are created lazily on
// first append and live until Clear; nothing expires on its own.
type Store struct {
	mu    sync.RWMutex
	limit int
	rooms map[string][]Turn
}

func NewStore() *Store {
	return NewStoreWithLimit(DefaultLimit)
}

func NewStoreWithLimit(limit int) *Store {
	if limit < 2 {
		limit = 2
	}
	// keep the limit even so paired eviction can always reach it
	if limit%2 != 0 {
		limit--
	}
	return &Store{limit: limit, rooms: make(map[string][]Turn)}
}

// Append stores one user/assistant exchange for a room, evicting the oldest
// pairs once the log exceeds the limit. Appending two empty turns is a no-op.
func (s *Store) Append(roomID string, userTurn, assistantTurn Turn) error {
	if roomID == "" {
		return ErrEmptyRoomID
	}
	if userTurn.Content == "" && assistantTurn.Content == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	log := append(s.rooms[roomID], userTurn, assistantTurn)
	for len(log) > s.limit {
		log = log[2:]
	}
	s.rooms[roomID] = log
	return nil
}

// History returns a copy of the room's log; callers may mutate the result
// freely. Unknown rooms yield an empty slice.
func (s *Store) History(roomID string) ([]Turn, error) {
	if roomID == "" {
		return nil, ErrEmptyRoomID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	log := s.rooms[roomID]
	out := make([]Turn, len(log))
	copy(out, log)
	return out, nil
}

// Clear drops the room's log entirely. Clearing an unknown room is fine.
func (s *Store) Clear(roomID string) error {
	if roomID == "" {
		return ErrEmptyRoomID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, roomID)
	return nil
}
