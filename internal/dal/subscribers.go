package dal

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// Subscribers is the persisted subscriber set. The backing file holds a
// plain JSON array of chat IDs and is fully rewritten on every mutation via
// write-temp-then-rename, so readers never observe a partial snapshot.
type Subscribers struct {
	path  string
	ids   map[int64]struct{}
	order []int64

	log *slog.Logger
	mx  sync.Mutex
}

// NewSubscribers loads the subscriber set from path. A missing file is not
// an error: the bot starts with an empty list and a warning. A file that
// fails to parse is an error so that the caller refuses to start instead of
// silently discarding subscriber data.
func NewSubscribers(path string, log *slog.Logger) (*Subscribers, error) {
	s := &Subscribers{
		path: path,
		ids:  make(map[int64]struct{}),
		log:  log.With("component", "dal").With("store", "subscribers"),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Warn("Subscribers file does not exist, continuing with empty list", "path", path)
			return s, nil
		}
		return nil, fmt.Errorf("read subscribers file %q: %w", path, err)
	}

	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("parse subscribers file %q: %w", path, err)
	}

	for _, id := range ids {
		if _, ok := s.ids[id]; ok {
			continue
		}
		s.ids[id] = struct{}{}
		s.order = append(s.order, id)
	}

	return s, nil
}

// Contains reports whether the given chat is subscribed.
func (s *Subscribers) Contains(chatID int64) bool {
	s.mx.Lock()
	defer s.mx.Unlock()
	_, ok := s.ids[chatID]
	return ok
}

// Add inserts the chat into the set and persists the snapshot. It returns
// false with no write when the chat is already subscribed.
func (s *Subscribers) Add(chatID int64) (bool, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if _, ok := s.ids[chatID]; ok {
		return false, nil
	}

	s.ids[chatID] = struct{}{}
	s.order = append(s.order, chatID)

	if err := s.persist(); err != nil {
		delete(s.ids, chatID)
		s.order = s.order[:len(s.order)-1]
		return false, fmt.Errorf("persist after add: %w", err)
	}

	s.log.Info("Subscriber added", "chatID", chatID, "total", len(s.order))
	return true, nil
}

// Remove deletes the chat from the set and persists the snapshot. It
// returns false with no write when the chat is not subscribed.
func (s *Subscribers) Remove(chatID int64) (bool, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if _, ok := s.ids[chatID]; !ok {
		return false, nil
	}

	idx := -1
	for i, id := range s.order {
		if id == chatID {
			idx = i
			break
		}
	}

	delete(s.ids, chatID)
	s.order = append(s.order[:idx], s.order[idx+1:]...)

	if err := s.persist(); err != nil {
		s.ids[chatID] = struct{}{}
		s.order = append(s.order, chatID)
		return false, fmt.Errorf("persist after remove: %w", err)
	}

	s.log.Info("Subscriber removed", "chatID", chatID, "total", len(s.order))
	return true, nil
}

// All returns a snapshot copy of the subscriber IDs, safe to iterate while
// the set is mutated.
func (s *Subscribers) All() []int64 {
	s.mx.Lock()
	defer s.mx.Unlock()

	ids := make([]int64, len(s.order))
	copy(ids, s.order)
	return ids
}

// Len returns the number of subscribers.
func (s *Subscribers) Len() int {
	s.mx.Lock()
	defer s.mx.Unlock()
	return len(s.order)
}

func (s *Subscribers) persist() error {
	data, err := json.Marshal(s.order)
	if err != nil {
		return fmt.Errorf("marshal subscribers: %w", err)
	}
	if s.order == nil {
		data = []byte("[]")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}
