package store

import (
	"sort"
	"sync"
)

// LikedSet holds the liked place ids for the lifetime of the process.
type LikedSet struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

func NewLikedSet() *LikedSet {
	return &LikedSet{ids: make(map[string]struct{})}
}

// Add inserts placeID and reports whether it was new.
func (s *LikedSet) Add(placeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.ids[placeID]; exists {
		return false
	}
	s.ids[placeID] = struct{}{}
	return true
}

// List returns a sorted snapshot of the ids.
func (s *LikedSet) List() []string {
	s.mu.RLock()
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	s.mu.RUnlock()

	sort.Strings(out)
	return out
}

func (s *LikedSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}
