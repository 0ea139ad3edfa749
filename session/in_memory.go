package session

import (
	"container/list"
	"sync"

	"github.com/knowgraph/graphqa/core"
)

// Options configure the in-memory session store.
type Options struct {
	// MaxSessions bounds the number of distinct sessions tracked at once.
	// When the bound is reached the least recently appended session is
	// evicted entirely. Zero means unlimited.
	MaxSessions int
}

// InMemoryStore is a volatile core.SessionStore keeping per-session turn
// history in a process local map. Each session's history is bounded to
// core.HistoryWindow turns with oldest-first eviction, and history reads
// return defensive copies so callers can never mutate stored state.
//
// The total number of tracked sessions is optionally bounded: with a
// MaxSessions limit the store evicts whole sessions in least-recently-appended
// order, keeping the overall footprint of a long-lived process bounded even
// when callers mint unbounded session identifiers. History lives for the
// lifetime of the process (or until LRU eviction); there is no persistence
// across restarts.
type InMemoryStore struct {
	mu          sync.RWMutex
	sessions    map[string]*sessionEntry
	lru         *list.List // front = most recently appended
	maxSessions int
}

type sessionEntry struct {
	turns []core.TurnRecord
	elem  *list.Element // value is the session id
}

// NewInMemoryStore constructs an empty in‑memory session store.
func NewInMemoryStore(optFns ...func(o *Options)) *InMemoryStore {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &InMemoryStore{
		sessions:    make(map[string]*sessionEntry),
		lru:         list.New(),
		maxSessions: opts.MaxSessions,
	}
}

// History returns a copy of the session's turns, oldest first. An unknown
// session id yields an empty slice.
func (s *InMemoryStore) History(sessionID string) ([]core.TurnRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return []core.TurnRecord{}, nil
	}
	turns := make([]core.TurnRecord, len(entry.turns))
	copy(turns, entry.turns)
	return turns, nil
}

// Append adds a turn to the session, creating the session lazily and evicting
// the oldest turns beyond the core.HistoryWindow cap. Appending marks the
// session as most recently used for whole-session LRU eviction.
func (s *InMemoryStore) Append(sessionID string, rec core.TurnRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		entry = &sessionEntry{}
		entry.elem = s.lru.PushFront(sessionID)
		s.sessions[sessionID] = entry
		s.evictLocked()
	} else {
		s.lru.MoveToFront(entry.elem)
	}

	entry.turns = append(entry.turns, rec)
	if excess := len(entry.turns) - core.HistoryWindow; excess > 0 {
		entry.turns = append(entry.turns[:0], entry.turns[excess:]...)
	}
	return nil
}

// Len returns the number of sessions currently tracked.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// evictLocked drops least recently appended sessions while over capacity.
// Caller must hold the write lock.
func (s *InMemoryStore) evictLocked() {
	if s.maxSessions <= 0 {
		return
	}
	for len(s.sessions) > s.maxSessions {
		oldest := s.lru.Back()
		if oldest == nil {
			return
		}
		s.lru.Remove(oldest)
		delete(s.sessions, oldest.Value.(string))
	}
}
