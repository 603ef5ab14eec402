// Package session keeps lightweight in-memory records of analyses grouped
// by session ID. Sessions expire after a TTL; nothing is persisted.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultTTL = 30 * time.Minute

// Entry records one completed analysis. Payloads are never stored here.
type Entry struct {
	Framework string
	Subject   string
	At        time.Time
}

type sessionState struct {
	entries  []Entry
	lastSeen time.Time
}

// Store is a concurrency-safe TTL map of session histories. Expiry is
// enforced both on access and by the optional janitor.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*sessionState
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*sessionState),
	}
}

// Record appends one entry to the session, minting a new session ID when
// none is supplied, and returns the session ID. Recording into an expired
// session starts it over rather than resurrecting stale history.
func (s *Store) Record(id string, e Entry) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" {
		id = uuid.NewString()
	}
	state := s.sessions[id]
	if state == nil || s.expired(state) {
		state = &sessionState{}
		s.sessions[id] = state
	}
	if e.At.IsZero() {
		e.At = s.now()
	}
	state.entries = append(state.entries, e)
	state.lastSeen = s.now()
	return id
}

// Get returns a copy of the session history, or false when the session is
// unknown or expired. Expired sessions are removed on access.
func (s *Store) Get(id string) ([]Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.expired(state) {
		delete(s.sessions, id)
		return nil, false
	}
	out := make([]Entry, len(state.entries))
	copy(out, state.entries)
	return out, true
}

// Sweep removes every expired session and reports how many were dropped.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := 0
	for id, state := range s.sessions {
		if s.expired(state) {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped
}

// StartJanitor sweeps on the interval until ctx is cancelled.
func (s *Store) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) expired(state *sessionState) bool {
	return s.now().Sub(state.lastSeen) > s.ttl
}
