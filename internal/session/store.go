package session

import "sync"

// entry pairs a session with its own lock so updates for the same user
// serialize while distinct users proceed in parallel.
type entry struct {
	mu   sync.Mutex
	sess Session
}

// Store is an in-memory session map safe for concurrent use.
// Update calls for the same user id never interleave: the per-entry mutex is
// held for the whole mutation, including any side effects the mutator runs.
type Store struct {
	mu      sync.RWMutex
	entries map[int64]*entry
}

// NewStore constructs an empty in-memory store.
func NewStore() *Store {
	return &Store{entries: make(map[int64]*entry)}
}

// Get returns a snapshot of the session for a user if it exists.
func (s *Store) Get(userID int64) (Session, bool) {
	s.mu.RLock()
	e, ok := s.entries[userID]
	s.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sess, true
}

// Update creates a default session if absent, applies the mutation under the
// per-user lock, and returns a snapshot of the result. The mutator must not
// call back into the store for the same user.
func (s *Store) Update(userID int64, mutate func(*Session)) Session {
	for {
		s.mu.Lock()
		e, ok := s.entries[userID]
		if !ok {
			e = &entry{sess: Session{UserID: userID, State: StateIdle}}
			s.entries[userID] = e
		}
		s.mu.Unlock()

		e.mu.Lock()
		s.mu.RLock()
		current := s.entries[userID]
		s.mu.RUnlock()
		if current != e {
			// The entry was deleted while we waited for its lock; the
			// mutation must apply to a fresh session instead.
			e.mu.Unlock()
			continue
		}
		if mutate != nil {
			mutate(&e.sess)
		}
		snapshot := e.sess
		e.mu.Unlock()
		return snapshot
	}
}

// Delete removes all state for a user; no-op if absent.
// An in-flight Update on the same user completes before the entry is dropped.
func (s *Store) Delete(userID int64) {
	s.mu.RLock()
	e, ok := s.entries[userID]
	s.mu.RUnlock()
	if !ok {
		return
	}
	e.mu.Lock()
	s.mu.Lock()
	if s.entries[userID] == e {
		delete(s.entries, userID)
	}
	s.mu.Unlock()
	e.mu.Unlock()
}

// Len reports the number of active sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
