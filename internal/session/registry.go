package session

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when a session ID is not registered.
var ErrNotFound = errors.New("session not found")

type entry struct {
	mu    sync.Mutex
	state *State
}

// Registry holds live sessions keyed by ID. It is safe for concurrent use;
// callers mutate a session only inside With, which holds that session's lock.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	opts     []Option
}

// NewRegistry returns an empty registry. opts are applied to every session
// it creates.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		opts:     opts,
	}
}

// Create starts a new session and returns its snapshot.
func (r *Registry) Create() Snapshot {
	s := New(r.opts...)

	r.mu.Lock()
	r.sessions[s.ID] = &entry{state: s}
	r.mu.Unlock()

	return s.Snapshot()
}

// Get returns a snapshot of the session with the given ID.
func (r *Registry) Get(id string) (Snapshot, error) {
	var snap Snapshot
	err := r.With(id, func(s *State) error {
		snap = s.Snapshot()
		return nil
	})
	return snap, err
}

// With runs fn with exclusive access to the session. The error from fn is
// returned unchanged.
func (r *Registry) With(id string, fn func(*State) error) error {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.state)
}

// Delete removes a session. Deleting an unknown ID returns ErrNotFound.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
