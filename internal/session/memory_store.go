package session

import (
	"context"
	"sync"
)

// MemoryStore keeps sessions in process memory. Used in tests and local runs
// without a Redis instance; state is copied on the way in and out so callers
// never share slices with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]State)}
}

func (s *MemoryStore) Get(_ context.Context, sid string) (*State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[sid]
	if !ok {
		return &State{}, nil
	}

	return copyState(&state), nil
}

func (s *MemoryStore) Save(_ context.Context, sid string, state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sid] = *copyState(state)

	return nil
}

func copyState(state *State) *State {
	out := *state
	if state.Cart != nil {
		out.Cart = append(out.Cart[:0:0], state.Cart...)
	}

	return &out
}
