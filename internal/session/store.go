package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"
)

// Store maps opaque session identifiers to authenticated users. It lives for
// the lifetime of the process: sessions are never expired or persisted, so a
// restart silently logs everyone out.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*model.User
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*model.User)}
}

// Create binds a fresh identifier to the user and returns it. The identifier
// space is treated as collision-free.
func (s *Store) Create(user *model.User) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = user
	s.mu.Unlock()
	return id
}

// Resolve returns the user bound to the identifier, if any.
func (s *Store) Resolve(id string) (*model.User, bool) {
	s.mu.RLock()
	user, ok := s.sessions[id]
	s.mu.RUnlock()
	return user, ok
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
