package session

import (
	"sync"

	"coursehub/pkg/domain"
)

// MemoryStore holds the session in process memory only. Used by tests and
// ephemeral runs that should not persist a login.
type MemoryStore struct {
	mu   sync.Mutex
	sess domain.Session
	set  bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = sess
	s.set = true
	return nil
}

func (s *MemoryStore) Load() (domain.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess, s.set, nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = domain.Session{}
	s.set = false
	return nil
}
