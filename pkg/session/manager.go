package session

import (
	"sync"

	"coursehub/pkg/domain"
)

// Manager serializes access to the underlying store and drops sessions whose
// credential has expired, so no request goes out with a dead token.
type Manager struct {
	mu    sync.Mutex
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Current returns the live session, if any. Callers must capture the result
// once per operation rather than re-reading mid-flight.
func (m *Manager) Current() (domain.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok, err := m.store.Load()
	if err != nil || !ok {
		return domain.Session{}, false
	}
	if Expired(sess.Token) {
		_ = m.store.Clear()
		return domain.Session{}, false
	}
	return sess, true
}

func (m *Manager) Set(sess domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Save(sess)
}

func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Clear()
}

// Token is the api.TokenSource for the manager.
func (m *Manager) Token() string {
	sess, ok := m.Current()
	if !ok {
		return ""
	}
	return sess.Token
}
