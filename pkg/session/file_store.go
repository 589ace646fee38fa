package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"coursehub/pkg/domain"
)

// FileStore keeps the session in a single JSON file, the durable
// local-storage analog for a native client.
type FileStore struct {
	path string
}

// NewFileStore creates the parent directory if missing.
func NewFileStore(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("session file path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create session dir: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Save(sess domain.Session) error {
	data, err := json.MarshalIndent(toPersisted(sess), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	// 0600: the file holds a live credential.
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func (s *FileStore) Load() (domain.Session, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("read session file: %w", err)
	}
	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.Session{}, false, fmt.Errorf("parse session file: %w", err)
	}
	if p.Token == "" {
		return domain.Session{}, false, nil
	}
	return p.session(), true, nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
