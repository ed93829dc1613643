// Package storage persists the session credential across runs. It is the
// terminal-client analog of browser localStorage: a small JSON document under
// fixed keys whose absence means logged out.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/inventorypro/dashboard/internal/domain/identity"
)

// CredentialStore reads and writes the credential file.
type CredentialStore struct {
	path string
}

// NewCredentialStore creates a store backed by the given file path.
func NewCredentialStore(path string) *CredentialStore {
	return &CredentialStore{path: path}
}

// persisted is the on-disk shape. Field names are the fixed storage keys.
type persisted struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Load returns the saved credential. A missing file is not an error; it means
// logged out and yields a zero credential.
func (s *CredentialStore) Load() (identity.Credential, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return identity.Credential{}, nil
		}
		return identity.Credential{}, fmt.Errorf("reading session file: %w", err)
	}

	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		// A corrupt session file is treated as logged out rather than a
		// fatal startup error.
		return identity.Credential{}, nil
	}
	if p.Token == "" {
		return identity.Credential{}, nil
	}

	return identity.Credential{
		Token:    p.Token,
		Username: p.Username,
		Role:     identity.ParseRole(p.Role),
	}, nil
}

// Save writes the credential durably. The write goes through a temp file and
// rename so a crash mid-write never leaves a corrupt session file.
func (s *CredentialStore) Save(cred identity.Credential) error {
	data, err := json.MarshalIndent(persisted{
		Token:    cred.Token,
		Username: cred.Username,
		Role:     string(cred.Role),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing session file: %w", err)
	}
	return nil
}

// Delete removes the credential file. Removing an absent file is a no-op.
func (s *CredentialStore) Delete() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}
