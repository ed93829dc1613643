// Package session owns the current credential: the single authoritative
// holder of authentication state, mirrored into durable storage on every
// change so a restart mid-session never loses the token.
package session

import (
	"sync"

	"go.uber.org/zap"

	"github.com/inventorypro/dashboard/internal/domain/identity"
)

// Persistence is the durable storage the credential is mirrored into.
type Persistence interface {
	Load() (identity.Credential, error)
	Save(identity.Credential) error
	Delete() error
}

// Observer is notified of session transitions. OnLogin fires whenever a
// credential is set (including restore on startup); OnLogout fires when an
// authenticated session is cleared.
type Observer interface {
	OnLogin(identity.Credential)
	OnLogout()
}

// Store holds the current credential and coordinates persistence and
// observer notification. Persistence always happens before observers run, so
// any fetch triggered by a login can never outrun the durable write.
type Store struct {
	mu        sync.RWMutex
	cred      identity.Credential
	persist   Persistence
	observers []Observer
	log       *zap.Logger
}

// NewStore creates a session store backed by the given persistence.
func NewStore(persist Persistence, log *zap.Logger) *Store {
	return &Store{
		persist: persist,
		log:     log,
	}
}

// Subscribe registers an observer for login/logout transitions.
func (s *Store) Subscribe(o Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()
}

// Restore loads any previously saved credential. When a token is present the
// login observers fire, which is what triggers the initial data load.
func (s *Store) Restore() error {
	cred, err := s.persist.Load()
	if err != nil {
		return err
	}
	if !cred.IsAuthenticated() {
		return nil
	}

	s.mu.Lock()
	s.cred = cred
	observers := s.snapshotObservers()
	s.mu.Unlock()

	s.log.Debug("session restored", zap.String("username", cred.Username), zap.String("role", string(cred.Role)))
	for _, o := range observers {
		o.OnLogin(cred)
	}
	return nil
}

// SetCredential replaces the current credential. The durable write happens
// first; if it fails the in-memory state is left unchanged and no observer
// fires.
func (s *Store) SetCredential(token, username string, role identity.Role) error {
	cred := identity.Credential{Token: token, Username: username, Role: role}

	if err := s.persist.Save(cred); err != nil {
		return err
	}

	s.mu.Lock()
	s.cred = cred
	observers := s.snapshotObservers()
	s.mu.Unlock()

	s.log.Info("signed in", zap.String("username", username), zap.String("role", string(role)))
	for _, o := range observers {
		o.OnLogin(cred)
	}
	return nil
}

// Clear empties the credential and removes it from durable storage. Clearing
// an already logged-out store is a no-op and fires no observers.
func (s *Store) Clear() {
	s.mu.Lock()
	wasAuthenticated := s.cred.IsAuthenticated()
	s.cred = identity.Credential{}
	observers := s.snapshotObservers()
	s.mu.Unlock()

	if err := s.persist.Delete(); err != nil {
		s.log.Warn("failed to remove persisted session", zap.Error(err))
	}
	if !wasAuthenticated {
		return
	}

	s.log.Info("signed out")
	for _, o := range observers {
		o.OnLogout()
	}
}

// Credential returns the current credential.
func (s *Store) Credential() identity.Credential {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred
}

// Token returns the current bearer token, empty when logged out. It satisfies
// the gateway's token source.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred.Token
}

// IsAuthenticated reports whether a token is held.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred.IsAuthenticated()
}

func (s *Store) snapshotObservers() []Observer {
	out := make([]Observer, len(s.observers))
	copy(out, s.observers)
	return out
}
