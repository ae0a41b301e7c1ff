package store

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/favmov/favmov-go/internal/model"
)

const sessionFile = "session.json"

type sessionState struct {
	Token string              `json:"token"`
	User  *model.UserResponse `json:"user"`
}

// SessionStore persists the authentication token and user snapshot.
type SessionStore struct {
	mu    sync.Mutex
	path  string
	state sessionState
}

// OpenSession loads the session state from dir, if any.
func OpenSession(dir string) (*SessionStore, error) {
	s := &SessionStore{path: filepath.Join(dir, sessionFile)}
	if err := load(s.path, &s.state); err != nil {
		return nil, err
	}
	return s, nil
}

// Authenticated reports whether both a token and a user snapshot are present.
func (s *SessionStore) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token != "" && s.state.User != nil
}

// Token returns the stored session token, or "" when logged out.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

// User returns the stored user snapshot, or nil when logged out.
func (s *SessionStore) User() *model.UserResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return nil
	}
	u := *s.state.User
	return &u
}

// Login stores the token and user snapshot.
func (s *SessionStore) Login(token string, user model.UserResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = sessionState{Token: token, User: &user}
	return save(s.path, s.state)
}

// Logout clears the session.
func (s *SessionStore) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = sessionState{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// UpdateUser replaces the stored user snapshot, keeping the token.
func (s *SessionStore) UpdateUser(user model.UserResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Token == "" {
		return nil
	}
	s.state.User = &user
	return save(s.path, s.state)
}
