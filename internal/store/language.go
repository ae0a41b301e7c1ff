package store

import (
	"path/filepath"
	"sync"
)

const languageFile = "language.json"

// DefaultLanguage is used until the user picks one.
const DefaultLanguage = "pt"

type languageState struct {
	Code string `json:"code"`
}

// LanguageStore persists the selected language code.
type LanguageStore struct {
	mu    sync.Mutex
	path  string
	state languageState
}

// OpenLanguage loads the language setting from dir, if any.
func OpenLanguage(dir string) (*LanguageStore, error) {
	s := &LanguageStore{path: filepath.Join(dir, languageFile)}
	if err := load(s.path, &s.state); err != nil {
		return nil, err
	}
	if s.state.Code == "" {
		s.state.Code = DefaultLanguage
	}
	return s, nil
}

// Code returns the selected language code.
func (s *LanguageStore) Code() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Code
}

// Set stores a new language code.
func (s *LanguageStore) Set(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Code = code
	return save(s.path, s.state)
}
