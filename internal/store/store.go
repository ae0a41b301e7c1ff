// Package store holds the client-side persisted state containers: the
// session store, the local favorites cache and the language setting. Each
// store owns one JSON file exclusively and writes through to disk on every
// mutation; last local write wins.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// load reads a JSON file into out. A missing file is not an error; out is
// left untouched.
func load(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, out)
}

// save writes v as JSON to path, creating the parent directory if needed.
func save(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
