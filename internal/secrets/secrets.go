// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files. Each
// file holds one secret: the file name is the key, the trimmed contents the
// value.
//
// Recognized keys: gemini-api-key, anthropic-api-key.
package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/lecture-notes/pkg/types"
)

// Dir is the default secrets directory, relative to the working directory.
const Dir = ".secrets"

// Store maps secret names to values.
type Store map[string]string

// Load reads every regular, non-hidden file in dir. A missing directory
// yields an empty Store. Unreadable files are logged and skipped.
func Load(dir string, log zerolog.Logger) (Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Store{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	store := Store{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn().Err(err).Str("secret", name).Msg("could not read secret")
			continue
		}
		if v := strings.TrimSpace(string(data)); v != "" {
			store[name] = v
		}
	}
	return store, nil
}

// KeyName returns the secret file name holding the API key for p.
func KeyName(p types.Provider) string {
	return string(p) + "-api-key"
}

// APIKey returns the stored API key for p, or "".
func (s Store) APIKey(p types.Provider) string {
	return s[KeyName(p)]
}
