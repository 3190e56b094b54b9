// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/city-vote/models"
)

// Table file names under the data directory
const (
	settingsFile   = "settings.json"
	categoriesFile = "categories.json"
	votesFile      = "votes.json"
)

// Store persists the three document tables (settings, categories, votes) as
// whole JSON files under a data directory. Every save replaces the table's
// backing file atomically; there are no partial-document updates.
//
// Mutations of the votes table must go through UpdateVotes so the
// check-then-append sequence in vote casting is serialized.
type Store struct {
	dir string

	settingsMu   sync.Mutex
	categoriesMu sync.Mutex
	votesMu      sync.Mutex
}

// Open prepares the data directory and seeds any missing table with its
// default document: default Settings, empty categories, empty votes.
// Safe to call on an already-populated directory.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{dir: dir}

	if _, err := os.Stat(s.path(settingsFile)); os.IsNotExist(err) {
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return nil, err
		}
	}
	if _, err := os.Stat(s.path(categoriesFile)); os.IsNotExist(err) {
		if err := s.SaveCategories([]models.Category{}); err != nil {
			return nil, err
		}
	}
	if _, err := os.Stat(s.path(votesFile)); os.IsNotExist(err) {
		if err := s.SaveVotes([]models.Vote{}); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Dir returns the data directory backing this store.
func (s *Store) Dir() string {
	return s.dir
}

// Settings loads the settings document. A missing or corrupt backing file is
// treated as never written: the default document is returned and the error
// logged, never surfaced to the request.
func (s *Store) Settings() models.Settings {
	settings := models.DefaultSettings()
	if err := s.load(settingsFile, &settings); err != nil {
		slog.Error("failed to load settings, using defaults", "error", err)
		return models.DefaultSettings()
	}
	return settings
}

// SaveSettings replaces the settings document.
func (s *Store) SaveSettings(settings models.Settings) error {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()
	return s.save(settingsFile, settings)
}

// Categories loads the categories table, or an empty table on error.
func (s *Store) Categories() []models.Category {
	var categories []models.Category
	if err := s.load(categoriesFile, &categories); err != nil {
		slog.Error("failed to load categories, using empty table", "error", err)
		return []models.Category{}
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories
}

// SaveCategories replaces the categories table wholesale.
func (s *Store) SaveCategories(categories []models.Category) error {
	s.categoriesMu.Lock()
	defer s.categoriesMu.Unlock()
	if categories == nil {
		categories = []models.Category{}
	}
	return s.save(categoriesFile, categories)
}

// Votes loads the votes table, or an empty table on error.
func (s *Store) Votes() []models.Vote {
	var votes []models.Vote
	if err := s.load(votesFile, &votes); err != nil {
		slog.Error("failed to load votes, using empty table", "error", err)
		return []models.Vote{}
	}
	if votes == nil {
		votes = []models.Vote{}
	}
	return votes
}

// SaveVotes replaces the votes table. Callers that read the table first
// should use UpdateVotes instead.
func (s *Store) SaveVotes(votes []models.Vote) error {
	s.votesMu.Lock()
	defer s.votesMu.Unlock()
	if votes == nil {
		votes = []models.Vote{}
	}
	return s.save(votesFile, votes)
}

// UpdateVotes runs fn as a serialized read-modify-write of the votes table.
// The table is loaded under the table lock, fn transforms it, and the result
// is saved before the lock is released. If fn returns an error nothing is
// written and the error is returned to the caller, so quota checks inside fn
// cannot be raced past by concurrent requests.
func (s *Store) UpdateVotes(fn func(votes []models.Vote) ([]models.Vote, error)) error {
	s.votesMu.Lock()
	defer s.votesMu.Unlock()

	var votes []models.Vote
	if err := s.load(votesFile, &votes); err != nil {
		slog.Error("failed to load votes, using empty table", "error", err)
		votes = nil
	}
	if votes == nil {
		votes = []models.Vote{}
	}

	updated, err := fn(votes)
	if err != nil {
		return err
	}
	if updated == nil {
		updated = []models.Vote{}
	}

	return s.save(votesFile, updated)
}

func (s *Store) path(file string) string {
	return filepath.Join(s.dir, file)
}

func (s *Store) load(file string, v interface{}) error {
	data, err := os.ReadFile(s.path(file))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", file, err)
	}
	return nil
}

// save marshals the document and atomically replaces the backing file via a
// temp file + rename, so readers never observe a partial write.
func (s *Store) save(file string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", file, err)
	}

	tmp, err := os.CreateTemp(s.dir, file+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", file, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file for %s: %w", file, err)
	}

	if err := os.Rename(tmp.Name(), s.path(file)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", file, err)
	}

	slog.Debug("table saved", "table", file, "size", humanize.Bytes(uint64(len(data))))

	return nil
}
