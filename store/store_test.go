// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/danielhkuo/city-vote/models"
)

func TestOpenSeedsDefaults(t *testing.T) {
	dir := t.TempDir()

	st, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	for _, file := range []string{"settings.json", "categories.json", "votes.json"} {
		if _, err := os.Stat(filepath.Join(dir, file)); err != nil {
			t.Errorf("Expected %s to be seeded: %v", file, err)
		}
	}

	settings := st.Settings()
	if !settings.AntiAbuseEnabled {
		t.Error("Expected anti-abuse enabled by default")
	}
	if settings.IsVotingActive {
		t.Error("Expected voting inactive by default")
	}
	if settings.Title == "" {
		t.Error("Expected a default title")
	}

	if got := len(st.Categories()); got != 0 {
		t.Errorf("Expected empty categories table, got %d entries", got)
	}
	if got := len(st.Votes()); got != 0 {
		t.Errorf("Expected empty votes table, got %d entries", got)
	}
}

func TestOpenIdempotent(t *testing.T) {
	dir := t.TempDir()

	st, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	settings := st.Settings()
	settings.IsVotingActive = true
	if err := st.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	// Reopening must not reseed existing tables
	st2, err := Open(dir)
	if err != nil {
		t.Fatalf("Second Open failed: %v", err)
	}
	if !st2.Settings().IsVotingActive {
		t.Error("Reopen overwrote the persisted settings document")
	}
}

func TestLoadCorruptFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()

	st, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	// Corrupt every table on disk
	for _, file := range []string{"settings.json", "categories.json", "votes.json"} {
		if err := os.WriteFile(filepath.Join(dir, file), []byte("{not json"), 0o644); err != nil {
			t.Fatalf("Failed to corrupt %s: %v", file, err)
		}
	}

	settings := st.Settings()
	if settings.Title != models.DefaultSettings().Title {
		t.Errorf("Expected default title, got %q", settings.Title)
	}
	if settings.IsVotingActive {
		t.Error("Expected default (inactive) voting state for corrupt settings")
	}

	if got := len(st.Categories()); got != 0 {
		t.Errorf("Expected empty categories for corrupt file, got %d", got)
	}
	if got := len(st.Votes()); got != 0 {
		t.Errorf("Expected empty votes for corrupt file, got %d", got)
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()

	st, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	categories := []models.Category{
		{
			ID:       "best-cafe",
			Title:    "Best Cafe",
			MaxVotes: 2,
			Participants: []models.Participant{
				{ID: "p1", Name: "Cafe One"},
				{ID: "p2", Name: "Cafe Two"},
			},
		},
	}
	if err := st.SaveCategories(categories); err != nil {
		t.Fatalf("SaveCategories failed: %v", err)
	}

	if err := st.SaveVotes([]models.Vote{
		{CategoryID: "best-cafe", ParticipantID: "p1", IPAddress: "1.2.3.1", Timestamp: "2025-01-01T00:00:00Z"},
	}); err != nil {
		t.Fatalf("SaveVotes failed: %v", err)
	}

	// A fresh store over the same directory sees the persisted documents
	st2, err := Open(dir)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}

	got := st2.Categories()
	if len(got) != 1 || got[0].ID != "best-cafe" || len(got[0].Participants) != 2 {
		t.Errorf("Unexpected categories after reload: %+v", got)
	}

	votes := st2.Votes()
	if len(votes) != 1 || votes[0].IPAddress != "1.2.3.1" {
		t.Errorf("Unexpected votes after reload: %+v", votes)
	}
}

func TestUpdateVotesAbortsOnError(t *testing.T) {
	st, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := st.SaveVotes([]models.Vote{
		{CategoryID: "c1", ParticipantID: "p1", IPAddress: "1.2.3.1", Timestamp: "2025-01-01T00:00:00Z"},
	}); err != nil {
		t.Fatalf("SaveVotes failed: %v", err)
	}

	sentinel := errors.New("precondition failed")
	err = st.UpdateVotes(func(votes []models.Vote) ([]models.Vote, error) {
		return nil, sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("Expected sentinel error, got %v", err)
	}

	// Nothing may have been written
	if got := len(st.Votes()); got != 1 {
		t.Errorf("Expected table unchanged after aborted update, got %d votes", got)
	}
}

func TestUpdateVotesSerialized(t *testing.T) {
	st, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := st.UpdateVotes(func(votes []models.Vote) ([]models.Vote, error) {
				return append(votes, models.Vote{
					CategoryID:    "c1",
					ParticipantID: "p1",
					IPAddress:     "1.2.3.1",
					Timestamp:     "2025-01-01T00:00:00Z",
				}), nil
			})
			if err != nil {
				t.Errorf("UpdateVotes failed: %v", err)
			}
		}()
	}
	wg.Wait()

	// Every append must survive: updates are serialized, not last-writer-wins
	if got := len(st.Votes()); got != n {
		t.Errorf("Expected %d votes after concurrent updates, got %d", n, got)
	}
}
