// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/city-vote/auth"
	"github.com/danielhkuo/city-vote/cliparse"
	"github.com/danielhkuo/city-vote/models"
	"github.com/danielhkuo/city-vote/store"
)

// TestAdminPassword is the admin password used throughout the tests;
// GetTestConfig carries its digest.
const TestAdminPassword = "test-password"

// TestAdminToken is the static shared admin secret used in tests
const TestAdminToken = "test-admin-token"

// SetupTestStore creates a store backed by a fresh temp directory, seeded
// with the default documents.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()

	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	return st
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              55000,
		DataDir:           "data",
		AdminPasswordHash: auth.HashPassword(TestAdminPassword),
		AdminToken:        TestAdminToken,
	}
}

// SeedSettings overwrites the settings document. Most tests only care about
// the two phase flags.
func SeedSettings(t *testing.T, st *store.Store, votingActive, antiAbuse bool) {
	t.Helper()

	settings := models.DefaultSettings()
	settings.IsVotingActive = votingActive
	settings.AntiAbuseEnabled = antiAbuse
	if err := st.SaveSettings(settings); err != nil {
		t.Fatalf("Failed to seed settings: %v", err)
	}
}

// SeedCategory appends a category with the given participant IDs, using the
// participant ID as its display name.
func SeedCategory(t *testing.T, st *store.Store, id string, maxVotes int, participantIDs ...string) {
	t.Helper()

	participants := make([]models.Participant, 0, len(participantIDs))
	for _, pid := range participantIDs {
		participants = append(participants, models.Participant{ID: pid, Name: pid})
	}

	categories := append(st.Categories(), models.Category{
		ID:           id,
		Title:        "Category " + id,
		MaxVotes:     maxVotes,
		Participants: participants,
	})
	if err := st.SaveCategories(categories); err != nil {
		t.Fatalf("Failed to seed category: %v", err)
	}
}

// SeedVote appends a vote record directly to the ledger
func SeedVote(t *testing.T, st *store.Store, categoryID, participantID, ip string) {
	t.Helper()

	err := st.UpdateVotes(func(votes []models.Vote) ([]models.Vote, error) {
		return append(votes, models.Vote{
			CategoryID:    categoryID,
			ParticipantID: participantID,
			IPAddress:     ip,
			Timestamp:     "2025-01-01T00:00:00Z",
		}), nil
	})
	if err != nil {
		t.Fatalf("Failed to seed vote: %v", err)
	}
}

// CountVotes returns the persisted number of votes matching (ip, categoryID)
func CountVotes(t *testing.T, st *store.Store, ip, categoryID string) int {
	t.Helper()

	count := 0
	for _, v := range st.Votes() {
		if v.IPAddress == ip && v.CategoryID == categoryID {
			count++
		}
	}
	return count
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
