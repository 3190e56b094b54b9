// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Outcome strings returned by mutating endpoints
const (
	StatusSuccess = "success"
	StatusSkipped = "skipped"
	StatusUpdated = "updated"
)

// DefaultParticipantImage is used when a participant has no photo
const DefaultParticipantImage = "https://placehold.co/400x600/1a1a1a/gold?text=No+Photo"

// Request types

type VoteRequest struct {
	CategoryID    string `json:"category_id" validate:"required"`
	ParticipantID string `json:"participant_id" validate:"required"`
}

type ResetVoteRequest struct {
	CategoryID string `json:"category_id" validate:"required"`
}

type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// Response types

type VoteResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

type AdminDataResponse struct {
	Settings   Settings   `json:"settings"`
	Categories []Category `json:"categories"`
	Votes      []Vote     `json:"votes"`
}

type UpdateSettingsResponse struct {
	Status string   `json:"status"`
	Data   Settings `json:"data"`
}

type UpdateCategoriesResponse struct {
	Status string `json:"status"`
}

// ResultsResponse carries the tally once voting has closed. While voting is
// active, Visible is false and Data is omitted entirely.
type ResultsResponse struct {
	Visible bool                      `json:"visible"`
	Message string                    `json:"message,omitempty"`
	Data    map[string]map[string]int `json:"data,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

type FooterLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type FooterSettings struct {
	LogoURL     string       `json:"logo_url"`
	Description string       `json:"description"`
	Copyright   string       `json:"copyright"`
	Links       []FooterLink `json:"links"`
}

type HeaderSettings struct {
	ShowLogo bool   `json:"show_logo"`
	LogoPath string `json:"logo_path"`
}

// Settings is the singleton configuration document. IsVotingActive is the
// global phase switch: while true, votes are accepted and results hidden;
// once false, votes are rejected and results become visible.
type Settings struct {
	Title            string         `json:"title"`
	IsVotingActive   bool           `json:"is_voting_active"`
	AntiAbuseEnabled bool           `json:"anti_abuse_enabled"`
	Header           HeaderSettings `json:"header"`
	Footer           FooterSettings `json:"footer"`
}

// DefaultSettings returns the document seeded on first boot.
func DefaultSettings() Settings {
	return Settings{
		Title:            "City Award 2025",
		IsVotingActive:   false,
		AntiAbuseEnabled: true,
		Header: HeaderSettings{
			ShowLogo: true,
			LogoPath: "win.png",
		},
		Footer: FooterSettings{
			Description: "Official voting platform.",
			Copyright:   "© 2025 City Voting Platform",
			Links:       []FooterLink{},
		},
	}
}

type Participant struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// Category owns its participants entirely. The admin update endpoint
// replaces the whole categories table, never a single category.
type Category struct {
	ID           string        `json:"id" validate:"required"`
	Title        string        `json:"title" validate:"required"`
	MaxVotes     int           `json:"max_votes" validate:"required,gt=0"`
	Participants []Participant `json:"participants" validate:"dive"`
}

// Vote is one accepted ballot entry. Votes carry no ID of their own; the
// reset operation deletes by (ip_address, category_id) predicate.
type Vote struct {
	CategoryID    string `json:"category_id"`
	ParticipantID string `json:"participant_id"`
	IPAddress     string `json:"ip_address"`
	Timestamp     string `json:"timestamp"` // UTC, ISO-8601
}
