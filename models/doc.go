// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - VoteRequest: category_id, participant_id
  - ResetVoteRequest: category_id
  - AdminLoginRequest: password

# Response Types

Types for JSON responses:

  - VoteResponse: status, message
  - ResultsResponse: visible, message, data
  - AdminLoginResponse: token
  - AdminDataResponse: settings, categories, votes
  - UpdateSettingsResponse: status, data
  - UpdateCategoriesResponse: status
  - ErrorResponse: error, message

# Domain Types

Documents persisted by the store:

  - Settings: singleton configuration (title, voting phase, anti-abuse
    toggle, header/footer display config)
  - Category: voting category with per-voter quota and participants
  - Participant: a candidate within a category
  - Vote: one accepted ballot entry keyed by voter IP

# Constants

Outcome strings:

	StatusSuccess = "success"
	StatusSkipped = "skipped"
	StatusUpdated = "updated"

Validation tags on request and category types are enforced with
go-playground/validator in the handlers.
*/
package models
