// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the voting API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - VotingHandler: vote casting and per-category reset
  - ResultsHandler: settings, categories, my-votes, and gated results
  - AdminHandler: login, full data dump, settings and category writes

Handlers are created via constructor functions that accept *store.Store and
Config:

	votingHandler := handlers.NewVotingHandler(st, cfg)

# Voting Flow

Voter identity is the resolved client IP (middleware.ClientIP); there are no
accounts or cookies:

	POST /api/vote       → Cast (quota-checked while anti-abuse is on)
	POST /api/vote/reset → Reset (removes the caller's votes in a category)

Both operations require voting to be active. Casting appends one Vote record
per accepted vote; the quota check and the append run as one serialized
store update.

# Results Gating

The one state machine in the system:

	Open   (is_voting_active=true):  votes accepted, results hidden
	Closed (is_voting_active=false): votes rejected, results visible

GET /api/results returns {visible:false} for everyone while voting is open,
administrators included.

# Admin Operations

Admin operations require the X-Admin-Token header to equal the configured
shared secret:

	POST /api/admin/login      → Login (password digest check, returns token)
	GET  /api/admin/data       → Data (full settings/categories/votes dump)
	POST /api/admin/settings   → UpdateSettings (whole-document replace)
	POST /api/admin/categories → UpdateCategories (whole-table replace)
*/
package handlers
