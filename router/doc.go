// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the voting API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Public reads:

	GET /api/status     - Current settings document
	GET /api/categories - Categories with nested participants
	GET /api/my-votes   - Caller's votes, grouped by category
	GET /api/results    - Tally (hidden while voting is active)

Voting (public, identity = resolved client IP):

	POST /api/vote       - Cast a vote
	POST /api/vote/reset - Remove caller's votes in a category

Admin (requires X-Admin-Token, except login):

	POST /api/admin/login      - Exchange password for the admin token
	GET  /api/admin/data       - Full dump of all tables
	POST /api/admin/settings   - Replace the settings document
	POST /api/admin/categories - Replace the categories table

When a static directory is configured, it is served at GET /.

# Handler Initialization

The router creates handler instances with dependency injection:

	votingHandler := handlers.NewVotingHandler(st, cfg)
	resultsHandler := handlers.NewResultsHandler(st, cfg)
	adminHandler := handlers.NewAdminHandler(st, cfg)

All handlers receive the document store and configuration.
*/
package router
