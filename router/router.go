// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/city-vote/cliparse"
	"github.com/danielhkuo/city-vote/handlers"
	"github.com/danielhkuo/city-vote/middleware"
	"github.com/danielhkuo/city-vote/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	votingHandler := handlers.NewVotingHandler(st, cfg)
	resultsHandler := handlers.NewResultsHandler(st, cfg)
	adminHandler := handlers.NewAdminHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public reads
	mux.HandleFunc("GET /api/status", middleware.WithLogging(resultsHandler.Status))
	mux.HandleFunc("GET /api/categories", middleware.WithLogging(resultsHandler.Categories))
	mux.HandleFunc("GET /api/my-votes", middleware.WithLogging(resultsHandler.MyVotes))
	mux.HandleFunc("GET /api/results", middleware.WithLogging(resultsHandler.Results))

	// Voting operations (public, keyed by resolved client IP)
	mux.HandleFunc("POST /api/vote", middleware.WithLogging(votingHandler.Cast))
	mux.HandleFunc("POST /api/vote/reset", middleware.WithLogging(votingHandler.Reset))

	// Admin operations (require X-Admin-Token, except login)
	mux.HandleFunc("POST /api/admin/login", middleware.WithLogging(adminHandler.Login))
	mux.HandleFunc("GET /api/admin/data", middleware.WithLogging(adminHandler.Data))
	mux.HandleFunc("POST /api/admin/settings", middleware.WithLogging(adminHandler.UpdateSettings))
	mux.HandleFunc("POST /api/admin/categories", middleware.WithLogging(adminHandler.UpdateCategories))

	// Frontend: serve the static directory when configured, else a root
	// info endpoint
	if cfg.StaticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(cfg.StaticDir)))
	} else {
		mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("city-vote API v1"))
		})
	}

	return mux
}
