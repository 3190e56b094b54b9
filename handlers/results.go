// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/city-vote/cliparse"
	"github.com/danielhkuo/city-vote/middleware"
	"github.com/danielhkuo/city-vote/models"
	"github.com/danielhkuo/city-vote/store"
)

type ResultsHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewResultsHandler(st *store.Store, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{store: st, cfg: cfg}
}

// Status handles GET /api/status
// Returns the current Settings document
func (h *ResultsHandler) Status(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.store.Settings())
}

// Categories handles GET /api/categories
// Returns the full categories table including nested participants
func (h *ResultsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.store.Categories())
}

// MyVotes handles GET /api/my-votes
// Returns category_id -> participant_ids the caller's identity voted for,
// in the order the votes were cast. Used by the frontend to pre-mark
// already-cast choices.
func (h *ResultsHandler) MyVotes(w http.ResponseWriter, r *http.Request) {
	ip := middleware.ClientIP(r)

	myVotes := map[string][]string{}
	for _, v := range h.store.Votes() {
		if v.IPAddress == ip {
			myVotes[v.CategoryID] = append(myVotes[v.CategoryID], v.ParticipantID)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, myVotes)
}

// Results handles GET /api/results
// Results are withheld entirely while voting is active, for everyone
// including the administrator. Once voting is closed, every category maps
// each of its participants to a vote count; votes whose category or
// participant no longer exists are dropped from the tally.
func (h *ResultsHandler) Results(w http.ResponseWriter, r *http.Request) {
	settings := h.store.Settings()
	if settings.IsVotingActive {
		middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
			Visible: false,
			Message: "Results will be available after voting ends",
		})
		return
	}

	data := map[string]map[string]int{}
	for _, cat := range h.store.Categories() {
		counts := map[string]int{}
		for _, p := range cat.Participants {
			counts[p.ID] = 0
		}
		data[cat.ID] = counts
	}

	for _, v := range h.store.Votes() {
		counts, ok := data[v.CategoryID]
		if !ok {
			continue
		}
		if _, ok := counts[v.ParticipantID]; !ok {
			continue
		}
		counts[v.ParticipantID]++
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Visible: true,
		Data:    data,
	})
}
