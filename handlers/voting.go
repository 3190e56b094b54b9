// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/city-vote/cliparse"
	"github.com/danielhkuo/city-vote/middleware"
	"github.com/danielhkuo/city-vote/models"
	"github.com/danielhkuo/city-vote/store"
)

var (
	errQuotaExceeded  = errors.New("vote quota exceeded for this category")
	errNoVotesToReset = errors.New("no votes matched the reset predicate")
)

type VotingHandler struct {
	store    *store.Store
	cfg      cliparse.Config
	validate *validator.Validate
}

func NewVotingHandler(st *store.Store, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{store: st, cfg: cfg, validate: validator.New()}
}

// Cast handles POST /api/vote
//
// Preconditions, checked in order: voting must be active, the category must
// exist, and (with anti-abuse enabled) the caller must have quota left in
// the category. The quota check and the append run inside a single
// serialized votes-table update, so concurrent casts cannot slip past the
// same quota boundary.
func (h *VotingHandler) Cast(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "category_id and participant_id are required")
		return
	}

	settings := h.store.Settings()
	if !settings.IsVotingActive {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Voting is currently closed")
		return
	}

	var category *models.Category
	for _, c := range h.store.Categories() {
		if c.ID == req.CategoryID {
			category = &c
			break
		}
	}
	if category == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Category not found")
		return
	}

	ip := middleware.ClientIP(r)

	err := h.store.UpdateVotes(func(votes []models.Vote) ([]models.Vote, error) {
		if settings.AntiAbuseEnabled {
			count := 0
			for _, v := range votes {
				if v.IPAddress == ip && v.CategoryID == req.CategoryID {
					count++
				}
			}
			if count >= category.MaxVotes {
				return nil, errQuotaExceeded
			}
		}

		return append(votes, models.Vote{
			CategoryID:    req.CategoryID,
			ParticipantID: req.ParticipantID,
			IPAddress:     ip,
			Timestamp:     time.Now().UTC().Format(time.RFC3339),
		}), nil
	})

	if errors.Is(err, errQuotaExceeded) {
		middleware.ErrorResponse(w, http.StatusForbidden, "You have reached the vote limit for this category")
		return
	}
	if err != nil {
		slog.Error("failed to persist vote", "error", err, "category_id", req.CategoryID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save vote")
		return
	}

	slog.Info("vote cast", "category_id", req.CategoryID, "participant_id", req.ParticipantID)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Status:  models.StatusSuccess,
		Message: "Your vote has been counted",
	})
}

// Reset handles POST /api/vote/reset
//
// Removes every vote by the caller's identity in the given category so the
// voter can recast within the quota. Reports "skipped" when nothing matched.
func (h *VotingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req models.ResetVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "category_id is required")
		return
	}

	settings := h.store.Settings()
	if !settings.IsVotingActive {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Voting is currently closed")
		return
	}

	ip := middleware.ClientIP(r)

	err := h.store.UpdateVotes(func(votes []models.Vote) ([]models.Vote, error) {
		kept := votes[:0:0]
		for _, v := range votes {
			if v.IPAddress == ip && v.CategoryID == req.CategoryID {
				continue
			}
			kept = append(kept, v)
		}
		if len(kept) == len(votes) {
			return nil, errNoVotesToReset
		}
		return kept, nil
	})

	if errors.Is(err, errNoVotesToReset) {
		middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
			Status:  models.StatusSkipped,
			Message: "No votes found to remove",
		})
		return
	}
	if err != nil {
		slog.Error("failed to reset votes", "error", err, "category_id", req.CategoryID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save votes")
		return
	}

	slog.Info("votes reset", "category_id", req.CategoryID)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Status:  models.StatusSuccess,
		Message: "Votes reset",
	})
}
