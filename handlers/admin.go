// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/city-vote/auth"
	"github.com/danielhkuo/city-vote/cliparse"
	"github.com/danielhkuo/city-vote/middleware"
	"github.com/danielhkuo/city-vote/models"
	"github.com/danielhkuo/city-vote/store"
)

type AdminHandler struct {
	store    *store.Store
	cfg      cliparse.Config
	validate *validator.Validate
}

func NewAdminHandler(st *store.Store, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: st, cfg: cfg, validate: validator.New()}
}

// requireAdmin validates the X-Admin-Token header and writes the error
// response itself. Returns false when the request must not proceed.
func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	token := r.Header.Get("X-Admin-Token")
	if err := auth.ValidateAdminToken(token, h.cfg.AdminToken); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Access denied: invalid admin token")
		return false
	}
	return true
}

// Login handles POST /api/admin/login
// On a matching password digest the static shared admin token is returned
// as the session credential.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password is required")
		return
	}

	if err := auth.VerifyPassword(req.Password, h.cfg.AdminPasswordHash); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin password")
		return
	}

	slog.Info("admin logged in")

	middleware.JSONResponse(w, http.StatusOK, models.AdminLoginResponse{
		Token: h.cfg.AdminToken,
	})
}

// Data handles GET /api/admin/data
// Returns the full dump of all three tables
func (h *AdminHandler) Data(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AdminDataResponse{
		Settings:   h.store.Settings(),
		Categories: h.store.Categories(),
		Votes:      h.store.Votes(),
	})
}

// UpdateSettings handles POST /api/admin/settings
// The body is the full Settings document; it replaces the stored one and is
// echoed back.
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var settings models.Settings
	if err := middleware.ParseJSONBody(r, &settings); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.store.SaveSettings(settings); err != nil {
		slog.Error("failed to save settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	slog.Info("settings updated", "is_voting_active", settings.IsVotingActive, "anti_abuse_enabled", settings.AntiAbuseEnabled)

	middleware.JSONResponse(w, http.StatusOK, models.UpdateSettingsResponse{
		Status: models.StatusUpdated,
		Data:   settings,
	})
}

// UpdateCategories handles POST /api/admin/categories
// The body is the full sequence of Category; the categories table is
// replaced wholesale, never merged.
func (h *AdminHandler) UpdateCategories(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var categories []models.Category
	if err := middleware.ParseJSONBody(r, &categories); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	seenCategories := make(map[string]bool, len(categories))
	for i := range categories {
		cat := &categories[i]

		if err := h.validate.Struct(cat); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid category "+cat.ID+": id, title and a positive max_votes are required")
			return
		}
		if seenCategories[cat.ID] {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Duplicate category id: "+cat.ID)
			return
		}
		seenCategories[cat.ID] = true

		seenParticipants := make(map[string]bool, len(cat.Participants))
		for j := range cat.Participants {
			p := &cat.Participants[j]
			if seenParticipants[p.ID] {
				middleware.ErrorResponse(w, http.StatusBadRequest, "Duplicate participant id in category "+cat.ID+": "+p.ID)
				return
			}
			seenParticipants[p.ID] = true
			if p.ImageURL == "" {
				p.ImageURL = models.DefaultParticipantImage
			}
		}
	}

	if err := h.store.SaveCategories(categories); err != nil {
		slog.Error("failed to save categories", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save categories")
		return
	}

	slog.Info("categories updated", "count", len(categories))

	middleware.JSONResponse(w, http.StatusOK, models.UpdateCategoriesResponse{
		Status: models.StatusUpdated,
	})
}
