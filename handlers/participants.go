// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tellerbot/teller/middleware"
	"github.com/tellerbot/teller/models"
	"github.com/tellerbot/teller/store"
)

type ParticipantHandler struct {
	store *store.Store
}

func NewParticipantHandler(st *store.Store) *ParticipantHandler {
	return &ParticipantHandler{store: st}
}

// Register handles POST /participants
func (h *ParticipantHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterParticipantRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UserID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	created, err := h.store.RegisterParticipant(r.Context(), req.UserID, req.Handle, req.DisplayName)
	if err != nil {
		slog.Error("failed to register participant", "error", err, "user_id", req.UserID)
		writeCoreError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		slog.Info("participant registered", "user_id", req.UserID, "handle", req.Handle)
	}

	middleware.JSONResponse(w, status, models.RegisterParticipantResponse{
		Created: created,
	})
}

// Get handles GET /participants/:id
func (h *ParticipantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid participant id")
		return
	}

	participant, err := h.store.GetParticipant(r.Context(), id)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, participant)
}

// List handles GET /participants
func (h *ParticipantHandler) List(w http.ResponseWriter, r *http.Request) {
	participants, err := h.store.ListParticipants(r.Context())
	if err != nil {
		slog.Error("failed to list participants", "error", err)
		writeCoreError(w, err)
		return
	}

	if participants == nil {
		participants = []models.Participant{}
	}

	middleware.JSONResponse(w, http.StatusOK, participants)
}
