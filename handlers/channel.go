// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/tellerbot/teller/middleware"
	"github.com/tellerbot/teller/models"
	"github.com/tellerbot/teller/store"
)

// ChannelValidator confirms a chat is a channel the bot administers.
// Satisfied by telegram.Client.
type ChannelValidator interface {
	ValidateChannel(ctx context.Context, channelID int64) error
}

type ChannelHandler struct {
	store     *store.Store
	validator ChannelValidator
}

func NewChannelHandler(st *store.Store, validator ChannelValidator) *ChannelHandler {
	return &ChannelHandler{store: st, validator: validator}
}

// Set handles PUT /channel. The channel is validated externally first;
// if validation fails the registry is left untouched.
func (h *ChannelHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req models.SetChannelRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ChannelID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "channel_id is required")
		return
	}

	if err := h.validator.ValidateChannel(r.Context(), req.ChannelID); err != nil {
		slog.Warn("channel validation failed", "channel_id", req.ChannelID, "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.store.SetChannel(r.Context(), req.ChannelID); err != nil {
		slog.Error("failed to set channel", "error", err, "channel_id", req.ChannelID)
		writeCoreError(w, err)
		return
	}

	slog.Info("gating channel set", "channel_id", req.ChannelID)

	middleware.JSONResponse(w, http.StatusOK, models.ChannelResponse{
		ChannelID: req.ChannelID,
	})
}

// Get handles GET /channel
func (h *ChannelHandler) Get(w http.ResponseWriter, r *http.Request) {
	channelID, err := h.store.GetChannel(r.Context())
	if err != nil {
		writeCoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ChannelResponse{
		ChannelID: channelID,
	})
}
