// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/tellerbot/teller/middleware"
	"github.com/tellerbot/teller/models"
	"github.com/tellerbot/teller/tally"
)

type VoteHandler struct {
	engine *tally.Engine
}

func NewVoteHandler(engine *tally.Engine) *VoteHandler {
	return &VoteHandler{engine: engine}
}

// CastVote handles POST /votes
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.TargetID == 0 || req.VoterID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "target_id and voter_id are required")
		return
	}

	count, err := h.engine.CastVote(r.Context(), req.TargetID, req.VoterID)
	if err != nil {
		slog.Info("vote denied", "target_id", req.TargetID, "voter_id", req.VoterID, "reason", err)
		writeCoreError(w, err)
		return
	}

	slog.Info("vote cast", "target_id", req.TargetID, "voter_id", req.VoterID, "vote_count", count)

	middleware.JSONResponse(w, http.StatusOK, models.CastVoteResponse{
		TargetID:  req.TargetID,
		VoteCount: count,
	})
}

// Override handles POST /overrides
func (h *VoteHandler) Override(w http.ResponseWriter, r *http.Request) {
	var req models.OverrideVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.CallerID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "caller_id is required")
		return
	}
	if req.TargetHandle == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "target_handle is required")
		return
	}

	targetID, err := h.engine.OverrideVote(r.Context(), req.CallerID, req.TargetHandle, req.VoteCount)
	if err != nil {
		slog.Info("override denied",
			"caller_id", req.CallerID,
			"target_handle", req.TargetHandle,
			"reason", err,
		)
		writeCoreError(w, err)
		return
	}

	slog.Info("vote count overridden",
		"caller_id", req.CallerID,
		"target_id", targetID,
		"vote_count", req.VoteCount,
	)

	middleware.JSONResponse(w, http.StatusOK, models.OverrideVoteResponse{
		TargetID:  targetID,
		VoteCount: req.VoteCount,
	})
}
