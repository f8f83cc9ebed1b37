// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/tellerbot/teller/middleware"
	"github.com/tellerbot/teller/vote"
)

// writeCoreError maps the core error taxonomy onto HTTP statuses. The
// transport (the chat bot) turns these into user-facing messages; this
// side only guarantees the kind is determinable.
func writeCoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, vote.ErrInvalidArgument):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, vote.ErrUnauthorized):
		middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
	case errors.Is(err, vote.ErrParticipantNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, vote.ErrChannelNotConfigured):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, vote.ErrNotAMember):
		middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
	case errors.Is(err, vote.ErrOracleUnavailable):
		middleware.ErrorResponse(w, http.StatusBadGateway, err.Error())
	default:
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
