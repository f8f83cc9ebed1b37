// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package vote defines the error taxonomy shared by the tally core.
//
// Every failure the core can produce is matchable with errors.Is against
// one of these sentinels, so the transport layer can always determine the
// error kind and map it to a user-facing message.
package vote

import "errors"

var (
	// ErrParticipantNotFound indicates an unknown participant identity or handle.
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrInvalidArgument indicates a malformed vote value or registration field.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnauthorized indicates a non-admin attempting an override.
	ErrUnauthorized = errors.New("caller is not an admin")

	// ErrChannelNotConfigured indicates no gating channel has been set.
	ErrChannelNotConfigured = errors.New("gating channel not configured")

	// ErrNotAMember indicates the voter is not a member of the gating channel.
	ErrNotAMember = errors.New("voter is not a channel member")

	// ErrOracleUnavailable indicates the membership check itself failed.
	// The underlying cause is preserved in the error chain.
	ErrOracleUnavailable = errors.New("membership oracle unavailable")
)
