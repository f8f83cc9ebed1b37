// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP surface of the tally service.

# Handlers

  - ParticipantHandler: registration and participant reads
  - VoteHandler: vote casting and admin overrides
  - ChannelHandler: gating-channel configuration and lookup

# Error Mapping

Core errors map to statuses as follows:

	vote.ErrInvalidArgument       400
	vote.ErrUnauthorized          403
	vote.ErrNotAMember            403
	vote.ErrParticipantNotFound   404
	vote.ErrChannelNotConfigured  409
	vote.ErrOracleUnavailable     502

Channel validation failures (not a channel, bot not admin) return 422
without touching the registry.
*/
package handlers
