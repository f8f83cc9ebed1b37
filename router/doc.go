// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines all API routes using Go 1.22+ method routing.

# Routes

Participants:

	POST /participants          register (idempotent)
	GET  /participants          leaderboard, ordered by tally
	GET  /participants/{id}     single participant

Voting:

	POST /votes                 cast a membership-gated vote
	POST /overrides             admin absolute correction

Channel:

	PUT  /channel               validate and replace the gating channel
	GET  /channel               current gating channel

State-changing routes require the X-Transport-Key header.
*/
package router
