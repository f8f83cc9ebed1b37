// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Participant: a registered vote recipient with a running tally
  - Admin: an identity allowed to override tallies

# Conventions

Identities are the chat platform's int64 user and chat IDs; the service
never mints its own. Vote counts are plain non-negative integers.

Request and response types are named after the operation they serve
(RegisterParticipantRequest, CastVoteResponse, ...) and carry snake_case
JSON tags.
*/
package models
