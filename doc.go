// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Teller API server.

Teller is the vote tally and eligibility engine behind a chat-platform
voting bot: participants register, members of a designated channel cast
votes, and admins can correct tallies directly. The chat transport (the
bot front end) talks to this service over HTTP; membership checks go to
the platform's Bot API.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=votes.db TRANSPORT_KEY=... BOT_TOKEN=... go run main.go

Or with flags:

	go run main.go -p 3319 -d votes.db -t sqlite --transport-key ... --bot-token ...

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file path or postgres connection string
  - TRANSPORT_KEY (--transport-key): shared secret for the chat transport
  - BOT_TOKEN (--bot-token): Bot API token for membership checks

Optional settings:

  - PORT (-p): server port (default: 3319)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - ORACLE_TIMEOUT (--oracle-timeout): membership check timeout (default: 5s)
  - ADMIN_SEED (--admins): id:handle pairs seeded into the admin set

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: participant records, admin set, gating-channel reference
  - eligibility: membership-gated vote admission
  - tally: vote casting and admin override orchestration
  - telegram: Bot API client (membership oracle, channel validator)
  - handlers: HTTP request handlers
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, transport-key auth, JSON helpers
  - models: request/response types
  - db: connection and schema creation
  - cliparse: configuration parsing
  - vote: shared error taxonomy

See package documentation for each component.
*/
package main
