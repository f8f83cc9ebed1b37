// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

  - WithLogging: request start/completion logging with a per-request uuid
  - RequireTransportKey: shared-key gate for state-changing endpoints
  - JSONResponse / ErrorResponse / ParseJSONBody: JSON plumbing shared by
    all handlers
*/
package middleware
