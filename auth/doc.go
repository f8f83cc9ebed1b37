// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth validates the shared key that authenticates the chat
transport to this service.

Every state-changing endpoint requires the X-Transport-Key header to
match the configured TRANSPORT_KEY. End users never talk to this API
directly; authorization of individual users (the admin set, channel
membership) is the core's job, not this package's.
*/
package auth
