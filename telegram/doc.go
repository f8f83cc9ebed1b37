// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package telegram implements the external collaborators the tally core
depends on, against the Telegram Bot API:

  - the membership oracle (getChatMember), consumed by the eligibility
    gate
  - the channel validator (getChat + getMe + getChatAdministrators),
    consulted before the gating channel is replaced

The client's HTTP timeout bounds every call; the gate additionally
applies its own context deadline. Failures surface as plain errors for
the gate to classify - the client itself never retries.
*/
package telegram
