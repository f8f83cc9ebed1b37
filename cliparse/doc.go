// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing.

Environment variables are parsed first (via caarlos0/env struct tags),
then CLI flags override individual values.

Required settings:

  - DATABASE_URL (-d): postgres connection string or sqlite file path
  - TRANSPORT_KEY (--transport-key): shared secret for the chat transport
  - BOT_TOKEN (--bot-token): Bot API token for membership checks

Optional settings:

  - PORT (-p): server port (default: 3319)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - ORACLE_TIMEOUT (--oracle-timeout): membership check timeout (default: 5s)
  - ADMIN_SEED (--admins): comma-separated id:handle pairs seeded into
    the admin table at startup
*/
package cliparse
