// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles application configuration from CLI flags and
environment variables.

# Precedence

CLI flags override environment variables, which override defaults:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - DATABASE_URL (-d): connection string; defaults to a local file for
    sqlite, required for postgres

Main loads a .env file (if present) before parsing, so development
setups can keep the database settings out of the shell.
*/
package cliparse
