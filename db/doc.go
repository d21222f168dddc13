// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open dispatches on the configured database type and verifies the
connection before returning:

	conn, err := db.Open("sqlite", "file:vaxsched.db")

Supported types are "sqlite" (modernc.org/sqlite, pure Go) and
"postgres" (lib/pq).

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - patient: Patient accounts (username, salted password hash)
  - caregiver: Caregiver accounts, same shape
  - vaccine: Dose inventory, CHECK (available_doses >= 0)
  - availability: Bookable (date, caregiver) slots, composite primary key
  - appointment: Immutable reservation records

All SQL in this repository uses $N placeholders, which both drivers accept.

# DBTX

DBTX abstracts over *sql.DB and *sql.Tx so the ledger packages can run
either standalone or inside the reservation transaction:

	ledger := inventory.NewLedger(tx)
*/
package db
