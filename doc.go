// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the vaxsched command-line
vaccine appointment scheduler.

Patients and caregivers share one interactive prompt: caregivers upload
availability and stock vaccine doses, patients reserve appointments. A
reservation atomically consumes one availability slot and one dose.

# Starting the Scheduler

By default the scheduler uses a local SQLite file:

	go run main.go

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -t postgres -d "postgres://..."

A .env file in the working directory is loaded if present.

# Architecture

Flat packages with dependency injection:

  - commands: command handlers, dispatch table, and the read-eval loop
  - booking: the reservation allocator (the transactional core)
  - inventory: vaccine dose ledger
  - schedule: caregiver availability ledger
  - accounts: registration and login
  - session: the authenticated identity for one session
  - auth: password hashing and the strength policy
  - models: domain types and error taxonomy
  - db: connection handling and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
