// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the scheduler's domain types and error taxonomy.

# Domain Types

  - Vaccine: a named dose inventory (available_doses never negative)
  - Patient, Caregiver: registered accounts with salted password hashes
  - Availability: one bookable (date, caregiver) slot
  - Appointment: immutable reservation record linking all of the above

# Errors

The package exports sentinel errors used throughout the application:

	if errors.Is(err, models.ErrInsufficientInventory) { ... }

ErrStorageUnavailable is special: it marks a lost or broken database
connection and is treated as fatal by the command loop. All other errors
are reported to the user and leave stored state unchanged.

# Dates

Commands accept dates as mm-dd-yyyy (InputDateLayout). Storage uses ISO
yyyy-mm-dd strings (DateLayout) so SQLite and PostgreSQL behave identically.
*/
package models
