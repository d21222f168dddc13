// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package commands implements the scheduler's command surface and the
read-eval loop that drives it.

# Dispatch

Commands form a closed enumeration (Kind) bound to handler methods
through a lookup table, so the full surface is visible in one place and
checked at compile time:

	create_patient <username> <password>
	create_caregiver <username> <password>
	login_patient <username> <password>
	login_caregiver <username> <password>
	search_caregiver_schedule <mm-dd-yyyy>
	reserve <mm-dd-yyyy> <vaccine_name>
	upload_availability <mm-dd-yyyy>
	add_doses <vaccine_name> <number>
	show_appointments
	logout
	quit

# Validation and Role Gating

Every handler validates its exact argument count before touching
storage, then checks the session role: reserve is patient-only,
upload_availability and add_doses are caregiver-only, searches require
any login. Dates are parsed as mm-dd-yyyy; malformed input fails the
command with no side effects.

# Error Policy

Domain errors (validation, authentication, insufficient inventory, no
caregiver available, allocation failures) are printed to the session's
output writer and the loop continues. A storage-level failure wraps
models.ErrStorageUnavailable, stops the loop, and main exits non-zero.

# Usage

	d := commands.NewDispatcher(conn, cfg, os.Stdout)
	if err := d.Run(os.Stdin); err != nil { ... }
*/
package commands
