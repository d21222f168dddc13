// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session tracks the authenticated identity for one command-line
session.

A Session holds at most one identity, tagged with its role:

	None ──login_patient──▶ Patient
	None ──login_caregiver─▶ Caregiver
	Patient/Caregiver ──logout──▶ None

Logging in while an identity is active fails; the command layer uses the
role to gate operations (reserve is patient-only, upload_availability and
add_doses are caregiver-only). The session object is passed explicitly to
every command handler rather than living in package-level state.
*/
package session
