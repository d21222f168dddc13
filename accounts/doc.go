// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package accounts manages patient and caregiver registration and login.

Usernames are unique per role and enforced by the table primary key, so
duplicate registration fails atomically with ErrDuplicateUsername even
under concurrent sessions. Passwords are checked against the strength
policy in package auth before anything touches storage, then stored as a
salted hash.

	store := accounts.NewStore(conn)
	if err := store.CreatePatient("pat", "MyP@ss123"); err != nil { ... }
	p, err := store.AuthenticatePatient("pat", "MyP@ss123")

Authentication failures (unknown username and wrong password alike)
return ErrAuthentication without distinguishing the cause.
*/
package accounts
