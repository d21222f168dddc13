// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and validation for account creation
and login.

# Password Storage

Passwords are never stored. Registration generates a random salt and stores
an HMAC-SHA256 hash keyed by it:

	salt, _ := auth.GenerateSalt()
	hash := auth.HashPassword(password, salt)

Login recomputes the hash and compares in constant time:

	if auth.VerifyPassword(password, salt, storedHash) { ... }

# Password Policy

CheckPasswordStrength enforces the registration policy: at least 8
characters, mixed letters and digits, mixed case, and at least one of
the special characters ! @ # ?. This is a simple format checker, not a
security model.
*/
package auth
