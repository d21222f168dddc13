// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "errors"

// Error taxonomy. Handlers report these at the command boundary; everything
// wrapping ErrStorageUnavailable is fatal and terminates the process.
var (
	ErrValidation            = errors.New("invalid arguments")
	ErrDuplicateUsername     = errors.New("username already taken")
	ErrAuthentication        = errors.New("invalid credentials")
	ErrNoCaregiverAvailable  = errors.New("no caregiver available")
	ErrInsufficientInventory = errors.New("not enough available doses")
	ErrAllocation            = errors.New("reservation failed")
	ErrStorageUnavailable    = errors.New("storage unavailable")
)
