// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/danielhkuo/vaxsched/accounts"
	"github.com/danielhkuo/vaxsched/booking"
	"github.com/danielhkuo/vaxsched/cliparse"
	"github.com/danielhkuo/vaxsched/models"
)

// Handler executes scheduler commands. User-facing output goes to out;
// diagnostics go to slog.
type Handler struct {
	db       *sql.DB
	out      io.Writer
	accounts *accounts.Store
	alloc    *booking.Allocator
}

func NewHandler(db *sql.DB, cfg cliparse.Config, out io.Writer) *Handler {
	slog.Info("command handler ready", "database_type", cfg.DatabaseType)
	return &Handler{
		db:       db,
		out:      out,
		accounts: accounts.NewStore(db),
		alloc:    booking.NewAllocator(db),
	}
}

func (h *Handler) printf(format string, args ...any) {
	fmt.Fprintf(h.out, format+"\n", args...)
}

// Role-gate errors, shared across handlers.
var (
	errAlreadyLoggedIn = fmt.Errorf("%w: already logged in, please log out first", models.ErrValidation)
	errLoginFirst      = fmt.Errorf("%w: please login first", models.ErrValidation)
	errPatientOnly     = fmt.Errorf("%w: please login as a patient", models.ErrValidation)
	errCaregiverOnly   = fmt.Errorf("%w: please login as a caregiver", models.ErrValidation)
)

// classify separates domain errors, which are reported and survived, from
// storage-level failures, which are fatal. Anything outside the taxonomy
// means the backing store misbehaved.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, domain := range []error{
		models.ErrValidation,
		models.ErrDuplicateUsername,
		models.ErrAuthentication,
		models.ErrNoCaregiverAvailable,
		models.ErrInsufficientInventory,
		models.ErrAllocation,
	} {
		if errors.Is(err, domain) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
}

// argCount enforces the exact argument count for a command before any
// storage access.
func argCount(args []string, want int) error {
	if len(args) != want {
		return fmt.Errorf("%w: expected %d argument(s), got %d", models.ErrValidation, want, len(args))
	}
	return nil
}
