// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/danielhkuo/vaxsched/inventory"
	"github.com/danielhkuo/vaxsched/models"
	"github.com/danielhkuo/vaxsched/session"
)

// AddDoses handles: add_doses <vaccine_name> <non-negative integer>
// Caregiver only. Creates the vaccine on first use, otherwise tops up
// the stored count.
func (h *Handler) AddDoses(sess *session.Session, args []string) error {
	if err := argCount(args, 2); err != nil {
		return err
	}
	if sess.Role != session.RoleCaregiver {
		return errCaregiverOnly
	}

	vaccineName := args[0]
	amount, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: dose count must be an integer", models.ErrValidation)
	}

	if err := classify(inventory.NewLedger(h.db).AddDoses(vaccineName, amount)); err != nil {
		return err
	}

	slog.Info("doses added",
		"session_id", sess.ID,
		"caregiver", sess.Username,
		"vaccine", vaccineName,
		"amount", amount,
	)
	h.printf("Doses updated!")
	return nil
}
