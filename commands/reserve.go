// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"fmt"

	"github.com/danielhkuo/vaxsched/models"
	"github.com/danielhkuo/vaxsched/session"
)

// Reserve handles: reserve <mm-dd-yyyy> <vaccine_name>
// Patient only. On success reports the appointment id and the caregiver
// chosen by the allocator.
func (h *Handler) Reserve(sess *session.Session, args []string) error {
	if err := argCount(args, 2); err != nil {
		return err
	}
	if !sess.LoggedIn() {
		return errLoginFirst
	}
	if sess.Role != session.RolePatient {
		return errPatientOnly
	}

	date, err := models.ParseInputDate(args[0])
	if err != nil {
		return fmt.Errorf("%w: please enter a valid date (mm-dd-yyyy)", models.ErrValidation)
	}
	vaccineName := args[1]

	appt, err := h.alloc.Reserve(date, vaccineName, sess.Username)
	if err != nil {
		return classify(err)
	}

	h.printf("Appointment ID: %d, Caregiver username: %s", appt.ID, appt.CaregiverUsername)
	return nil
}
