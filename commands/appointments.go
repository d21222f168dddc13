// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"github.com/danielhkuo/vaxsched/models"
	"github.com/danielhkuo/vaxsched/session"
)

// ShowAppointments handles: show_appointments
// Lists the caller's appointments ordered by id. Caregivers see the
// patient for each appointment; patients see the caregiver.
func (h *Handler) ShowAppointments(sess *session.Session, args []string) error {
	if err := argCount(args, 0); err != nil {
		return err
	}
	if !sess.LoggedIn() {
		return errLoginFirst
	}

	var appts []models.Appointment
	var err error
	if sess.Role == session.RoleCaregiver {
		appts, err = h.alloc.ListByCaregiver(sess.Username)
	} else {
		appts, err = h.alloc.ListByPatient(sess.Username)
	}
	if err != nil {
		return classify(err)
	}

	h.printf("[Current appointments]")
	for _, appt := range appts {
		other := appt.PatientUsername
		if sess.Role == session.RolePatient {
			other = appt.CaregiverUsername
		}
		h.printf("%d %s %s %s", appt.ID, appt.VaccineName, appt.Date.Format(models.DateLayout), other)
	}

	return nil
}
