// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"fmt"
	"log/slog"

	"github.com/danielhkuo/vaxsched/models"
	"github.com/danielhkuo/vaxsched/schedule"
	"github.com/danielhkuo/vaxsched/session"
)

// SearchCaregiverSchedule handles: search_caregiver_schedule <mm-dd-yyyy>
// Prints the caregivers available on the date (sorted by username) and
// every vaccine's remaining doses. Any logged-in user may call it.
func (h *Handler) SearchCaregiverSchedule(sess *session.Session, args []string) error {
	if err := argCount(args, 1); err != nil {
		return err
	}
	if !sess.LoggedIn() {
		return errLoginFirst
	}

	date, err := models.ParseInputDate(args[0])
	if err != nil {
		return fmt.Errorf("%w: please enter a valid date (mm-dd-yyyy)", models.ErrValidation)
	}

	caregivers, err := schedule.NewLedger(h.db).ListAvailable(date)
	if err != nil {
		return classify(err)
	}

	h.printf("[Availabilities on %s]", args[0])
	for _, name := range caregivers {
		h.printf("%s", name)
	}

	vaccines, err := h.listVaccines()
	if err != nil {
		return classify(err)
	}
	for _, v := range vaccines {
		h.printf("%s %d", v.Name, v.AvailableDoses)
	}

	return nil
}

// UploadAvailability handles: upload_availability <mm-dd-yyyy>
// Caregiver only.
func (h *Handler) UploadAvailability(sess *session.Session, args []string) error {
	if err := argCount(args, 1); err != nil {
		return err
	}
	if sess.Role != session.RoleCaregiver {
		return errCaregiverOnly
	}

	date, err := models.ParseInputDate(args[0])
	if err != nil {
		return fmt.Errorf("%w: please enter a valid date (mm-dd-yyyy)", models.ErrValidation)
	}

	if err := classify(schedule.NewLedger(h.db).Add(sess.Username, date)); err != nil {
		return err
	}

	slog.Info("availability uploaded",
		"session_id", sess.ID,
		"caregiver", sess.Username,
		"date", date.Format(models.DateLayout),
	)
	h.printf("Availability uploaded!")
	return nil
}

func (h *Handler) listVaccines() ([]models.Vaccine, error) {
	rows, err := h.db.Query(`SELECT name, available_doses FROM vaccine ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vaccines: %w", err)
	}
	defer rows.Close()

	var vaccines []models.Vaccine
	for rows.Next() {
		var v models.Vaccine
		if err := rows.Scan(&v.Name, &v.AvailableDoses); err != nil {
			return nil, fmt.Errorf("failed to scan vaccine: %w", err)
		}
		vaccines = append(vaccines, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vaccines: %w", err)
	}

	return vaccines, nil
}
