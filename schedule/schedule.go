// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/vaxsched/db"
	"github.com/danielhkuo/vaxsched/models"
)

// Ledger tracks which caregivers are reservable on which calendar days.
// A slot exists for (date, caregiver) exactly when that caregiver has
// not yet been booked for that date.
type Ledger struct {
	db db.DBTX
}

// NewLedger creates a Ledger over a database connection or an open
// transaction.
func NewLedger(db db.DBTX) *Ledger {
	return &Ledger{db: db}
}

// ListAvailable returns the usernames of caregivers with an open slot on
// the given date, sorted ascending.
func (l *Ledger) ListAvailable(date time.Time) ([]string, error) {
	rows, err := l.db.Query(`
		SELECT caregiver_username FROM availability
		WHERE available_date = $1
		ORDER BY caregiver_username ASC
	`, date.Format(models.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query availability: %w", err)
	}
	defer rows.Close()

	var caregivers []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		caregivers = append(caregivers, username)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read availability: %w", err)
	}

	return caregivers, nil
}

// Add uploads a slot for a caregiver on a date. Uploading the same date
// twice for the same caregiver fails with models.ErrValidation; the
// composite primary key enforces at most one row per pair.
func (l *Ledger) Add(caregiver string, date time.Time) error {
	_, err := l.db.Exec(`
		INSERT INTO availability (available_date, caregiver_username)
		VALUES ($1, $2)
	`, date.Format(models.DateLayout), caregiver)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: availability already uploaded for that date", models.ErrValidation)
		}
		return fmt.Errorf("failed to add availability: %w", err)
	}

	return nil
}

// Remove deletes the slot for (caregiver, date). Reports whether a row
// was actually removed; the reservation allocator treats a miss as an
// inconsistency.
func (l *Ledger) Remove(caregiver string, date time.Time) (bool, error) {
	res, err := l.db.Exec(`
		DELETE FROM availability
		WHERE available_date = $1 AND caregiver_username = $2
	`, date.Format(models.DateLayout), caregiver)
	if err != nil {
		return false, fmt.Errorf("failed to remove availability: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to remove availability: %w", err)
	}

	return n > 0, nil
}

// isUniqueViolation matches the duplicate-key error text of both drivers.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value violates unique constraint") // postgres
}
