// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package inventory

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/vaxsched/db"
	"github.com/danielhkuo/vaxsched/models"
)

// Ledger tracks vaccine dose counts. Every mutation is persisted
// immediately; the stored count never goes negative.
type Ledger struct {
	db db.DBTX
}

// NewLedger creates a Ledger over a database connection or an open
// transaction.
func NewLedger(db db.DBTX) *Ledger {
	return &Ledger{db: db}
}

// Get looks up a vaccine by exact name. Returns (nil, nil) if absent.
func (l *Ledger) Get(name string) (*models.Vaccine, error) {
	var v models.Vaccine
	err := l.db.QueryRow(`
		SELECT name, available_doses FROM vaccine WHERE name = $1
	`, name).Scan(&v.Name, &v.AvailableDoses)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query vaccine: %w", err)
	}

	return &v, nil
}

// Increase adds doses to a vaccine, creating the record if absent.
// amount must be positive.
func (l *Ledger) Increase(name string, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", models.ErrValidation)
	}

	_, err := l.db.Exec(`
		INSERT INTO vaccine (name, available_doses)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET available_doses = vaccine.available_doses + $2
	`, name, amount)
	if err != nil {
		return fmt.Errorf("failed to increase doses: %w", err)
	}

	return nil
}

// Decrease removes doses from a vaccine. Fails with
// models.ErrInsufficientInventory if the record is absent or the
// resulting count would be negative; the stored count is unchanged
// in that case.
func (l *Ledger) Decrease(name string, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", models.ErrValidation)
	}

	// Guarded decrement: only commits when enough doses remain.
	res, err := l.db.Exec(`
		UPDATE vaccine
		SET available_doses = available_doses - $1
		WHERE name = $2 AND available_doses >= $1
	`, amount, name)
	if err != nil {
		return fmt.Errorf("failed to decrease doses: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to decrease doses: %w", err)
	}
	if n == 0 {
		return models.ErrInsufficientInventory
	}

	return nil
}

// AddDoses implements the add_doses top-up: creates the vaccine with the
// given count if absent, otherwise adds to the stored count. amount must
// be non-negative.
func (l *Ledger) AddDoses(name string, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: amount must be non-negative", models.ErrValidation)
	}

	if amount == 0 {
		// Still registers the vaccine name with an empty inventory.
		_, err := l.db.Exec(`
			INSERT INTO vaccine (name, available_doses)
			VALUES ($1, 0)
			ON CONFLICT (name) DO NOTHING
		`, name)
		if err != nil {
			return fmt.Errorf("failed to add doses: %w", err)
		}
		return nil
	}

	return l.Increase(name, amount)
}
