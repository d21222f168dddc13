// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package accounts

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/vaxsched/auth"
	"github.com/danielhkuo/vaxsched/models"
)

// Store manages patient and caregiver accounts.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreatePatient registers a new patient account. Fails with
// models.ErrDuplicateUsername if the username is taken and
// models.ErrValidation if the password fails the strength policy.
func (s *Store) CreatePatient(username, password string) error {
	return s.create("patient", username, password)
}

// CreateCaregiver registers a new caregiver account, with the same
// failure modes as CreatePatient.
func (s *Store) CreateCaregiver(username, password string) error {
	return s.create("caregiver", username, password)
}

func (s *Store) create(table, username, password string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", models.ErrValidation)
	}
	if !auth.CheckPasswordStrength(password) {
		return fmt.Errorf("%w: password too weak", models.ErrValidation)
	}

	salt, err := auth.GenerateSalt()
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	hash := auth.HashPassword(password, salt)

	// The primary key rejects duplicates; no read-then-write window.
	_, err = s.db.Exec(`
		INSERT INTO `+table+` (username, salt, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, username, salt, hash, time.Now())

	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateUsername
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// AuthenticatePatient verifies patient credentials and returns the account.
func (s *Store) AuthenticatePatient(username, password string) (*models.Patient, error) {
	salt, hash, createdAt, err := s.lookup("patient", username)
	if err != nil {
		return nil, err
	}
	if !auth.VerifyPassword(password, salt, hash) {
		return nil, models.ErrAuthentication
	}
	return &models.Patient{Username: username, Salt: salt, PasswordHash: hash, CreatedAt: createdAt}, nil
}

// AuthenticateCaregiver verifies caregiver credentials and returns the account.
func (s *Store) AuthenticateCaregiver(username, password string) (*models.Caregiver, error) {
	salt, hash, createdAt, err := s.lookup("caregiver", username)
	if err != nil {
		return nil, err
	}
	if !auth.VerifyPassword(password, salt, hash) {
		return nil, models.ErrAuthentication
	}
	return &models.Caregiver{Username: username, Salt: salt, PasswordHash: hash, CreatedAt: createdAt}, nil
}

func (s *Store) lookup(table, username string) (salt, hash string, createdAt time.Time, err error) {
	err = s.db.QueryRow(`
		SELECT salt, password_hash, created_at FROM `+table+` WHERE username = $1
	`, username).Scan(&salt, &hash, &createdAt)

	if err == sql.ErrNoRows {
		// Same error as a bad password: don't leak which usernames exist.
		return "", "", time.Time{}, models.ErrAuthentication
	}
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to query account: %w", err)
	}

	return salt, hash, createdAt, nil
}

// isUniqueViolation matches the duplicate-key error text of both drivers.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value violates unique constraint") // postgres
}
