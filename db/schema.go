// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The schema avoids driver-specific defaults (NOW(), SERIAL) so the same
// DDL runs under both SQLite and PostgreSQL. Timestamps and appointment
// ids are always supplied by the application.
const schema = `
-- Patients
CREATE TABLE IF NOT EXISTS patient (
    username TEXT PRIMARY KEY,
    salt TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- Caregivers
CREATE TABLE IF NOT EXISTS caregiver (
    username TEXT PRIMARY KEY,
    salt TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- Vaccine dose inventory
CREATE TABLE IF NOT EXISTS vaccine (
    name TEXT PRIMARY KEY,
    available_doses INTEGER NOT NULL CHECK (available_doses >= 0)
);

-- Caregiver availability slots. One row per (date, caregiver); the primary
-- key rejects duplicate uploads of the same day.
CREATE TABLE IF NOT EXISTS availability (
    available_date TEXT NOT NULL,
    caregiver_username TEXT NOT NULL REFERENCES caregiver(username),
    PRIMARY KEY (available_date, caregiver_username)
);

CREATE INDEX IF NOT EXISTS idx_availability_date ON availability(available_date);

-- Appointments. Immutable once created; there is no cancellation path.
CREATE TABLE IF NOT EXISTS appointment (
    id INTEGER PRIMARY KEY,
    appointment_date TEXT NOT NULL,
    vaccine_name TEXT NOT NULL REFERENCES vaccine(name),
    caregiver_username TEXT NOT NULL REFERENCES caregiver(username),
    patient_username TEXT NOT NULL REFERENCES patient(username),
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_appointment_caregiver ON appointment(caregiver_username);
CREATE INDEX IF NOT EXISTS idx_appointment_patient ON appointment(patient_username);
`
