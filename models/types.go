// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Date layouts. Commands accept mm-dd-yyyy; the database stores ISO dates
// as TEXT so both drivers treat them identically and lexicographic order
// matches calendar order.
const (
	DateLayout      = "2006-01-02"
	InputDateLayout = "01-02-2006"
)

// Domain types

type Vaccine struct {
	Name           string `json:"name"`
	AvailableDoses int    `json:"available_doses"`
}

type Patient struct {
	Username     string    `json:"username"`
	Salt         string    `json:"-"` // Never expose in JSON
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

type Caregiver struct {
	Username     string    `json:"username"`
	Salt         string    `json:"-"` // Never expose in JSON
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// Availability is one bookable slot: a caregiver on a calendar day.
// At most one row exists per (date, caregiver) pair.
type Availability struct {
	Date              time.Time `json:"date"`
	CaregiverUsername string    `json:"caregiver_username"`
}

type Appointment struct {
	ID                int64     `json:"id"`
	Date              time.Time `json:"date"`
	VaccineName       string    `json:"vaccine_name"`
	CaregiverUsername string    `json:"caregiver_username"`
	PatientUsername   string    `json:"patient_username"`
	CreatedAt         time.Time `json:"created_at"`
}

// ParseInputDate parses a user-supplied mm-dd-yyyy date.
func ParseInputDate(s string) (time.Time, error) {
	return time.Parse(InputDateLayout, s)
}
