// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/vaxsched/auth"
	"github.com/danielhkuo/vaxsched/cliparse"
	"github.com/danielhkuo/vaxsched/db"
	"github.com/danielhkuo/vaxsched/models"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// A single connection is enforced: each in-memory DSN is otherwise a separate
// database per connection, and one writer keeps SQLite's serialization exact.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		DatabaseType: "sqlite",
		DatabaseURL:  ":memory:",
	}
}

// CreateTestPatient registers a patient directly in the database
func CreateTestPatient(t *testing.T, conn *sql.DB, username, password string) {
	t.Helper()

	salt, _ := auth.GenerateSalt()
	hash := auth.HashPassword(password, salt)

	_, err := conn.Exec(`
		INSERT INTO patient (username, salt, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, username, salt, hash, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test patient: %v", err)
	}
}

// CreateTestCaregiver registers a caregiver directly in the database
func CreateTestCaregiver(t *testing.T, conn *sql.DB, username, password string) {
	t.Helper()

	salt, _ := auth.GenerateSalt()
	hash := auth.HashPassword(password, salt)

	_, err := conn.Exec(`
		INSERT INTO caregiver (username, salt, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, username, salt, hash, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test caregiver: %v", err)
	}
}

// AddTestAvailability uploads an availability slot for a caregiver
func AddTestAvailability(t *testing.T, conn *sql.DB, caregiver string, date time.Time) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO availability (available_date, caregiver_username)
		VALUES ($1, $2)
	`, date.Format(models.DateLayout), caregiver)
	if err != nil {
		t.Fatalf("Failed to add test availability: %v", err)
	}
}

// AddTestDoses stocks a vaccine with the given dose count
func AddTestDoses(t *testing.T, conn *sql.DB, vaccine string, doses int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vaccine (name, available_doses)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET available_doses = vaccine.available_doses + $2
	`, vaccine, doses)
	if err != nil {
		t.Fatalf("Failed to add test doses: %v", err)
	}
}

// MustDate parses a yyyy-mm-dd date for test fixtures
func MustDate(t *testing.T, iso string) time.Time {
	t.Helper()

	d, err := time.Parse(models.DateLayout, iso)
	if err != nil {
		t.Fatalf("Bad test date %q: %v", iso, err)
	}
	return d
}

// CountRows returns the number of rows matching a WHERE-free table scan
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return n
}

// DoseCount returns the stored dose count for a vaccine, or -1 if absent
func DoseCount(t *testing.T, conn *sql.DB, vaccine string) int {
	t.Helper()

	var n int
	err := conn.QueryRow("SELECT available_doses FROM vaccine WHERE name = $1", vaccine).Scan(&n)
	if err == sql.ErrNoRows {
		return -1
	}
	if err != nil {
		t.Fatalf("Failed to query dose count: %v", err)
	}
	return n
}
