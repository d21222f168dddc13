// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"bytes"
	"database/sql"
	"strings"
	"testing"

	"github.com/danielhkuo/vaxsched/session"
	"github.com/danielhkuo/vaxsched/testutil"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *sql.DB, *bytes.Buffer) {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	out := &bytes.Buffer{}
	return NewDispatcher(conn, testutil.GetTestConfig(), out), conn, out
}

// exec runs a command line and fails the test on a fatal storage error
func exec(t *testing.T, d *Dispatcher, line string) {
	t.Helper()

	if _, err := d.Exec(line); err != nil {
		t.Fatalf("Exec(%q) fatal error: %v", line, err)
	}
}

func TestCreateAndLoginPatient(t *testing.T) {
	d, _, out := newTestDispatcher(t)

	exec(t, d, "create_patient pat MyP@ss123")
	if !strings.Contains(out.String(), "Created user pat") {
		t.Errorf("Expected creation message, got %q", out.String())
	}

	exec(t, d, "login_patient pat MyP@ss123")
	if !strings.Contains(out.String(), "Logged in as: pat") {
		t.Errorf("Expected login message, got %q", out.String())
	}
	if d.Session().Role != session.RolePatient {
		t.Errorf("Expected patient role, got %v", d.Session().Role)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	d, _, out := newTestDispatcher(t)

	exec(t, d, "create_patient pat MyP@ss123")
	exec(t, d, "login_patient pat WrongP@ss1")

	if d.Session().LoggedIn() {
		t.Error("Bad credentials should not log in")
	}
	if !strings.Contains(out.String(), "invalid credentials") {
		t.Errorf("Expected credential error in output, got %q", out.String())
	}
}

func TestDuplicateUsernameReported(t *testing.T) {
	d, conn, out := newTestDispatcher(t)

	exec(t, d, "create_patient pat MyP@ss123")
	exec(t, d, "create_patient pat Other@123")

	if !strings.Contains(out.String(), "username already taken") {
		t.Errorf("Expected duplicate username error, got %q", out.String())
	}
	if got := testutil.CountRows(t, conn, "patient"); got != 1 {
		t.Errorf("Expected 1 patient, got %d", got)
	}
}

func TestSecondLoginRejected(t *testing.T) {
	d, _, out := newTestDispatcher(t)

	exec(t, d, "create_patient pat MyP@ss123")
	exec(t, d, "create_caregiver carol MyP@ss123")
	exec(t, d, "login_patient pat MyP@ss123")
	exec(t, d, "login_caregiver carol MyP@ss123")

	if !strings.Contains(out.String(), "already logged in") {
		t.Errorf("Expected already-logged-in error, got %q", out.String())
	}
	if d.Session().Role != session.RolePatient {
		t.Error("Second login should not replace the identity")
	}
}

func TestRoleGating(t *testing.T) {
	d, _, _ := newTestDispatcher(t)

	exec(t, d, "create_patient pat MyP@ss123")
	exec(t, d, "create_caregiver carol MyP@ss123")

	tests := []struct {
		name    string
		login   string
		command string
		wantErr string
	}{
		{"reserve requires login", "", "reserve 03-01-2024 moderna", "please login first"},
		{"search requires login", "", "search_caregiver_schedule 03-01-2024", "please login first"},
		{"show requires login", "", "show_appointments", "please login first"},
		{"upload requires caregiver", "login_patient pat MyP@ss123", "upload_availability 03-01-2024", "please login as a caregiver"},
		{"add_doses requires caregiver", "login_patient pat MyP@ss123", "add_doses moderna 5", "please login as a caregiver"},
		{"reserve requires patient", "login_caregiver carol MyP@ss123", "reserve 03-01-2024 moderna", "please login as a patient"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d2, _, out := newTestDispatcher(t)
			exec(t, d2, "create_patient pat MyP@ss123")
			exec(t, d2, "create_caregiver carol MyP@ss123")
			if tt.login != "" {
				exec(t, d2, tt.login)
			}

			exec(t, d2, tt.command)
			if !strings.Contains(out.String(), tt.wantErr) {
				t.Errorf("Expected %q in output, got %q", tt.wantErr, out.String())
			}
		})
	}
}

func TestArgumentCountValidation(t *testing.T) {
	d, conn, out := newTestDispatcher(t)

	// Wrong arity fails before touching storage
	for _, line := range []string{
		"create_patient pat",
		"create_patient pat pass extra",
		"login_patient pat",
		"reserve 03-01-2024",
		"upload_availability",
		"add_doses moderna",
		"logout now",
	} {
		out.Reset()
		exec(t, d, line)
		if !strings.Contains(out.String(), "Error:") {
			t.Errorf("Exec(%q): expected an error, got %q", line, out.String())
		}
	}

	if got := testutil.CountRows(t, conn, "patient"); got != 0 {
		t.Errorf("Arity failures should not write records, got %d patients", got)
	}
}

func TestMalformedDateRejected(t *testing.T) {
	d, conn, out := newTestDispatcher(t)

	exec(t, d, "create_caregiver carol MyP@ss123")
	exec(t, d, "login_caregiver carol MyP@ss123")

	for _, date := range []string{"2024-03-01", "13-01-2024", "03-32-2024", "notadate"} {
		out.Reset()
		exec(t, d, "upload_availability "+date)
		if !strings.Contains(out.String(), "valid date") {
			t.Errorf("Date %q: expected date validation error, got %q", date, out.String())
		}
	}

	if got := testutil.CountRows(t, conn, "availability"); got != 0 {
		t.Errorf("Malformed dates should not create slots, got %d rows", got)
	}
}

func TestAddDosesValidation(t *testing.T) {
	d, conn, out := newTestDispatcher(t)

	exec(t, d, "create_caregiver carol MyP@ss123")
	exec(t, d, "login_caregiver carol MyP@ss123")

	exec(t, d, "add_doses moderna five")
	if !strings.Contains(out.String(), "must be an integer") {
		t.Errorf("Expected integer validation error, got %q", out.String())
	}

	out.Reset()
	exec(t, d, "add_doses moderna -3")
	if !strings.Contains(out.String(), "non-negative") {
		t.Errorf("Expected non-negative validation error, got %q", out.String())
	}

	if got := testutil.DoseCount(t, conn, "moderna"); got != -1 {
		t.Errorf("Malformed add_doses should not create a record, found %d doses", got)
	}
}

func TestUnknownCommand(t *testing.T) {
	d, _, out := newTestDispatcher(t)

	exec(t, d, "frobnicate now")
	if !strings.Contains(out.String(), "Invalid operation name!") {
		t.Errorf("Expected invalid-operation message, got %q", out.String())
	}
}

func TestBlankLineIgnored(t *testing.T) {
	d, _, out := newTestDispatcher(t)

	exec(t, d, "")
	exec(t, d, "   ")
	if out.Len() != 0 {
		t.Errorf("Blank lines should produce no output, got %q", out.String())
	}
}

func TestQuit(t *testing.T) {
	d, _, _ := newTestDispatcher(t)

	quit, err := d.Exec("quit")
	if err != nil {
		t.Fatalf("Exec(quit) failed: %v", err)
	}
	if !quit {
		t.Error("Expected quit=true")
	}

	// Case-insensitive command word, like the rest
	quit, _ = d.Exec("Quit")
	if !quit {
		t.Error("Expected Quit to be accepted")
	}
}

func TestLogout(t *testing.T) {
	d, _, out := newTestDispatcher(t)

	exec(t, d, "logout")
	if !strings.Contains(out.String(), "not logged in") {
		t.Errorf("Expected not-logged-in error, got %q", out.String())
	}

	exec(t, d, "create_patient pat MyP@ss123")
	exec(t, d, "login_patient pat MyP@ss123")
	exec(t, d, "logout")
	if !strings.Contains(out.String(), "Successfully logged out!") {
		t.Errorf("Expected logout message, got %q", out.String())
	}
	if d.Session().LoggedIn() {
		t.Error("Session should be cleared after logout")
	}
}
