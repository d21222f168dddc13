// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"testing"

	"github.com/danielhkuo/vaxsched/models"
)

func TestLoginLogoutLifecycle(t *testing.T) {
	s := New()

	if s.LoggedIn() {
		t.Error("Fresh session should not be logged in")
	}
	if s.ID == "" {
		t.Error("Session should have an id")
	}

	if err := s.LoginPatient("pat"); err != nil {
		t.Fatalf("LoginPatient failed: %v", err)
	}
	if s.Role != RolePatient || s.Username != "pat" {
		t.Errorf("Expected patient pat, got %v %q", s.Role, s.Username)
	}

	if err := s.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if s.LoggedIn() || s.Username != "" {
		t.Error("Logout should clear the identity")
	}

	if err := s.LoginCaregiver("carol"); err != nil {
		t.Fatalf("LoginCaregiver after logout failed: %v", err)
	}
	if s.Role != RoleCaregiver {
		t.Errorf("Expected caregiver role, got %v", s.Role)
	}
}

func TestAtMostOneIdentity(t *testing.T) {
	s := New()

	if err := s.LoginPatient("pat"); err != nil {
		t.Fatalf("LoginPatient failed: %v", err)
	}

	if err := s.LoginCaregiver("carol"); !errors.Is(err, models.ErrValidation) {
		t.Errorf("Expected ErrValidation for second login, got %v", err)
	}
	if err := s.LoginPatient("otherpat"); !errors.Is(err, models.ErrValidation) {
		t.Errorf("Expected ErrValidation for second login, got %v", err)
	}

	// First identity untouched
	if s.Role != RolePatient || s.Username != "pat" {
		t.Errorf("Failed login should not change identity, got %v %q", s.Role, s.Username)
	}
}

func TestLogoutWithoutLogin(t *testing.T) {
	s := New()

	if err := s.Logout(); !errors.Is(err, models.ErrValidation) {
		t.Errorf("Expected ErrValidation, got %v", err)
	}
}

func TestRoleString(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleNone, "none"},
		{RolePatient, "patient"},
		{RoleCaregiver, "caregiver"},
	}
	for _, tt := range tests {
		if got := tt.role.String(); got != tt.want {
			t.Errorf("Role(%d).String() = %q, want %q", tt.role, got, tt.want)
		}
	}
}
