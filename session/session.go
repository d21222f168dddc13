// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/danielhkuo/vaxsched/models"
)

// Role is the tagged variant of who is logged in. At most one identity
// is authenticated at a time.
type Role int

const (
	RoleNone Role = iota
	RolePatient
	RoleCaregiver
)

func (r Role) String() string {
	switch r {
	case RolePatient:
		return "patient"
	case RoleCaregiver:
		return "caregiver"
	default:
		return "none"
	}
}

// Session holds the authenticated identity for one command-line session.
// The ID correlates log lines across commands.
type Session struct {
	ID       string
	Role     Role
	Username string
}

func New() *Session {
	return &Session{ID: uuid.NewString(), Role: RoleNone}
}

// LoginPatient binds the session to a patient identity. Fails if anyone
// is already logged in.
func (s *Session) LoginPatient(username string) error {
	return s.login(RolePatient, username)
}

// LoginCaregiver binds the session to a caregiver identity. Fails if
// anyone is already logged in.
func (s *Session) LoginCaregiver(username string) error {
	return s.login(RoleCaregiver, username)
}

func (s *Session) login(role Role, username string) error {
	if s.Role != RoleNone {
		return fmt.Errorf("%w: already logged in", models.ErrValidation)
	}
	s.Role = role
	s.Username = username
	return nil
}

// Logout clears the authenticated identity. Fails if nobody is logged in.
func (s *Session) Logout() error {
	if s.Role == RoleNone {
		return fmt.Errorf("%w: not logged in", models.ErrValidation)
	}
	s.Role = RoleNone
	s.Username = ""
	return nil
}

// LoggedIn reports whether any identity is authenticated.
func (s *Session) LoggedIn() bool {
	return s.Role != RoleNone
}
