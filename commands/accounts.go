// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"log/slog"

	"github.com/danielhkuo/vaxsched/session"
)

// CreatePatient handles: create_patient <username> <password>
func (h *Handler) CreatePatient(sess *session.Session, args []string) error {
	if err := argCount(args, 2); err != nil {
		return err
	}
	username, password := args[0], args[1]

	if err := classify(h.accounts.CreatePatient(username, password)); err != nil {
		return err
	}

	slog.Info("patient created", "session_id", sess.ID, "username", username)
	h.printf("Created user %s", username)
	return nil
}

// CreateCaregiver handles: create_caregiver <username> <password>
func (h *Handler) CreateCaregiver(sess *session.Session, args []string) error {
	if err := argCount(args, 2); err != nil {
		return err
	}
	username, password := args[0], args[1]

	if err := classify(h.accounts.CreateCaregiver(username, password)); err != nil {
		return err
	}

	slog.Info("caregiver created", "session_id", sess.ID, "username", username)
	h.printf("Created user %s", username)
	return nil
}

// LoginPatient handles: login_patient <username> <password>
func (h *Handler) LoginPatient(sess *session.Session, args []string) error {
	if err := argCount(args, 2); err != nil {
		return err
	}
	if sess.LoggedIn() {
		return errAlreadyLoggedIn
	}
	username, password := args[0], args[1]

	if _, err := h.accounts.AuthenticatePatient(username, password); err != nil {
		return classify(err)
	}
	if err := sess.LoginPatient(username); err != nil {
		return err
	}

	slog.Info("login", "session_id", sess.ID, "role", sess.Role.String(), "username", username)
	h.printf("Logged in as: %s", username)
	return nil
}

// LoginCaregiver handles: login_caregiver <username> <password>
func (h *Handler) LoginCaregiver(sess *session.Session, args []string) error {
	if err := argCount(args, 2); err != nil {
		return err
	}
	if sess.LoggedIn() {
		return errAlreadyLoggedIn
	}
	username, password := args[0], args[1]

	if _, err := h.accounts.AuthenticateCaregiver(username, password); err != nil {
		return classify(err)
	}
	if err := sess.LoginCaregiver(username); err != nil {
		return err
	}

	slog.Info("login", "session_id", sess.ID, "role", sess.Role.String(), "username", username)
	h.printf("Logged in as: %s", username)
	return nil
}

// Logout handles: logout
func (h *Handler) Logout(sess *session.Session, args []string) error {
	if err := argCount(args, 0); err != nil {
		return err
	}

	username := sess.Username
	if err := sess.Logout(); err != nil {
		return err
	}

	slog.Info("logout", "session_id", sess.ID, "username", username)
	h.printf("Successfully logged out!")
	return nil
}
