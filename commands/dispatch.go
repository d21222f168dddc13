// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"bufio"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/danielhkuo/vaxsched/cliparse"
	"github.com/danielhkuo/vaxsched/models"
	"github.com/danielhkuo/vaxsched/session"
)

// Kind enumerates every command the scheduler accepts.
type Kind int

const (
	KindUnknown Kind = iota
	KindCreatePatient
	KindCreateCaregiver
	KindLoginPatient
	KindLoginCaregiver
	KindSearchCaregiverSchedule
	KindReserve
	KindUploadAvailability
	KindAddDoses
	KindShowAppointments
	KindLogout
	KindQuit
)

var kindNames = map[string]Kind{
	"create_patient":            KindCreatePatient,
	"create_caregiver":          KindCreateCaregiver,
	"login_patient":             KindLoginPatient,
	"login_caregiver":           KindLoginCaregiver,
	"search_caregiver_schedule": KindSearchCaregiverSchedule,
	"reserve":                   KindReserve,
	"upload_availability":       KindUploadAvailability,
	"add_doses":                 KindAddDoses,
	"show_appointments":         KindShowAppointments,
	"logout":                    KindLogout,
	"quit":                      KindQuit,
}

type handlerFunc func(*Handler, *session.Session, []string) error

// The table is the single place commands are bound to handlers; method
// expressions keep the signatures compile-time checked.
var handlerTable = map[Kind]handlerFunc{
	KindCreatePatient:           (*Handler).CreatePatient,
	KindCreateCaregiver:         (*Handler).CreateCaregiver,
	KindLoginPatient:            (*Handler).LoginPatient,
	KindLoginCaregiver:          (*Handler).LoginCaregiver,
	KindSearchCaregiverSchedule: (*Handler).SearchCaregiverSchedule,
	KindReserve:                 (*Handler).Reserve,
	KindUploadAvailability:      (*Handler).UploadAvailability,
	KindAddDoses:                (*Handler).AddDoses,
	KindShowAppointments:        (*Handler).ShowAppointments,
	KindLogout:                  (*Handler).Logout,
}

// Dispatcher owns one interactive session: it tokenizes input lines,
// resolves the command kind, and runs the bound handler.
type Dispatcher struct {
	h    *Handler
	sess *session.Session
	out  io.Writer
}

func NewDispatcher(db *sql.DB, cfg cliparse.Config, out io.Writer) *Dispatcher {
	return &Dispatcher{
		h:    NewHandler(db, cfg, out),
		sess: session.New(),
		out:  out,
	}
}

// Session exposes the dispatcher's session, mainly for tests.
func (d *Dispatcher) Session() *session.Session {
	return d.sess
}

// Exec runs a single command line. It reports quit=true for the quit
// command and returns an error only for the fatal storage case; domain
// errors are printed and swallowed so the loop continues.
func (d *Dispatcher) Exec(line string) (quit bool, err error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false, nil
	}

	name := strings.ToLower(tokens[0])
	kind, ok := kindNames[name]
	if !ok {
		fmt.Fprintln(d.out, "Invalid operation name!")
		return false, nil
	}
	if kind == KindQuit {
		return true, nil
	}

	start := time.Now()
	err = handlerTable[kind](d.h, d.sess, tokens[1:])
	slog.Info("command completed",
		"session_id", d.sess.ID,
		"command", name,
		"duration_ms", time.Since(start).Milliseconds(),
		"error", err,
	)

	if err != nil {
		if errors.Is(err, models.ErrStorageUnavailable) {
			return false, err
		}
		fmt.Fprintln(d.out, "Error:", err)
		return false, nil
	}

	return false, nil
}

// Run drives the read-eval loop until quit, end of input, or a fatal
// storage error.
func (d *Dispatcher) Run(in io.Reader) error {
	fmt.Fprintln(d.out, "Welcome to the vaccine reservation scheduler!")
	d.printCommands()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(d.out, "> ")
		if !scanner.Scan() {
			break
		}

		quit, err := d.Exec(scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			fmt.Fprintln(d.out, "Bye!")
			return nil
		}
	}

	return scanner.Err()
}

func (d *Dispatcher) printCommands() {
	fmt.Fprintln(d.out, " *** Please enter one of the following commands *** ")
	fmt.Fprintln(d.out, "> create_patient <username> <password>")
	fmt.Fprintln(d.out, "> create_caregiver <username> <password>")
	fmt.Fprintln(d.out, "> login_patient <username> <password>")
	fmt.Fprintln(d.out, "> login_caregiver <username> <password>")
	fmt.Fprintln(d.out, "> search_caregiver_schedule <mm-dd-yyyy>")
	fmt.Fprintln(d.out, "> reserve <mm-dd-yyyy> <vaccine_name>")
	fmt.Fprintln(d.out, "> upload_availability <mm-dd-yyyy>")
	fmt.Fprintln(d.out, "> add_doses <vaccine_name> <number>")
	fmt.Fprintln(d.out, "> show_appointments")
	fmt.Fprintln(d.out, "> logout")
	fmt.Fprintln(d.out, "> quit")
}
