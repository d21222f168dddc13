// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package booking

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/vaxsched/db"
	"github.com/danielhkuo/vaxsched/inventory"
	"github.com/danielhkuo/vaxsched/models"
	"github.com/danielhkuo/vaxsched/schedule"
)

// Allocator converts one availability slot and one vaccine dose into one
// appointment record, atomically.
type Allocator struct {
	db *sql.DB

	// wrapTx, when set, interposes on every statement the reservation
	// transaction runs. Tests use it to fail individual steps and check
	// that a partial reservation rolls back whole.
	wrapTx func(db.DBTX) db.DBTX
}

func NewAllocator(db *sql.DB) *Allocator {
	return &Allocator{db: db}
}

// Reserve books an appointment for a patient: it selects the
// lexicographically smallest available caregiver on the date, assigns a
// fresh appointment id, and commits the appointment insert, the
// availability removal, and the dose decrement as a single serializable
// transaction. On any failure the whole unit of work rolls back.
func (a *Allocator) Reserve(date time.Time, vaccineName, patientUsername string) (*models.Appointment, error) {
	tx, err := a.db.BeginTx(context.Background(), &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var run db.DBTX = tx
	if a.wrapTx != nil {
		run = a.wrapTx(tx)
	}

	// Every read below runs under the same transaction that commits the
	// writes it validated. Read-then-write without that atomicity is the
	// double-booking hazard this type exists to prevent.
	slots := schedule.NewLedger(run)
	doses := inventory.NewLedger(run)

	caregivers, err := slots.ListAvailable(date)
	if err != nil {
		return nil, err
	}
	if len(caregivers) == 0 {
		return nil, models.ErrNoCaregiverAvailable
	}

	vaccine, err := doses.Get(vaccineName)
	if err != nil {
		return nil, err
	}
	if vaccine == nil || vaccine.AvailableDoses == 0 {
		return nil, models.ErrInsufficientInventory
	}

	// Deterministic tie-break: smallest username wins. ListAvailable
	// returns ascending order.
	caregiver := caregivers[0]

	appt := models.Appointment{
		Date:              date,
		VaccineName:       vaccineName,
		CaregiverUsername: caregiver,
		PatientUsername:   patientUsername,
		CreatedAt:         time.Now(),
	}

	appt.ID, err = nextAppointmentID(run)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrAllocation, err)
	}

	_, err = run.Exec(`
		INSERT INTO appointment (id, appointment_date, vaccine_name, caregiver_username, patient_username, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, appt.ID, date.Format(models.DateLayout), vaccineName, caregiver, patientUsername, appt.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to insert appointment: %v", models.ErrAllocation, err)
	}

	removed, err := slots.Remove(caregiver, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrAllocation, err)
	}
	if !removed {
		// The slot we just listed is gone: ledger inconsistency.
		return nil, fmt.Errorf("%w: availability slot vanished mid-reservation", models.ErrAllocation)
	}

	if err := doses.Decrease(vaccineName, 1); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrAllocation, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit failed: %v", models.ErrAllocation, err)
	}

	slog.Info("reservation created",
		"appointment_id", appt.ID,
		"caregiver", caregiver,
		"patient", patientUsername,
		"vaccine", vaccineName,
		"date", date.Format(models.DateLayout),
	)

	return &appt, nil
}

// nextAppointmentID assigns a monotonically increasing id. Running inside
// the serializable reservation transaction keeps it collision-free, and
// the primary key constraint backstops it.
func nextAppointmentID(q db.DBTX) (int64, error) {
	var id int64
	err := q.QueryRow(`SELECT COALESCE(MAX(id), 0) + 1 FROM appointment`).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to assign appointment id: %w", err)
	}
	return id, nil
}

// ListByPatient returns a patient's appointments ordered by id.
func (a *Allocator) ListByPatient(username string) ([]models.Appointment, error) {
	return a.list("patient_username", username)
}

// ListByCaregiver returns a caregiver's appointments ordered by id.
func (a *Allocator) ListByCaregiver(username string) ([]models.Appointment, error) {
	return a.list("caregiver_username", username)
}

func (a *Allocator) list(column, username string) ([]models.Appointment, error) {
	rows, err := a.db.Query(`
		SELECT id, appointment_date, vaccine_name, caregiver_username, patient_username, created_at
		FROM appointment
		WHERE `+column+` = $1
		ORDER BY id ASC
	`, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	var appts []models.Appointment
	for rows.Next() {
		var appt models.Appointment
		var date string
		err := rows.Scan(&appt.ID, &date, &appt.VaccineName, &appt.CaregiverUsername, &appt.PatientUsername, &appt.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appt.Date, err = time.Parse(models.DateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("bad stored appointment date: %w", err)
		}
		appts = append(appts, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read appointments: %w", err)
	}

	return appts, nil
}
