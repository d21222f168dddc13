// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package schedule implements the caregiver availability ledger.

A slot is one bookable (caregiver, date) pair. The ledger invariant: a
slot row exists exactly when the caregiver has not yet been booked for
that date. Slots are created by upload_availability and consumed by a
successful reservation.

	ledger := schedule.NewLedger(conn)
	ledger.Add("carol", date)
	names, _ := ledger.ListAvailable(date) // sorted ascending

Duplicate uploads of the same (caregiver, date) pair are rejected by the
table's composite primary key rather than a read-then-write check, so
the guarantee holds under concurrent sessions.

NewLedger accepts db.DBTX, so the reservation allocator can consume a
slot inside its transaction.
*/
package schedule
