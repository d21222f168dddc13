// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package booking implements the reservation allocator.

# Allocation

Reserve is the one place appointments are created. Given a date, vaccine
name, and patient, it runs a single serializable transaction that:

 1. Lists caregivers available on the date (empty → ErrNoCaregiverAvailable)
 2. Looks up the vaccine (absent or zero doses → ErrInsufficientInventory)
 3. Picks the lexicographically smallest caregiver username
 4. Assigns the next appointment id (MAX(id)+1 under the same transaction)
 5. Inserts the appointment, deletes the consumed availability slot, and
    decrements the dose count

Any failure rolls back the whole unit of work: no partial appointment, no
lost dose, no dangling availability removal. Mid-transaction ledger
inconsistencies surface as ErrAllocation; the caller may retry the whole
operation, but the allocator never retries on its own since doses and
availability shift between attempts.

The caregiver tie-break is a deterministic policy, not load balancing:
given {"bob", "alice", "carol"}, "alice" is always chosen.

# Queries

ListByPatient and ListByCaregiver back the show_appointments command,
ordered by appointment id.
*/
package booking
