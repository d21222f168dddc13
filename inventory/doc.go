// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package inventory implements the vaccine dose ledger.

The ledger is a persisted counter per vaccine name with a guarded
decrement: available_doses never goes negative, and a decrease that would
make it negative is rejected without changing the stored count. The guard
runs inside the UPDATE itself, so it holds under concurrent access.

	ledger := inventory.NewLedger(conn)
	if err := ledger.AddDoses("moderna", 100); err != nil { ... }
	if err := ledger.Decrease("moderna", 1); err != nil { ... }

NewLedger accepts db.DBTX, so the reservation allocator can run the same
operations inside its transaction.
*/
package inventory
