// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schedule

import (
	"errors"
	"reflect"
	"testing"

	"github.com/danielhkuo/vaxsched/models"
	"github.com/danielhkuo/vaxsched/testutil"
)

func TestListAvailableEmpty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ledger := NewLedger(conn)

	names, err := ledger.ListAvailable(testutil.MustDate(t, "2024-03-01"))
	if err != nil {
		t.Fatalf("ListAvailable failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("Expected no caregivers, got %v", names)
	}
}

func TestAddAndListSorted(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ledger := NewLedger(conn)
	date := testutil.MustDate(t, "2024-03-01")

	for _, name := range []string{"bob", "alice", "carol"} {
		testutil.CreateTestCaregiver(t, conn, name, "Secret1!")
		if err := ledger.Add(name, date); err != nil {
			t.Fatalf("Add(%s) failed: %v", name, err)
		}
	}

	names, err := ledger.ListAvailable(date)
	if err != nil {
		t.Fatalf("ListAvailable failed: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"alice", "bob", "carol"}) {
		t.Errorf("Expected sorted usernames, got %v", names)
	}
}

func TestListAvailableFiltersByDate(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ledger := NewLedger(conn)

	testutil.CreateTestCaregiver(t, conn, "carol", "Secret1!")
	testutil.AddTestAvailability(t, conn, "carol", testutil.MustDate(t, "2024-03-01"))

	names, err := ledger.ListAvailable(testutil.MustDate(t, "2024-03-02"))
	if err != nil {
		t.Fatalf("ListAvailable failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("Expected no caregivers on another date, got %v", names)
	}
}

func TestAddDuplicateRejected(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ledger := NewLedger(conn)
	date := testutil.MustDate(t, "2024-03-01")

	testutil.CreateTestCaregiver(t, conn, "carol", "Secret1!")

	if err := ledger.Add("carol", date); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := ledger.Add("carol", date); !errors.Is(err, models.ErrValidation) {
		t.Errorf("Expected ErrValidation on duplicate upload, got %v", err)
	}

	if got := testutil.CountRows(t, conn, "availability"); got != 1 {
		t.Errorf("Expected 1 availability row, got %d", got)
	}
}

func TestRemove(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ledger := NewLedger(conn)
	date := testutil.MustDate(t, "2024-03-01")

	testutil.CreateTestCaregiver(t, conn, "carol", "Secret1!")
	testutil.AddTestAvailability(t, conn, "carol", date)

	removed, err := ledger.Remove("carol", date)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if !removed {
		t.Error("Expected Remove to report a removed row")
	}

	// Second removal finds nothing
	removed, err = ledger.Remove("carol", date)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if removed {
		t.Error("Expected Remove to report no row on second call")
	}
}

func TestRoundTrip(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ledger := NewLedger(conn)
	date := testutil.MustDate(t, "2024-03-01")

	testutil.CreateTestCaregiver(t, conn, "carol", "Secret1!")

	if err := ledger.Add("carol", date); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	names, _ := ledger.ListAvailable(date)
	if !reflect.DeepEqual(names, []string{"carol"}) {
		t.Fatalf("Expected carol listed after upload, got %v", names)
	}

	if _, err := ledger.Remove("carol", date); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	names, _ = ledger.ListAvailable(date)
	if len(names) != 0 {
		t.Errorf("Expected carol no longer listed after removal, got %v", names)
	}
}
