package postgres

import (
	"testing"

	"github.com/louisbranch/booking.space/internal/services/reservation/storage"
)

func TestStatusMappingIsBidirectional(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		status storage.Status
		column string
	}{
		{storage.StatusUnknown, statusColumnUnknown},
		{storage.StatusPending, statusColumnPending},
		{storage.StatusConfirmed, statusColumnConfirmed},
		{storage.StatusCancelled, statusColumnBlocked},
	}
	for _, tc := range testCases {
		if got := statusToColumn(tc.status); got != tc.column {
			t.Fatalf("statusToColumn(%v) = %q, want %q", tc.status, got, tc.column)
		}
		if got := statusFromColumn(tc.column); got != tc.status {
			t.Fatalf("statusFromColumn(%q) = %v, want %v", tc.column, got, tc.status)
		}
	}
}

func TestStatusFromColumnUnknownValuesDecodeSafely(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "archived", "CONFIRMED"} {
		if got := statusFromColumn(value); got != storage.StatusUnknown {
			t.Fatalf("statusFromColumn(%q) = %v, want %v", value, got, storage.StatusUnknown)
		}
	}
}
