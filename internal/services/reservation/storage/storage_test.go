package storage

import (
	"errors"
	"testing"
	"time"
)

func TestValidateChecksFieldsInOrder(t *testing.T) {
	t.Parallel()

	start := time.Date(2022, time.November, 1, 15, 0, 0, 0, time.UTC)
	end := time.Date(2022, time.November, 7, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		rsvp Reservation
		want error
	}{
		{
			name: "missing user id",
			rsvp: Reservation{ResourceID: "room-1", Start: start, End: end},
			want: ErrInvalidUserID,
		},
		{
			name: "missing user id reported before missing resource id",
			rsvp: Reservation{Start: start, End: end},
			want: ErrInvalidUserID,
		},
		{
			name: "missing resource id",
			rsvp: Reservation{UserID: "alice", Start: start, End: end},
			want: ErrInvalidResourceID,
		},
		{
			name: "missing start",
			rsvp: Reservation{UserID: "alice", ResourceID: "room-1", End: end},
			want: ErrInvalidTime,
		},
		{
			name: "missing end",
			rsvp: Reservation{UserID: "alice", ResourceID: "room-1", Start: start},
			want: ErrInvalidTime,
		},
		{
			name: "start equals end",
			rsvp: Reservation{UserID: "alice", ResourceID: "room-1", Start: start, End: start},
			want: ErrInvalidTime,
		},
		{
			name: "start after end",
			rsvp: Reservation{UserID: "alice", ResourceID: "room-1", Start: end, End: start},
			want: ErrInvalidTime,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.rsvp.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestValidateAcceptsWellFormedReservation(t *testing.T) {
	t.Parallel()

	rsvp := NewPending(
		"alice",
		"room-1",
		time.Date(2022, time.November, 1, 15, 0, 0, 0, time.UTC),
		time.Date(2022, time.November, 7, 12, 0, 0, 0, time.UTC),
		"project review",
	)
	if err := rsvp.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestNewPendingNormalizesToUTC(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+8", 8*60*60)
	start := time.Date(2022, time.November, 1, 23, 0, 0, 0, loc)
	end := time.Date(2022, time.November, 7, 20, 0, 0, 0, loc)

	rsvp := NewPending("alice", "room-1", start, end, "")
	if rsvp.ID != 0 {
		t.Fatalf("id = %d, want 0 before persistence", rsvp.ID)
	}
	if rsvp.Status != StatusPending {
		t.Fatalf("status = %v, want %v", rsvp.Status, StatusPending)
	}
	if rsvp.Start.Location() != time.UTC || rsvp.End.Location() != time.UTC {
		t.Fatal("expected UTC-normalized window bounds")
	}
	if !rsvp.Start.Equal(start) || !rsvp.End.Equal(end) {
		t.Fatal("expected normalization to preserve instants")
	}
}

func TestQueryValidateRequiresOrderedWindow(t *testing.T) {
	t.Parallel()

	start := time.Date(2022, time.November, 1, 0, 0, 0, 0, time.UTC)

	if err := (Query{}).Validate(); !errors.Is(err, ErrInvalidTime) {
		t.Fatalf("empty window = %v, want %v", err, ErrInvalidTime)
	}
	if err := (Query{Start: start, End: start}).Validate(); !errors.Is(err, ErrInvalidTime) {
		t.Fatalf("degenerate window = %v, want %v", err, ErrInvalidTime)
	}
	q := Query{Start: start, End: start.Add(time.Hour)}
	if err := q.Validate(); err != nil {
		t.Fatalf("valid window = %v, want nil", err)
	}
}

func TestStatusStringAndActive(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		status Status
		name   string
		active bool
	}{
		{StatusUnknown, "unknown", false},
		{StatusPending, "pending", true},
		{StatusConfirmed, "confirmed", true},
		{StatusCancelled, "cancelled", false},
		{Status(99), "unknown", false},
	}
	for _, tc := range testCases {
		if got := tc.status.String(); got != tc.name {
			t.Fatalf("String() = %q, want %q", got, tc.name)
		}
		if got := tc.status.Active(); got != tc.active {
			t.Fatalf("%v Active() = %v, want %v", tc.status, got, tc.active)
		}
	}
}
