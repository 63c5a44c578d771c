// Package storage defines persistence contracts for reservation service state.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested reservation is missing, or a
	// conditional status update matched no row.
	ErrNotFound = errors.New("reservation not found")
	// ErrInvalidUserID indicates a reservation without a user id.
	ErrInvalidUserID = errors.New("user id is required")
	// ErrInvalidResourceID indicates a reservation without a resource id.
	ErrInvalidResourceID = errors.New("resource id is required")
	// ErrInvalidTime indicates a missing or inverted reservation window.
	ErrInvalidTime = errors.New("invalid start or end time")
)

// Status tracks the reservation lifecycle. Unknown is a decode-safety
// sentinel and never a valid state to assign.
type Status int32

const (
	StatusUnknown Status = iota
	StatusPending
	StatusConfirmed
	StatusCancelled
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusConfirmed:
		return "confirmed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Active reports whether the status participates in overlap exclusion.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Reservation books a resource for a user over the half-open window
// [Start, End). ID is zero until the record is persisted and immutable
// afterwards.
type Reservation struct {
	ID         int64
	UserID     string
	ResourceID string
	Start      time.Time
	End        time.Time
	Status     Status
	Note       string
}

// NewPending builds an unsaved reservation in pending status with
// UTC-normalized window bounds.
func NewPending(userID, resourceID string, start, end time.Time, note string) Reservation {
	return Reservation{
		UserID:     userID,
		ResourceID: resourceID,
		Start:      start.UTC(),
		End:        end.UTC(),
		Status:     StatusPending,
		Note:       note,
	}
}

// Validate checks the reservation's structural invariants. It is pure and
// never touches storage.
func (r Reservation) Validate() error {
	if r.UserID == "" {
		return ErrInvalidUserID
	}
	if r.ResourceID == "" {
		return ErrInvalidResourceID
	}
	if r.Start.IsZero() || r.End.IsZero() {
		return ErrInvalidTime
	}
	if !r.Start.Before(r.End) {
		return ErrInvalidTime
	}
	return nil
}

// Query selects reservations whose window intersects [Start, End) and whose
// status matches. Empty UserID or ResourceID means no filter. Page is
// 1-based.
type Query struct {
	UserID     string
	ResourceID string
	Start      time.Time
	End        time.Time
	Status     Status
	Page       int32
	PageSize   int32
	Desc       bool
}

// Validate checks that the query window is present and well ordered.
func (q Query) Validate() error {
	if q.Start.IsZero() || q.End.IsZero() {
		return ErrInvalidTime
	}
	if !q.Start.Before(q.End) {
		return ErrInvalidTime
	}
	return nil
}

// Filter selects one keyset page of reservations ordered by id, starting
// after (or before, when Desc) the Cursor id. A zero cursor starts from the
// beginning of the order.
type Filter struct {
	UserID     string
	ResourceID string
	Status     Status
	Cursor     int64
	PageSize   int32
	Desc       bool
}

// Pager carries the id boundaries of a returned page and the total count of
// matching reservations.
type Pager struct {
	Prev  int64
	Next  int64
	Total int64
}

// QueryResult is one element of a streamed query: either a reservation or a
// terminal error.
type QueryResult struct {
	Reservation Reservation
	Err         error
}

// ReservationStore persists reservations. Implementations hold no in-process
// reservation state; conditional updates against the store are the sole
// concurrency control for status transitions.
type ReservationStore interface {
	// Create validates and inserts a pending reservation, returning it with
	// its assigned id. An overlap with an active reservation for the same
	// resource fails with *ConflictError.
	Create(ctx context.Context, rsvp Reservation) (Reservation, error)
	// Confirm transitions a reservation from pending to confirmed. A row
	// that is not currently pending yields ErrNotFound.
	Confirm(ctx context.Context, id int64) (Reservation, error)
	// UpdateNote replaces the reservation note.
	UpdateNote(ctx context.Context, id int64, note string) (Reservation, error)
	// Cancel marks the reservation cancelled, removing it from overlap
	// checks. Any current status may be cancelled.
	Cancel(ctx context.Context, id int64) (Reservation, error)
	// Get returns one reservation by id.
	Get(ctx context.Context, id int64) (Reservation, error)
	// Query returns one offset page of matching reservations ordered by id.
	Query(ctx context.Context, q Query) ([]Reservation, error)
	// QueryStream streams matching reservations through a bounded channel.
	// The channel is closed when rows are exhausted; a mid-stream failure is
	// delivered as the terminal element. Cancelling ctx stops the producer.
	QueryStream(ctx context.Context, q Query) <-chan QueryResult
	// Filter returns one keyset page of reservations ordered by id plus the
	// pager describing its boundaries and the total match count.
	Filter(ctx context.Context, f Filter) (Pager, []Reservation, error)
}
