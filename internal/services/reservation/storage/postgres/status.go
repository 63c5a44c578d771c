package postgres

import "github.com/louisbranch/booking.space/internal/services/reservation/storage"

// Storage-level values of the rsvp.reservation_status enum. The naming
// differs from the domain on the terminal state (domain cancelled, column
// blocked), so the mapping is an explicit table in both directions rather
// than an ordinal cast.
const (
	statusColumnUnknown   = "unknown"
	statusColumnPending   = "pending"
	statusColumnConfirmed = "confirmed"
	statusColumnBlocked   = "blocked"
)

func statusToColumn(s storage.Status) string {
	switch s {
	case storage.StatusPending:
		return statusColumnPending
	case storage.StatusConfirmed:
		return statusColumnConfirmed
	case storage.StatusCancelled:
		return statusColumnBlocked
	default:
		return statusColumnUnknown
	}
}

func statusFromColumn(value string) storage.Status {
	switch value {
	case statusColumnPending:
		return storage.StatusPending
	case statusColumnConfirmed:
		return storage.StatusConfirmed
	case statusColumnBlocked:
		return storage.StatusCancelled
	default:
		return storage.StatusUnknown
	}
}
