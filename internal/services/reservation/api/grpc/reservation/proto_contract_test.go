package reservation

import (
	"testing"

	reservationv1 "github.com/louisbranch/booking.space/api/gen/go/reservation/v1"
)

func TestProtoContract_ReservationServiceSymbolsExist(t *testing.T) {
	var _ reservationv1.ReservationServiceServer
	if reservationv1.ReservationStatus_RESERVATION_STATUS_UNSPECIFIED != 0 {
		t.Fatal("unexpected enum baseline")
	}
}
