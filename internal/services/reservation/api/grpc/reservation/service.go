// Package reservation exposes reservation.v1 gRPC operations.
package reservation

import (
	"context"
	"errors"

	reservationv1 "github.com/louisbranch/booking.space/api/gen/go/reservation/v1"
	"github.com/louisbranch/booking.space/internal/platform/grpc/pagination"
	"github.com/louisbranch/booking.space/internal/services/reservation/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	defaultQueryPageSize = 10
	maxQueryPageSize     = 100
)

// Service exposes reservation.v1 gRPC operations.
type Service struct {
	reservationv1.UnimplementedReservationServiceServer
	store storage.ReservationStore
}

// NewService creates a reservation service backed by reservation storage.
func NewService(store storage.ReservationStore) *Service {
	return &Service{store: store}
}

// Add creates one pending reservation.
func (s *Service) Add(ctx context.Context, in *reservationv1.AddRequest) (*reservationv1.AddResponse, error) {
	if in == nil || in.GetReservation() == nil {
		return nil, status.Error(codes.InvalidArgument, "reservation is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "reservation store is not configured")
	}

	created, err := s.store.Create(ctx, reservationFromProto(in.GetReservation()))
	if err != nil {
		return nil, statusFromError(err)
	}
	return &reservationv1.AddResponse{
		Reservation: reservationToProto(created),
	}, nil
}

// Confirm transitions one pending reservation to confirmed.
func (s *Service) Confirm(ctx context.Context, in *reservationv1.ConfirmRequest) (*reservationv1.ConfirmResponse, error) {
	if in == nil || in.GetId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "reservation id is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "reservation store is not configured")
	}

	confirmed, err := s.store.Confirm(ctx, in.GetId())
	if err != nil {
		return nil, statusFromError(err)
	}
	return &reservationv1.ConfirmResponse{
		Reservation: reservationToProto(confirmed),
	}, nil
}

// Update replaces one reservation's note.
func (s *Service) Update(ctx context.Context, in *reservationv1.UpdateRequest) (*reservationv1.UpdateResponse, error) {
	if in == nil || in.GetId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "reservation id is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "reservation store is not configured")
	}

	updated, err := s.store.UpdateNote(ctx, in.GetId(), in.GetNote())
	if err != nil {
		return nil, statusFromError(err)
	}
	return &reservationv1.UpdateResponse{
		Reservation: reservationToProto(updated),
	}, nil
}

// Cancel marks one reservation cancelled.
func (s *Service) Cancel(ctx context.Context, in *reservationv1.CancelRequest) (*reservationv1.CancelResponse, error) {
	if in == nil || in.GetId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "reservation id is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "reservation store is not configured")
	}

	cancelled, err := s.store.Cancel(ctx, in.GetId())
	if err != nil {
		return nil, statusFromError(err)
	}
	return &reservationv1.CancelResponse{
		Reservation: reservationToProto(cancelled),
	}, nil
}

// Get returns one reservation by id.
func (s *Service) Get(ctx context.Context, in *reservationv1.GetRequest) (*reservationv1.GetResponse, error) {
	if in == nil || in.GetId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "reservation id is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "reservation store is not configured")
	}

	found, err := s.store.Get(ctx, in.GetId())
	if err != nil {
		return nil, statusFromError(err)
	}
	return &reservationv1.GetResponse{
		Reservation: reservationToProto(found),
	}, nil
}

// Query streams reservations matching user/resource/window/status. The
// consumer's pace backpressures the storage producer; dropping the stream
// cancels its context and stops further row work.
func (s *Service) Query(in *reservationv1.QueryRequest, stream reservationv1.ReservationService_QueryServer) error {
	if in == nil || in.GetQuery() == nil {
		return status.Error(codes.InvalidArgument, "query is required")
	}
	if s == nil || s.store == nil {
		return status.Error(codes.Internal, "reservation store is not configured")
	}

	q := in.GetQuery()
	query := storage.Query{
		UserID:     q.GetUserId(),
		ResourceID: q.GetResourceId(),
		Status:     statusFromProto(q.GetStatus()),
		Page:       int32(pagination.ClampPage(q.GetPage())),
		PageSize: int32(pagination.ClampPageSize(q.GetPageSize(), pagination.PageSizeConfig{
			Default: defaultQueryPageSize,
			Max:     maxQueryPageSize,
		})),
		Desc: q.GetDesc(),
	}
	if q.GetStartTime() != nil {
		query.Start = q.GetStartTime().AsTime()
	}
	if q.GetEndTime() != nil {
		query.End = q.GetEndTime().AsTime()
	}

	for res := range s.store.QueryStream(stream.Context(), query) {
		if res.Err != nil {
			return statusFromError(res.Err)
		}
		if err := stream.Send(&reservationv1.QueryResponse{
			Reservation: reservationToProto(res.Reservation),
		}); err != nil {
			return err
		}
	}
	return nil
}

// Filter returns one keyset page of reservations ordered by id.
func (s *Service) Filter(ctx context.Context, in *reservationv1.FilterRequest) (*reservationv1.FilterResponse, error) {
	if in == nil || in.GetFilter() == nil {
		return nil, status.Error(codes.InvalidArgument, "filter is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "reservation store is not configured")
	}

	f := in.GetFilter()
	pager, reservations, err := s.store.Filter(ctx, storage.Filter{
		UserID:     f.GetUserId(),
		ResourceID: f.GetResourceId(),
		Status:     statusFromProto(f.GetStatus()),
		Cursor:     f.GetCursor(),
		PageSize: int32(pagination.ClampPageSize(f.GetPageSize(), pagination.PageSizeConfig{
			Default: defaultQueryPageSize,
			Max:     maxQueryPageSize,
		})),
		Desc: f.GetDesc(),
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &reservationv1.FilterResponse{
		Pager: &reservationv1.FilterPager{
			Prev:  pager.Prev,
			Next:  pager.Next,
			Total: pager.Total,
		},
		Reservations: make([]*reservationv1.Reservation, 0, len(reservations)),
	}
	for _, rsvp := range reservations {
		resp.Reservations = append(resp.Reservations, reservationToProto(rsvp))
	}
	return resp, nil
}

// Listen streams reservations as they are added, confirmed or cancelled.
// The delivery mechanics are not implemented; callers receive Unimplemented.
func (s *Service) Listen(_ *reservationv1.ListenRequest, _ reservationv1.ReservationService_ListenServer) error {
	return status.Error(codes.Unimplemented, "listen is not implemented")
}

// statusFromError maps the domain error taxonomy to the transport status
// vocabulary. Conflicts surface as AlreadyExists carrying the collision
// description; unclassified storage failures stay Internal.
func statusFromError(err error) error {
	var conflict *storage.ConflictError
	switch {
	case errors.Is(err, storage.ErrInvalidUserID),
		errors.Is(err, storage.ErrInvalidResourceID),
		errors.Is(err, storage.ErrInvalidTime):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.As(err, &conflict):
		return status.Error(codes.AlreadyExists, conflict.Error())
	case errors.Is(err, storage.ErrNotFound):
		return status.Error(codes.NotFound, "reservation not found")
	default:
		return status.Errorf(codes.Internal, "reservation storage: %v", err)
	}
}

func reservationFromProto(in *reservationv1.Reservation) storage.Reservation {
	rsvp := storage.Reservation{
		ID:         in.GetId(),
		UserID:     in.GetUserId(),
		ResourceID: in.GetResourceId(),
		Status:     statusFromProto(in.GetStatus()),
		Note:       in.GetNote(),
	}
	if in.GetStartTime() != nil {
		rsvp.Start = in.GetStartTime().AsTime()
	}
	if in.GetEndTime() != nil {
		rsvp.End = in.GetEndTime().AsTime()
	}
	return rsvp
}

func reservationToProto(rsvp storage.Reservation) *reservationv1.Reservation {
	return &reservationv1.Reservation{
		Id:         rsvp.ID,
		UserId:     rsvp.UserID,
		ResourceId: rsvp.ResourceID,
		StartTime:  timestamppb.New(rsvp.Start),
		EndTime:    timestamppb.New(rsvp.End),
		Status:     statusToProto(rsvp.Status),
		Note:       rsvp.Note,
	}
}

func statusFromProto(in reservationv1.ReservationStatus) storage.Status {
	switch in {
	case reservationv1.ReservationStatus_RESERVATION_STATUS_PENDING:
		return storage.StatusPending
	case reservationv1.ReservationStatus_RESERVATION_STATUS_CONFIRMED:
		return storage.StatusConfirmed
	case reservationv1.ReservationStatus_RESERVATION_STATUS_CANCELLED:
		return storage.StatusCancelled
	default:
		return storage.StatusUnknown
	}
}

func statusToProto(in storage.Status) reservationv1.ReservationStatus {
	switch in {
	case storage.StatusPending:
		return reservationv1.ReservationStatus_RESERVATION_STATUS_PENDING
	case storage.StatusConfirmed:
		return reservationv1.ReservationStatus_RESERVATION_STATUS_CONFIRMED
	case storage.StatusCancelled:
		return reservationv1.ReservationStatus_RESERVATION_STATUS_CANCELLED
	default:
		return reservationv1.ReservationStatus_RESERVATION_STATUS_UNSPECIFIED
	}
}
