package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	reservationv1 "github.com/louisbranch/booking.space/api/gen/go/reservation/v1"
	"github.com/louisbranch/booking.space/internal/services/reservation/storage"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type fakeReservationStore struct {
	nextID    int64
	order     []int64
	records   map[int64]storage.Reservation
	createErr error
	queryErr  error
	filterErr error

	lastQuery  storage.Query
	lastFilter storage.Filter
}

func newFakeReservationStore() *fakeReservationStore {
	return &fakeReservationStore{records: map[int64]storage.Reservation{}}
}

func (f *fakeReservationStore) Create(_ context.Context, rsvp storage.Reservation) (storage.Reservation, error) {
	if err := rsvp.Validate(); err != nil {
		return storage.Reservation{}, err
	}
	if f.createErr != nil {
		return storage.Reservation{}, f.createErr
	}
	f.nextID++
	rsvp.ID = f.nextID
	rsvp.Status = storage.StatusPending
	f.records[rsvp.ID] = rsvp
	f.order = append(f.order, rsvp.ID)
	return rsvp, nil
}

func (f *fakeReservationStore) Confirm(_ context.Context, id int64) (storage.Reservation, error) {
	rsvp, ok := f.records[id]
	if !ok || rsvp.Status != storage.StatusPending {
		return storage.Reservation{}, storage.ErrNotFound
	}
	rsvp.Status = storage.StatusConfirmed
	f.records[id] = rsvp
	return rsvp, nil
}

func (f *fakeReservationStore) UpdateNote(_ context.Context, id int64, note string) (storage.Reservation, error) {
	rsvp, ok := f.records[id]
	if !ok {
		return storage.Reservation{}, storage.ErrNotFound
	}
	rsvp.Note = note
	f.records[id] = rsvp
	return rsvp, nil
}

func (f *fakeReservationStore) Cancel(_ context.Context, id int64) (storage.Reservation, error) {
	rsvp, ok := f.records[id]
	if !ok {
		return storage.Reservation{}, storage.ErrNotFound
	}
	rsvp.Status = storage.StatusCancelled
	f.records[id] = rsvp
	return rsvp, nil
}

func (f *fakeReservationStore) Get(_ context.Context, id int64) (storage.Reservation, error) {
	rsvp, ok := f.records[id]
	if !ok {
		return storage.Reservation{}, storage.ErrNotFound
	}
	return rsvp, nil
}

func (f *fakeReservationStore) Query(_ context.Context, q storage.Query) ([]storage.Reservation, error) {
	f.lastQuery = q
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	var out []storage.Reservation
	for _, id := range f.order {
		rsvp := f.records[id]
		if q.UserID != "" && rsvp.UserID != q.UserID {
			continue
		}
		if rsvp.Status != q.Status {
			continue
		}
		out = append(out, rsvp)
	}
	return out, nil
}

func (f *fakeReservationStore) QueryStream(ctx context.Context, q storage.Query) <-chan storage.QueryResult {
	matches, err := f.Query(ctx, q)
	results := make(chan storage.QueryResult, len(matches)+1)
	if err != nil {
		results <- storage.QueryResult{Err: err}
	} else {
		for _, rsvp := range matches {
			results <- storage.QueryResult{Reservation: rsvp}
		}
	}
	close(results)
	return results
}

func (f *fakeReservationStore) Filter(_ context.Context, filter storage.Filter) (storage.Pager, []storage.Reservation, error) {
	f.lastFilter = filter
	if f.filterErr != nil {
		return storage.Pager{}, nil, f.filterErr
	}
	var out []storage.Reservation
	for _, id := range f.order {
		rsvp := f.records[id]
		if filter.UserID != "" && rsvp.UserID != filter.UserID {
			continue
		}
		if rsvp.Status != filter.Status {
			continue
		}
		out = append(out, rsvp)
	}
	pager := storage.Pager{Total: int64(len(out))}
	if int(filter.PageSize) > 0 && len(out) > int(filter.PageSize) {
		out = out[:filter.PageSize]
	}
	if len(out) > 0 {
		pager.Prev = out[0].ID
		pager.Next = out[len(out)-1].ID
	}
	return pager, out, nil
}

type fakeQueryStream struct {
	grpc.ServerStream
	ctx     context.Context
	sent    []*reservationv1.QueryResponse
	sendErr error
}

func (f *fakeQueryStream) Context() context.Context {
	if f.ctx != nil {
		return f.ctx
	}
	return context.Background()
}

func (f *fakeQueryStream) Send(resp *reservationv1.QueryResponse) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, resp)
	return nil
}

type fakeListenStream struct {
	grpc.ServerStream
}

func (f *fakeListenStream) Context() context.Context { return context.Background() }

func (f *fakeListenStream) Send(*reservationv1.ListenResponse) error { return nil }

func protoReservation(userID, resourceID string, start, end time.Time) *reservationv1.Reservation {
	return &reservationv1.Reservation{
		UserId:     userID,
		ResourceId: resourceID,
		StartTime:  timestamppb.New(start),
		EndTime:    timestamppb.New(end),
		Note:       "test booking",
	}
}

var (
	testStart = time.Date(2022, time.November, 1, 15, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2022, time.November, 7, 12, 0, 0, 0, time.UTC)
)

func TestAdd_NilRequestAndMissingReservation(t *testing.T) {
	svc := NewService(newFakeReservationStore())

	_, err := svc.Add(context.Background(), nil)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
	_, err = svc.Add(context.Background(), &reservationv1.AddRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestAdd_ValidationFailuresMapToInvalidArgument(t *testing.T) {
	svc := NewService(newFakeReservationStore())

	testCases := []struct {
		name string
		rsvp *reservationv1.Reservation
	}{
		{name: "missing user id", rsvp: protoReservation("", "room-1", testStart, testEnd)},
		{name: "missing resource id", rsvp: protoReservation("alice", "", testStart, testEnd)},
		{name: "inverted window", rsvp: protoReservation("alice", "room-1", testEnd, testStart)},
		{name: "degenerate window", rsvp: protoReservation("alice", "room-1", testStart, testStart)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(context.Background(), &reservationv1.AddRequest{Reservation: tc.rsvp})
			if status.Code(err) != codes.InvalidArgument {
				t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
			}
		})
	}
}

func TestAdd_SuccessAssignsIDAndPendingStatus(t *testing.T) {
	svc := NewService(newFakeReservationStore())

	resp, err := svc.Add(context.Background(), &reservationv1.AddRequest{
		Reservation: protoReservation("alice", "room-1", testStart, testEnd),
	})
	if err != nil {
		t.Fatalf("add reservation: %v", err)
	}
	got := resp.GetReservation()
	if got.GetId() == 0 {
		t.Fatal("expected assigned id")
	}
	if got.GetStatus() != reservationv1.ReservationStatus_RESERVATION_STATUS_PENDING {
		t.Fatalf("status = %v, want pending", got.GetStatus())
	}
	if !got.GetStartTime().AsTime().Equal(testStart) || !got.GetEndTime().AsTime().Equal(testEnd) {
		t.Fatal("expected window round trip")
	}
}

func TestAdd_ConflictMapsToAlreadyExists(t *testing.T) {
	store := newFakeReservationStore()
	store.createErr = &storage.ConflictError{Info: storage.ConflictInfo{Raw: "overlap"}}
	svc := NewService(store)

	_, err := svc.Add(context.Background(), &reservationv1.AddRequest{
		Reservation: protoReservation("bob", "room-1", testStart, testEnd),
	})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.AlreadyExists)
	}
}

func TestAdd_StorageFailureMapsToInternal(t *testing.T) {
	store := newFakeReservationStore()
	store.createErr = errors.New("connection reset")
	svc := NewService(store)

	_, err := svc.Add(context.Background(), &reservationv1.AddRequest{
		Reservation: protoReservation("bob", "room-1", testStart, testEnd),
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.Internal)
	}
}

func TestConfirm_RequiresID(t *testing.T) {
	svc := NewService(newFakeReservationStore())
	_, err := svc.Confirm(context.Background(), &reservationv1.ConfirmRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestConfirm_SecondCallReturnsNotFound(t *testing.T) {
	store := newFakeReservationStore()
	svc := NewService(store)

	resp, err := svc.Add(context.Background(), &reservationv1.AddRequest{
		Reservation: protoReservation("alice", "room-2", testStart, testEnd),
	})
	if err != nil {
		t.Fatalf("add reservation: %v", err)
	}
	id := resp.GetReservation().GetId()

	confirmResp, err := svc.Confirm(context.Background(), &reservationv1.ConfirmRequest{Id: id})
	if err != nil {
		t.Fatalf("confirm reservation: %v", err)
	}
	if got := confirmResp.GetReservation().GetStatus(); got != reservationv1.ReservationStatus_RESERVATION_STATUS_CONFIRMED {
		t.Fatalf("status = %v, want confirmed", got)
	}

	_, err = svc.Confirm(context.Background(), &reservationv1.ConfirmRequest{Id: id})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("second confirm code = %v, want %v", status.Code(err), codes.NotFound)
	}
}

func TestUpdate_ReplacesNote(t *testing.T) {
	store := newFakeReservationStore()
	svc := NewService(store)

	resp, err := svc.Add(context.Background(), &reservationv1.AddRequest{
		Reservation: protoReservation("alice", "room-3", testStart, testEnd),
	})
	if err != nil {
		t.Fatalf("add reservation: %v", err)
	}
	id := resp.GetReservation().GetId()

	updateResp, err := svc.Update(context.Background(), &reservationv1.UpdateRequest{Id: id, Note: "new note"})
	if err != nil {
		t.Fatalf("update note: %v", err)
	}
	if got := updateResp.GetReservation().GetNote(); got != "new note" {
		t.Fatalf("note = %q, want %q", got, "new note")
	}

	getResp, err := svc.Get(context.Background(), &reservationv1.GetRequest{Id: id})
	if err != nil {
		t.Fatalf("get reservation: %v", err)
	}
	if got := getResp.GetReservation().GetNote(); got != "new note" {
		t.Fatalf("note after get = %q, want %q", got, "new note")
	}
}

func TestUpdate_MissingReturnsNotFound(t *testing.T) {
	svc := NewService(newFakeReservationStore())
	_, err := svc.Update(context.Background(), &reservationv1.UpdateRequest{Id: 99, Note: "x"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.NotFound)
	}
}

func TestCancel_MarksReservationCancelled(t *testing.T) {
	store := newFakeReservationStore()
	svc := NewService(store)

	resp, err := svc.Add(context.Background(), &reservationv1.AddRequest{
		Reservation: protoReservation("alice", "room-4", testStart, testEnd),
	})
	if err != nil {
		t.Fatalf("add reservation: %v", err)
	}

	cancelResp, err := svc.Cancel(context.Background(), &reservationv1.CancelRequest{
		Id: resp.GetReservation().GetId(),
	})
	if err != nil {
		t.Fatalf("cancel reservation: %v", err)
	}
	if got := cancelResp.GetReservation().GetStatus(); got != reservationv1.ReservationStatus_RESERVATION_STATUS_CANCELLED {
		t.Fatalf("status = %v, want cancelled", got)
	}
}

func TestGet_MissingReturnsNotFound(t *testing.T) {
	svc := NewService(newFakeReservationStore())
	_, err := svc.Get(context.Background(), &reservationv1.GetRequest{Id: 42})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.NotFound)
	}
}

func TestQuery_RequiresQueryPayload(t *testing.T) {
	svc := NewService(newFakeReservationStore())
	err := svc.Query(&reservationv1.QueryRequest{}, &fakeQueryStream{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestQuery_StreamsMatchesAndAppliesPageDefaults(t *testing.T) {
	store := newFakeReservationStore()
	svc := NewService(store)

	for _, resource := range []string{"room-1", "room-2"} {
		_, err := svc.Add(context.Background(), &reservationv1.AddRequest{
			Reservation: protoReservation("alice", resource, testStart, testEnd),
		})
		if err != nil {
			t.Fatalf("add reservation: %v", err)
		}
	}

	stream := &fakeQueryStream{}
	err := svc.Query(&reservationv1.QueryRequest{
		Query: &reservationv1.ReservationQuery{
			UserId:    "alice",
			StartTime: timestamppb.New(testStart.Add(-time.Hour)),
			EndTime:   timestamppb.New(testEnd.Add(time.Hour)),
			Status:    reservationv1.ReservationStatus_RESERVATION_STATUS_PENDING,
		},
	}, stream)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(stream.sent) != 2 {
		t.Fatalf("streamed %d reservations, want 2", len(stream.sent))
	}
	if store.lastQuery.Page != 1 {
		t.Fatalf("page = %d, want default 1", store.lastQuery.Page)
	}
	if store.lastQuery.PageSize != defaultQueryPageSize {
		t.Fatalf("page size = %d, want default %d", store.lastQuery.PageSize, defaultQueryPageSize)
	}
}

func TestQuery_TerminalStorageErrorMapsToInternal(t *testing.T) {
	store := newFakeReservationStore()
	store.queryErr = errors.New("connection reset")
	svc := NewService(store)

	err := svc.Query(&reservationv1.QueryRequest{
		Query: &reservationv1.ReservationQuery{
			StartTime: timestamppb.New(testStart),
			EndTime:   timestamppb.New(testEnd),
		},
	}, &fakeQueryStream{})
	if status.Code(err) != codes.Internal {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.Internal)
	}
}

func TestQuery_SendFailureStopsStreaming(t *testing.T) {
	store := newFakeReservationStore()
	svc := NewService(store)

	_, err := svc.Add(context.Background(), &reservationv1.AddRequest{
		Reservation: protoReservation("alice", "room-1", testStart, testEnd),
	})
	if err != nil {
		t.Fatalf("add reservation: %v", err)
	}

	sendErr := errors.New("consumer went away")
	stream := &fakeQueryStream{sendErr: sendErr}
	err = svc.Query(&reservationv1.QueryRequest{
		Query: &reservationv1.ReservationQuery{
			UserId:    "alice",
			StartTime: timestamppb.New(testStart),
			EndTime:   timestamppb.New(testEnd),
			Status:    reservationv1.ReservationStatus_RESERVATION_STATUS_PENDING,
		},
	}, stream)
	if !errors.Is(err, sendErr) {
		t.Fatalf("err = %v, want send failure", err)
	}
}

func TestFilter_RequiresFilterPayload(t *testing.T) {
	svc := NewService(newFakeReservationStore())
	_, err := svc.Filter(context.Background(), &reservationv1.FilterRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestFilter_SinglePageBoundariesAndTotal(t *testing.T) {
	store := newFakeReservationStore()
	svc := NewService(store)

	for _, resource := range []string{"room-1", "room-2"} {
		_, err := svc.Add(context.Background(), &reservationv1.AddRequest{
			Reservation: protoReservation("alice", resource, testStart, testEnd),
		})
		if err != nil {
			t.Fatalf("add reservation: %v", err)
		}
	}

	resp, err := svc.Filter(context.Background(), &reservationv1.FilterRequest{
		Filter: &reservationv1.ReservationFilter{
			UserId:   "alice",
			Status:   reservationv1.ReservationStatus_RESERVATION_STATUS_PENDING,
			PageSize: 1,
		},
	})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(resp.GetReservations()) != 1 {
		t.Fatalf("page length = %d, want 1", len(resp.GetReservations()))
	}
	id := resp.GetReservations()[0].GetId()
	if resp.GetPager().GetPrev() != id || resp.GetPager().GetNext() != id {
		t.Fatalf("pager = %+v, want prev/next %d", resp.GetPager(), id)
	}
	if resp.GetPager().GetTotal() != 2 {
		t.Fatalf("total = %d, want 2", resp.GetPager().GetTotal())
	}
}

func TestListen_ReturnsUnimplemented(t *testing.T) {
	svc := NewService(newFakeReservationStore())
	err := svc.Listen(&reservationv1.ListenRequest{}, &fakeListenStream{})
	if status.Code(err) != codes.Unimplemented {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.Unimplemented)
	}
}

func TestStatusFromErrorMapping(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{name: "invalid user id", err: storage.ErrInvalidUserID, want: codes.InvalidArgument},
		{name: "invalid resource id", err: storage.ErrInvalidResourceID, want: codes.InvalidArgument},
		{name: "invalid time", err: storage.ErrInvalidTime, want: codes.InvalidArgument},
		{name: "conflict", err: &storage.ConflictError{Info: storage.ConflictInfo{Raw: "overlap"}}, want: codes.AlreadyExists},
		{name: "not found", err: storage.ErrNotFound, want: codes.NotFound},
		{name: "unclassified", err: errors.New("boom"), want: codes.Internal},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := status.Code(statusFromError(tc.err)); got != tc.want {
				t.Fatalf("code = %v, want %v", got, tc.want)
			}
		})
	}
}
