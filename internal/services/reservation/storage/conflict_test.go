package storage

import (
	"strings"
	"testing"
	"time"
)

const conflictDetail = `Key (resource_id, timespan)=(room-1, ["2022-11-04 15:00:00+00","2022-11-08 12:00:00+00")) conflicts with existing key (resource_id, timespan)=(room-1, ["2022-11-01 15:00:00+00","2022-11-07 12:00:00+00")).`

func TestParseConflictInfoDecodesBothWindows(t *testing.T) {
	t.Parallel()

	info := ParseConflictInfo(conflictDetail)
	if !info.Parsed() {
		t.Fatalf("expected parsed conflict, got raw %q", info.Raw)
	}

	want := Conflict{
		New: Window{
			ResourceID: "room-1",
			Start:      time.Date(2022, time.November, 4, 15, 0, 0, 0, time.UTC),
			End:        time.Date(2022, time.November, 8, 12, 0, 0, 0, time.UTC),
		},
		Old: Window{
			ResourceID: "room-1",
			Start:      time.Date(2022, time.November, 1, 15, 0, 0, 0, time.UTC),
			End:        time.Date(2022, time.November, 7, 12, 0, 0, 0, time.UTC),
		},
	}
	if info.Conflict.New.ResourceID != want.New.ResourceID {
		t.Fatalf("new resource = %q, want %q", info.Conflict.New.ResourceID, want.New.ResourceID)
	}
	if !info.Conflict.New.Start.Equal(want.New.Start) || !info.Conflict.New.End.Equal(want.New.End) {
		t.Fatalf("new window = [%v, %v), want [%v, %v)",
			info.Conflict.New.Start, info.Conflict.New.End, want.New.Start, want.New.End)
	}
	if !info.Conflict.Old.Start.Equal(want.Old.Start) || !info.Conflict.Old.End.Equal(want.Old.End) {
		t.Fatalf("old window = [%v, %v), want [%v, %v)",
			info.Conflict.Old.Start, info.Conflict.Old.End, want.Old.Start, want.Old.End)
	}
}

func TestParseConflictInfoNormalizesOffsetsToUTC(t *testing.T) {
	t.Parallel()

	detail := `Key (resource_id, timespan)=(desk-7, ["2022-11-04 23:00:00+08","2022-11-05 04:00:00+08")) conflicts with existing key (resource_id, timespan)=(desk-7, ["2022-11-04 10:00:00-05","2022-11-04 22:00:00-05"))`
	info := ParseConflictInfo(detail)
	if !info.Parsed() {
		t.Fatalf("expected parsed conflict, got raw %q", info.Raw)
	}
	if got := info.Conflict.New.Start; !got.Equal(time.Date(2022, time.November, 4, 15, 0, 0, 0, time.UTC)) {
		t.Fatalf("new start = %v, want 2022-11-04T15:00:00Z", got)
	}
	if got := info.Conflict.Old.End; !got.Equal(time.Date(2022, time.November, 5, 3, 0, 0, 0, time.UTC)) {
		t.Fatalf("old end = %v, want 2022-11-05T03:00:00Z", got)
	}
}

func TestParseConflictInfoFallsBackToRaw(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		detail string
	}{
		{name: "empty message", detail: ""},
		{name: "unrelated message", detail: "duplicate key value violates unique constraint"},
		{
			name:   "single group",
			detail: `Key (resource_id, timespan)=(room-1, ["2022-11-04 15:00:00+00","2022-11-08 12:00:00+00"))`,
		},
		{
			name:   "unparsable timestamp",
			detail: `Key (resource_id, timespan)=(room-1, ["soon","later")) conflicts with existing key (resource_id, timespan)=(room-1, ["soon","later"))`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			info := ParseConflictInfo(tc.detail)
			if info.Parsed() {
				t.Fatalf("expected raw fallback for %q", tc.detail)
			}
			if info.Raw != tc.detail {
				t.Fatalf("raw = %q, want original message", info.Raw)
			}
		})
	}
}

func TestConflictErrorMessage(t *testing.T) {
	t.Parallel()

	parsed := &ConflictError{Info: ParseConflictInfo(conflictDetail)}
	if msg := parsed.Error(); !strings.Contains(msg, "room-1") || !strings.Contains(msg, "overlaps existing") {
		t.Fatalf("unexpected parsed conflict message %q", msg)
	}

	raw := &ConflictError{Info: ConflictInfo{Raw: "boom"}}
	if msg := raw.Error(); msg != "reservation conflict: boom" {
		t.Fatalf("unexpected raw conflict message %q", msg)
	}
}
