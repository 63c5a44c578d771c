package storage

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Window is one side of an overlap collision: a resource and the half-open
// interval a reservation occupies on it.
type Window struct {
	ResourceID string
	Start      time.Time
	End        time.Time
}

// Conflict describes a rejected insert: the new window that was refused and
// the existing window it collided with.
type Conflict struct {
	New Window
	Old Window
}

// ConflictInfo is the two-tier result of interpreting the storage engine's
// overlap diagnostic. Conflict is nil when the message could not be parsed;
// Raw always keeps the original text so format drift degrades to a
// usable-but-unstructured error instead of a failure.
type ConflictInfo struct {
	Conflict *Conflict
	Raw      string
}

// Parsed reports whether the diagnostic was decoded into structured windows.
func (i ConflictInfo) Parsed() bool {
	return i.Conflict != nil
}

// ConflictError reports that a reservation insert collided with an existing
// active reservation for the same resource.
type ConflictError struct {
	Info ConflictInfo
}

func (e *ConflictError) Error() string {
	if e.Info.Parsed() {
		c := e.Info.Conflict
		return fmt.Sprintf(
			"reservation conflict: resource %q window [%s, %s) overlaps existing [%s, %s)",
			c.New.ResourceID,
			c.New.Start.Format(time.RFC3339), c.New.End.Format(time.RFC3339),
			c.Old.Start.Format(time.RFC3339), c.Old.End.Format(time.RFC3339),
		)
	}
	return "reservation conflict: " + e.Info.Raw
}

// The exclusion-violation detail renders each colliding row as a key/value
// group, e.g.
//
//	Key (resource_id, timespan)=(room-1, ["2022-11-04 15:00:00+00","2022-11-08 12:00:00+00")) conflicts with
//	existing key (resource_id, timespan)=(room-1, ["2022-11-01 15:00:00+00","2022-11-07 12:00:00+00")).
//
// The first group is the rejected (new) window, the second the existing one.
var conflictGroupRe = regexp.MustCompile(
	`\(([A-Za-z0-9_]+),\s*([A-Za-z0-9_]+)\)=\(([^,]+),\s*(\[[^)\]]+)`,
)

// Range bounds render with a signed hour offset and no minute component.
const conflictTimeLayout = "2006-01-02 15:04:05-07"

// ParseConflictInfo decodes the overlap diagnostic emitted by the storage
// engine. It is the single entry point reading the free-text format, so it
// can be replaced wholesale if the engine ever exposes structured conflict
// metadata.
func ParseConflictInfo(detail string) ConflictInfo {
	info := ConflictInfo{Raw: detail}

	groups := conflictGroupRe.FindAllStringSubmatch(detail, -1)
	if len(groups) != 2 {
		return info
	}

	newWindow, ok := parseConflictWindow(groups[0])
	if !ok {
		return info
	}
	oldWindow, ok := parseConflictWindow(groups[1])
	if !ok {
		return info
	}

	info.Conflict = &Conflict{New: newWindow, Old: oldWindow}
	return info
}

func parseConflictWindow(group []string) (Window, bool) {
	resourceID := strings.TrimSpace(group[3])
	rangeLiteral := strings.TrimPrefix(group[4], "[")
	bounds := strings.Split(rangeLiteral, ",")
	if resourceID == "" || len(bounds) != 2 {
		return Window{}, false
	}

	start, ok := parseConflictTime(bounds[0])
	if !ok {
		return Window{}, false
	}
	end, ok := parseConflictTime(bounds[1])
	if !ok {
		return Window{}, false
	}
	return Window{ResourceID: resourceID, Start: start, End: end}, true
}

func parseConflictTime(value string) (time.Time, bool) {
	value = strings.Trim(strings.TrimSpace(value), `"`)
	parsed, err := time.Parse(conflictTimeLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed.UTC(), true
}
