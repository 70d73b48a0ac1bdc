// Package availability implements the booking engine core: interval overlap,
// blocking-status classification, and rental price quoting.
package availability

import (
	"fmt"
	"time"

	apperrors "github.com/sewakita/sewakita-backend/pkg/errors"
)

// dateLayouts lists the accepted wire formats for booking dates, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// Interval is an inclusive booking window. Both endpoints count as occupied
// days, so a rental ending on a given day blocks another starting that day.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval validates and normalizes a booking window.
func NewInterval(start, end time.Time) (Interval, error) {
	start = NormalizeDate(start)
	end = NormalizeDate(end)
	if !start.Before(end) {
		return Interval{}, apperrors.New(apperrors.CodeValidation, "start date must be before end date")
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether two inclusive intervals share at least one day.
// The predicate is start-a <= end-b AND end-a >= start-b, so a shared
// boundary day counts as a conflict.
func (i Interval) Overlaps(other Interval) bool {
	return !i.Start.After(other.End) && !i.End.Before(other.Start)
}

// NormalizeDate truncates a timestamp to midnight UTC so interval arithmetic
// works in whole days regardless of the caller's zone.
func NormalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts an RFC3339 timestamp or a bare YYYY-MM-DD date and
// returns it normalized to midnight UTC.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return NormalizeDate(t), nil
		}
	}
	return time.Time{}, apperrors.New(apperrors.CodeValidation, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD or RFC3339", value))
}
