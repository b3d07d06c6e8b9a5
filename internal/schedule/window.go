// Package schedule turns raw, time-ordered schedule entries into the derived
// views the commands need: query windows, next-module lookahead, duration
// totals, subject distributions, day grouping, teacher labels and room
// availability. Everything here is pure except the lookahead search, which
// retrieves through a Source interface.
package schedule

import (
	"time"

	"github.com/noah-isme/lectio-cli/internal/models"
	apperrors "github.com/noah-isme/lectio-cli/pkg/errors"
)

// Span selects how much of the calendar a schedule query covers.
type Span int

const (
	SpanNow Span = iota
	SpanDay
	SpanWeek
)

const (
	dateLayout    = "2006-01-02"
	instantLayout = "2006-01-02-15-04"
)

// ParseDate parses a YYYY-MM-DD command argument.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, apperrors.Wrap(err, apperrors.ErrInvalidDate.Code, apperrors.ErrInvalidDate.ExitCode, "not a valid date, expected YYYY-MM-DD")
	}
	return t, nil
}

// ParseInstant parses a YYYY-MM-DD-HH-MM command argument.
func ParseInstant(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(instantLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, apperrors.Wrap(err, apperrors.ErrInvalidDate.Code, apperrors.ErrInvalidDate.ExitCode, "not a valid time, expected YYYY-MM-DD-HH-MM")
	}
	return t, nil
}

// Resolve maps a span and an anchor instant to the query window:
//
//	now:  [anchor, anchor+1s), exact timestamps
//	day:  the anchor's calendar date, truncated to whole days
//	week: Monday through Sunday of the anchor's week, truncated
func Resolve(span Span, anchor time.Time) models.Window {
	switch span {
	case SpanDay:
		day := DayOf(anchor)
		return models.Window{Start: day, End: day, Truncate: true}
	case SpanWeek:
		monday := DayOf(anchor).AddDate(0, 0, -weekdayIndex(anchor))
		return models.Window{Start: monday, End: monday.AddDate(0, 0, 6), Truncate: true}
	default:
		return models.Window{Start: anchor, End: anchor.Add(time.Second)}
	}
}

// DayOf truncates an instant to its calendar date.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekdayIndex counts days since Monday, so Monday is 0 and Sunday is 6.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
