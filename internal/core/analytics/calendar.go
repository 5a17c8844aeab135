// Package analytics derives completion rates, schedules and outcome
// projections from categories, activities and day logs.
//
// Every function is a pure transformation of its arguments. The current date
// is always passed in by the caller; nothing here reads the system clock.
package analytics

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
)

var ErrUnknownRange = errors.New("unknown range")

type RangeKind string

const (
	RangeCurrentWeek RangeKind = "current-week"
	RangePrevWeek    RangeKind = "prev-week"
	RangeMonth       RangeKind = "month"
	RangeYear        RangeKind = "year"
)

// RangeKinds lists the supported ranges in display order.
var RangeKinds = []RangeKind{RangeCurrentWeek, RangePrevWeek, RangeMonth, RangeYear}

func ParseRangeKind(s string) (RangeKind, error) {
	kind := RangeKind(strings.TrimSpace(strings.ToLower(s)))
	for _, k := range RangeKinds {
		if k == kind {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRange, s)
}

// civil drops the clock and the zone, keeping the caller's calendar date.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MondayOf returns the Monday that opens the week containing day.
func MondayOf(day time.Time) time.Time {
	day = civil(day)

	daysSinceMonday := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		daysSinceMonday = 6
	}
	return day.AddDate(0, 0, -daysSinceMonday)
}

// DatesBetween lists every date from start to end, both inclusive.
func DatesBetween(start, end time.Time) domain.DateRange {
	start, end = civil(start), civil(end)
	if start.After(end) {
		return domain.DateRange{}
	}

	dates := make(domain.DateRange, 0, int(end.Sub(start).Hours()/24)+1)
	for curr := start; !curr.After(end); curr = curr.AddDate(0, 0, 1) {
		dates = append(dates, domain.FormatDate(curr))
	}
	return dates
}

// RangeDates returns the calendar dates of the named range around today.
// Month and year ranges run to their natural end even when it lies in the
// future; consumers filter with DateRange.UpTo when they need to.
func RangeDates(kind RangeKind, today time.Time) domain.DateRange {
	day := civil(today)
	monday := MondayOf(day)

	switch kind {
	case RangeCurrentWeek:
		return DatesBetween(monday, monday.AddDate(0, 0, 6))
	case RangePrevWeek:
		prevMonday := monday.AddDate(0, 0, -7)
		return DatesBetween(prevMonday, prevMonday.AddDate(0, 0, 6))
	case RangeMonth:
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		return DatesBetween(first, first.AddDate(0, 1, -1))
	case RangeYear:
		first := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		last := time.Date(day.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
		return DatesBetween(first, last)
	}

	return domain.DateRange{}
}

// PreviousRangeDates returns the period of the same kind that immediately
// precedes RangeDates(kind, today).
func PreviousRangeDates(kind RangeKind, today time.Time) domain.DateRange {
	day := civil(today)

	var anchor time.Time
	switch kind {
	case RangeCurrentWeek, RangePrevWeek:
		anchor = day.AddDate(0, 0, -7)
	case RangeMonth:
		anchor = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	case RangeYear:
		anchor = time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	default:
		return domain.DateRange{}
	}

	return RangeDates(kind, anchor)
}
