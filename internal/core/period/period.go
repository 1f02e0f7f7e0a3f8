// Package period resolves anchor dates into inclusive reporting ranges and
// steps between adjacent periods. Every date-filtered view goes through it.
package period

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/finops_core/internal/core/domain"
)

// ErrUnknownGranularity is returned for granularities outside WEEK/MONTH/SEMESTER/YEAR/ALL.
var ErrUnknownGranularity = errors.New("unknown granularity")

// Bounds of the ALL range. Wide enough for any realistic record while keeping
// downstream range checks uniform.
var (
	allStartYear = 1900
	allEndYear   = 2999
)

// Direction selects the adjacent period for Step.
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// ParseGranularity converts user input (any case) into a Granularity.
func ParseGranularity(s string) (domain.Granularity, error) {
	g := domain.Granularity(strings.ToUpper(strings.TrimSpace(s)))
	switch g {
	case domain.Week, domain.Month, domain.Semester, domain.Year, domain.All:
		return g, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGranularity, s)
}

// Resolve maps an anchor date and granularity to an inclusive range. Start is
// at 00:00:00 and End at 23:59:59 of their days, in the anchor's location.
func Resolve(anchor time.Time, g domain.Granularity) (domain.DateRange, error) {
	loc := anchor.Location()
	y, m, d := anchor.Date()

	var start, end time.Time
	switch g {
	case domain.Week:
		start = time.Date(y, m, d-int(anchor.Weekday()), 0, 0, 0, 0, loc)
		end = time.Date(start.Year(), start.Month(), start.Day()+6, 23, 59, 59, 0, loc)
	case domain.Month:
		start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		// Day 0 of the next month is the last day of this one.
		end = time.Date(y, m+1, 0, 23, 59, 59, 0, loc)
	case domain.Semester:
		first := time.January
		if m >= time.July {
			first = time.July
		}
		start = time.Date(y, first, 1, 0, 0, 0, 0, loc)
		end = time.Date(y, first+6, 0, 23, 59, 59, 0, loc)
	case domain.Year:
		start = time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		end = time.Date(y, time.December, 31, 23, 59, 59, 0, loc)
	case domain.All:
		start = time.Date(allStartYear, time.January, 1, 0, 0, 0, 0, loc)
		end = time.Date(allEndYear, time.December, 31, 23, 59, 59, 0, loc)
	default:
		return domain.DateRange{}, fmt.Errorf("%w: %q", ErrUnknownGranularity, g)
	}
	return domain.DateRange{Start: start, End: end}, nil
}

// Step moves the anchor to the previous or next period. ALL (and any unknown
// granularity) leaves the anchor untouched.
func Step(anchor time.Time, g domain.Granularity, dir Direction) time.Time {
	n := int(dir)
	switch g {
	case domain.Week:
		return anchor.AddDate(0, 0, 7*n)
	case domain.Month:
		return AddMonths(anchor, n)
	case domain.Semester:
		return AddMonths(anchor, 6*n)
	case domain.Year:
		return AddMonths(anchor, 12*n)
	}
	return anchor
}

// AddMonths shifts t by n calendar months, clamping the day of month to the
// last day of the target month (Jan 31 + 1 month = Feb 28/29, never March).
// Time of day and location are preserved.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	idx := int(m) - 1 + n
	ny := y + floorDiv(idx, 12)
	nm := time.Month(idx-floorDiv(idx, 12)*12 + 1)
	if last := DaysIn(ny, nm); d > last {
		d = last
	}
	return time.Date(ny, nm, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DaysIn returns the number of days of the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Label renders a short English description of the period containing anchor.
func Label(anchor time.Time, g domain.Granularity) string {
	switch g {
	case domain.Week:
		r, _ := Resolve(anchor, g)
		if r.Start.Year() == r.End.Year() {
			return fmt.Sprintf("%s – %s", r.Start.Format("Jan 2"), r.End.Format("Jan 2, 2006"))
		}
		return fmt.Sprintf("%s – %s", r.Start.Format("Jan 2, 2006"), r.End.Format("Jan 2, 2006"))
	case domain.Month:
		return anchor.Format("January 2006")
	case domain.Semester:
		if anchor.Month() >= time.July {
			return fmt.Sprintf("2nd half of %d", anchor.Year())
		}
		return fmt.Sprintf("1st half of %d", anchor.Year())
	case domain.Year:
		return fmt.Sprintf("%d", anchor.Year())
	case domain.All:
		return "All time"
	}
	return ""
}

// Contains reports whether t falls inside r using calendar-day semantics: each
// date is compared by its own year/month/day, so a record dated on r.End is
// always included regardless of its time of day or location.
func Contains(r domain.DateRange, t time.Time) bool {
	k := dayKey(t)
	return k >= dayKey(r.Start) && k <= dayKey(r.End)
}

func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
