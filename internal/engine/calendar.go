package engine

import (
	"cmp"
	"fmt"
	"time"

	"cloudeng.io/datetime"
	"github.com/tartampluch/go-age/internal/config"
)

// Date is a day of the proleptic Gregorian calendar, without a time of day
// or a location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

const monthsPerYear = 12

const secondsPerDay = 24 * 60 * 60

// Today returns the calendar date of now, read in now's own location.
// The time of day is discarded: ages are measured between calendar dates.
func Today(now time.Time) Date {
	y, m, d := now.Date()
	return Date{Year: y, Month: m, Day: d}
}

// IsValidDate reports whether year/month/day names a real day of the
// Gregorian calendar, leap years included.
func IsValidDate(year, month, day int) bool {
	if year < config.MinYear || month < 1 || month > monthsPerYear || day < 1 {
		return false
	}
	return day <= datetime.DaysInMonth(year, datetime.Month(month))
}

// CompareDates returns -1, 0 or +1 depending on whether a is before, equal to
// or after b.
func CompareDates(a, b Date) int {
	if c := cmp.Compare(a.Year, b.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Month, b.Month); c != 0 {
		return c
	}
	return cmp.Compare(a.Day, b.Day)
}

// SubMonths moves d back n calendar months. When the target month is shorter
// the day is clamped to its last day, so 31 March minus one month is the last
// day of February.
func SubMonths(d Date, n int) Date {
	total := d.Year*monthsPerYear + int(d.Month) - 1 - n
	year := floorDiv(total, monthsPerYear)
	month := time.Month(total - year*monthsPerYear + 1)
	return Date{
		Year:  year,
		Month: month,
		Day:   min(d.Day, datetime.DaysInMonth(year, datetime.Month(month))),
	}
}

// SubYears moves d back n calendar years, clamping 29 February to the 28th
// when the target year is not a leap year.
func SubYears(d Date, n int) Date {
	return SubMonths(d, n*monthsPerYear)
}

// SubDays moves d back n days.
func SubDays(d Date, n int) Date {
	t := toTime(d).AddDate(0, 0, -n)
	return Today(t)
}

// WholeYearsBetween returns the largest number of whole calendar years that
// can be removed from later without going before earlier.
// It returns 0 when later is not after earlier.
func WholeYearsBetween(later, earlier Date) int {
	if CompareDates(later, earlier) <= 0 {
		return 0
	}
	years := later.Year - earlier.Year
	for years > 0 && CompareDates(SubYears(later, years), earlier) < 0 {
		years--
	}
	return years
}

// WholeMonthsBetween returns the largest number of whole calendar months that
// can be removed from later without going before earlier.
// It returns 0 when later is not after earlier.
func WholeMonthsBetween(later, earlier Date) int {
	if CompareDates(later, earlier) <= 0 {
		return 0
	}
	months := (later.Year-earlier.Year)*monthsPerYear + int(later.Month) - int(earlier.Month)
	for months > 0 && CompareDates(SubMonths(later, months), earlier) < 0 {
		months--
	}
	return months
}

// WholeDaysBetween returns the number of days from earlier to later.
// It returns 0 when later is not after earlier.
func WholeDaysBetween(later, earlier Date) int {
	if CompareDates(later, earlier) <= 0 {
		return 0
	}
	// Unix seconds rather than time.Duration: a Duration overflows after ~292 years.
	return int((toTime(later).Unix() - toTime(earlier).Unix()) / secondsPerDay)
}

// toTime anchors a calendar date at midnight UTC, where every day lasts 24h.
func toTime(d Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
