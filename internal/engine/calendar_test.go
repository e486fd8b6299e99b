package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y, m, d int) Date {
	return Date{Year: y, Month: time.Month(m), Day: d}
}

// TestToday_UsesLocalCalendarDate verifies that the time of day and the
// location of "now" are honored when picking today's date.
func TestToday_UsesLocalCalendarDate(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 23:30 UTC on June 14th is already June 15th in Tokyo.
	now := time.Date(2025, 6, 14, 23, 30, 0, 0, time.UTC).In(tokyo)

	assert.Equal(t, date(2025, 6, 15), Today(now))
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		name            string
		year, month, dy int
		want            bool
	}{
		{"Regular day", 1990, 5, 15, true},
		{"Leap day in leap year", 2024, 2, 29, true},
		{"Leap day in century leap year", 2000, 2, 29, true},
		{"Leap day in common year", 2023, 2, 29, false},
		{"Leap day in century common year", 1900, 2, 29, false},
		{"February 30th", 2024, 2, 30, false},
		{"31st of a 30-day month", 2021, 4, 31, false},
		{"31st of a 31-day month", 2021, 7, 31, true},
		{"Day zero", 2021, 7, 0, false},
		{"Month zero", 2021, 0, 1, false},
		{"Month thirteen", 2021, 13, 1, false},
		{"Year zero", 0, 1, 1, false},
		{"Year one", 1, 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDate(tt.year, tt.month, tt.dy))
		})
	}
}

func TestCompareDates(t *testing.T) {
	assert.Equal(t, 0, CompareDates(date(2020, 1, 1), date(2020, 1, 1)))
	assert.Equal(t, -1, CompareDates(date(2019, 12, 31), date(2020, 1, 1)))
	assert.Equal(t, 1, CompareDates(date(2020, 2, 1), date(2020, 1, 31)))
	assert.Equal(t, -1, CompareDates(date(2020, 1, 30), date(2020, 1, 31)))
}

// TestSubMonths_ClampsToMonthEnd checks the end-of-month rule: the day never
// overflows into the following month.
func TestSubMonths_ClampsToMonthEnd(t *testing.T) {
	tests := []struct {
		name string
		from Date
		n    int
		want Date
	}{
		{"Zero months", date(2025, 3, 31), 0, date(2025, 3, 31)},
		{"Same day exists", date(2025, 6, 15), 1, date(2025, 5, 15)},
		{"31 March to February, common year", date(2025, 3, 31), 1, date(2025, 2, 28)},
		{"31 March to February, leap year", date(2024, 3, 31), 1, date(2024, 2, 29)},
		{"31 May to April", date(2025, 5, 31), 1, date(2025, 4, 30)},
		{"Across the year boundary", date(2025, 1, 15), 1, date(2024, 12, 15)},
		{"Several years back", date(2025, 1, 31), 25, date(2022, 12, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubMonths(tt.from, tt.n))
		})
	}
}

func TestSubYears_LeapDay(t *testing.T) {
	assert.Equal(t, date(2023, 2, 28), SubYears(date(2024, 2, 29), 1))
	assert.Equal(t, date(2020, 2, 29), SubYears(date(2024, 2, 29), 4))
	assert.Equal(t, date(1990, 10, 18), SubYears(date(2026, 10, 18), 36))
}

func TestSubDays(t *testing.T) {
	assert.Equal(t, date(2024, 2, 29), SubDays(date(2024, 3, 1), 1))
	assert.Equal(t, date(2024, 12, 31), SubDays(date(2025, 1, 1), 1))
	assert.Equal(t, date(2025, 1, 1), SubDays(date(2025, 1, 1), 0))
}

func TestWholeYearsBetween(t *testing.T) {
	tests := []struct {
		name           string
		later, earlier Date
		want           int
	}{
		{"Same date", date(2025, 6, 15), date(2025, 6, 15), 0},
		{"Earlier after later", date(2025, 6, 15), date(2025, 6, 16), 0},
		{"Anniversary reached", date(2025, 6, 15), date(1990, 6, 15), 35},
		{"Day before anniversary", date(2025, 6, 14), date(1990, 6, 15), 34},
		{"Leapling on 28 February of a common year", date(2025, 2, 28), date(2024, 2, 29), 0},
		{"Leapling on 1 March of a common year", date(2025, 3, 1), date(2024, 2, 29), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WholeYearsBetween(tt.later, tt.earlier))
		})
	}
}

func TestWholeMonthsBetween(t *testing.T) {
	tests := []struct {
		name           string
		later, earlier Date
		want           int
	}{
		{"Same date", date(2025, 6, 15), date(2025, 6, 15), 0},
		{"Less than a month", date(2025, 6, 14), date(2025, 5, 15), 0},
		{"Exactly one month", date(2025, 6, 15), date(2025, 5, 15), 1},
		{"Month end to shorter month", date(2025, 3, 31), date(2025, 2, 28), 1},
		{"Month end after a longer month", date(2025, 4, 30), date(2025, 3, 31), 0},
		{"Across years", date(2025, 1, 10), date(2023, 11, 20), 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WholeMonthsBetween(tt.later, tt.earlier))
		})
	}
}

func TestWholeDaysBetween(t *testing.T) {
	assert.Equal(t, 0, WholeDaysBetween(date(2025, 6, 15), date(2025, 6, 15)))
	assert.Equal(t, 0, WholeDaysBetween(date(2025, 6, 14), date(2025, 6, 15)))
	assert.Equal(t, 1, WholeDaysBetween(date(2024, 3, 1), date(2024, 2, 29)))
	assert.Equal(t, 366, WholeDaysBetween(date(2025, 1, 1), date(2024, 1, 1)))
	// Far apart dates must not overflow.
	assert.Equal(t, 730119, WholeDaysBetween(date(2000, 1, 1), date(1, 1, 1)))
}
