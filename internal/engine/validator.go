package engine

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tartampluch/go-age/internal/config"
)

// Validate checks the three raw fields and returns the resulting error set.
//
// Every check runs on every call and writes its field's error as a flat
// overwrite, so the last failing check on a field decides its message:
//
//  1. each field must be non-empty
//  2. day must not exceed 31, month must not exceed 12
//  3. year must not be after the current year of now, and must be at least
//     four characters long
//  4. day/month/year, read day first, must name a real calendar date;
//     otherwise the day field reports an invalid date
//
// The returned date is only meaningful when ok is true, which requires the
// error set to be empty.
func Validate(in DateInput, now time.Time) (FieldErrors, Date, bool) {
	var errs FieldErrors

	// 1. Required
	if in.Day == "" {
		errs.Day = newFieldError(config.CodeRequired)
	}
	if in.Month == "" {
		errs.Month = newFieldError(config.CodeRequired)
	}
	if in.Year == "" {
		errs.Year = newFieldError(config.CodeRequired)
	}

	// 2. Range sanity
	if v, ok := numericValue(in.Day); ok && v > config.MaxDayValue {
		errs.Day = newFieldError(config.CodeInvalidDay)
	}
	if v, ok := numericValue(in.Month); ok && v > config.MaxMonthValue {
		errs.Month = newFieldError(config.CodeInvalidMonth)
	}

	// 3. Year plausibility
	if v, ok := numericValue(in.Year); ok && v > float64(now.Year()) {
		errs.Year = newFieldError(config.CodeFutureYear)
	}
	// An empty year stays "required".
	if in.Year != "" && utf8.RuneCountInString(in.Year) < config.YearMinLength {
		errs.Year = newFieldError(config.CodeInvalidYear)
	}

	// 4. Composite validity
	date, parsed := ParseDayFirst(in.Day, in.Month, in.Year)
	if !parsed && errs.Day.Code != config.CodeRequired {
		errs.Day = newFieldError(config.CodeInvalidDate)
	}

	if !parsed || errs.Any() {
		return errs, Date{}, false
	}
	return errs, date, true
}

// ParseDayFirst assembles the fields as DD/MM/YYYY and parses the result.
// Day and month take one or two ASCII digits, the year one to four; the
// assembled date must exist in the calendar.
func ParseDayFirst(day, month, year string) (Date, bool) {
	raw := strings.Join([]string{day, month, year}, config.DateSeparator)
	parts := strings.Split(raw, config.DateSeparator)
	if len(parts) != 3 {
		return Date{}, false
	}

	d, ok := parseDigits(parts[0], config.DayMaxDigits)
	if !ok {
		return Date{}, false
	}
	m, ok := parseDigits(parts[1], config.MonthMaxDigits)
	if !ok {
		return Date{}, false
	}
	y, ok := parseDigits(parts[2], config.YearMaxDigits)
	if !ok {
		return Date{}, false
	}

	if !IsValidDate(y, m, d) {
		return Date{}, false
	}
	return Date{Year: y, Month: time.Month(m), Day: d}, true
}

// parseDigits accepts between 1 and maxDigits ASCII digits and nothing else.
func parseDigits(s string, maxDigits int) (int, bool) {
	if s == "" || len(s) > maxDigits {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// numericValue coerces a raw field to a number the way a loose numeric
// conversion does: surrounding blanks are ignored and an empty field is 0.
// ok is false when the text is not a number at all.
func numericValue(s string) (float64, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if errors.Is(err, strconv.ErrRange) {
		// Overflow saturates to ±Inf, which still compares as a number.
		return v, true
	}
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
