package engine

import "time"

// AgeResult is the elapsed time between a date of birth and today,
// decomposed into whole years, then whole months, then days.
type AgeResult struct {
	Years  int
	Months int
	Days   int
}

// Calculate decomposes the time elapsed from birth to the calendar date of
// now. Whole years are removed first, then whole months from the remainder,
// and the days left over are counted last:
//
//	years  = WholeYearsBetween(today, birth)
//	months = WholeMonthsBetween(today - years, birth)
//	days   = WholeDaysBetween(today - years - months, birth)
//
// birth must be a real calendar date. A birth date after today yields the
// zero AgeResult.
func Calculate(birth Date, now time.Time) AgeResult {
	today := Today(now)
	if CompareDates(birth, today) > 0 {
		return AgeResult{}
	}

	years := WholeYearsBetween(today, birth)
	afterYears := SubYears(today, years)

	months := WholeMonthsBetween(afterYears, birth)
	afterMonths := SubMonths(afterYears, months)

	return AgeResult{
		Years:  years,
		Months: months,
		Days:   WholeDaysBetween(afterMonths, birth),
	}
}
