// Package recurring materializes concrete transactions from recurring
// templates: it decides which templates are due on a given calendar date,
// checks for an already existing transaction and creates the new one.
package recurring

import (
	"time"

	"github.com/Q1justin/Moayo/internal/models"
	"github.com/Q1justin/Moayo/internal/types"
)

// occurrence returns the n-th occurrence date of a schedule anchored at
// start, with occurrence 0 being the start date itself.
//
// Computing every occurrence from the anchor instead of stepping from the
// previous occurrence keeps the day of month stable: a monthly schedule
// starting on Jan 31 occurs on the 31st of every month, clamped to the last
// day of shorter months (Feb 28/29), not stuck on the 28th forever.
func occurrence(start types.Date, frequency models.Frequency, n int) types.Date {
	switch frequency {
	case models.FrequencyDaily:
		return start.AddDays(n)
	case models.FrequencyWeekly:
		return start.AddDays(7 * n)
	case models.FrequencyBiweekly:
		return start.AddDays(14 * n)
	case models.FrequencyMonthly:
		return addMonths(start, n)
	case models.FrequencyQuarterly:
		return addMonths(start, 3*n)
	case models.FrequencyAnnually:
		return addYears(start, n)
	}

	return types.Date{}
}

// addMonths adds calendar months to a date, clamping the day to the last day
// of the target month.
func addMonths(date types.Date, months int) types.Date {
	year, month, day := date.Date()

	total := int(month) - 1 + months
	year += total / 12
	month = time.Month(total%12 + 1)

	if last := daysInMonth(year, month); day > last {
		day = last
	}

	return types.NewDate(year, month, day)
}

// addYears adds calendar years to a date. Feb 29 clamps to Feb 28 in
// non-leap years.
func addYears(date types.Date, years int) types.Date {
	year, month, day := date.Date()
	year += years

	if last := daysInMonth(year, month); day > last {
		day = last
	}

	return types.NewDate(year, month, day)
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// NextOccurrence returns the first occurrence date of a schedule anchored at
// start that is strictly after the given date.
func NextOccurrence(start types.Date, frequency models.Frequency, after types.Date) types.Date {
	occ := start
	for n := 1; !occ.After(after); n++ {
		occ = occurrence(start, frequency, n)
	}

	return occ
}

// IsDue reports whether today is an occurrence date of the template.
//
// It fails closed: before the start date, after the end date (when set) and
// for unknown frequencies the template is never due. Walking the occurrences
// from the start date is O(elapsed occurrences), which is fine for schedules
// that run for months or years.
func IsDue(template models.RecurringTemplate, today types.Date) bool {
	if !template.Frequency.Valid() {
		return false
	}

	if today.Before(template.StartDate) {
		return false
	}

	if template.EndDate != nil && today.After(*template.EndDate) {
		return false
	}

	occ := template.StartDate
	for n := 1; occ.Before(today); n++ {
		occ = occurrence(template.StartDate, template.Frequency, n)
	}

	return occ.Equal(today)
}
