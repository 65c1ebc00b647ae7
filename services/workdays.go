// Package services provides the cost and pricing calculations for seminar quotes.
package services

import (
	"math"
	"time"
)

// DayCount holds the derived day figures for a quote's date range.
type DayCount struct {
	CalendarDays int
	Workdays     int
}

// WeekdayLabels lists the recognized active-workday labels in week order.
var WeekdayLabels = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DefaultWorkdays returns the standard Monday-Friday working week, used when
// a quote is created before the user has picked active weekdays.
func DefaultWorkdays() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
}

// CountProgramDays derives calendar days and workdays from a quote's date
// range and active-weekday set.
//
// Calendar days are inclusive of both endpoints. A missing arrival or
// departure date yields zero days, and a departure before the arrival is
// clamped to zero so downstream per-day math never sees a negative count.
//
// The workday figure is a proportional estimate, not a day-by-day weekday
// scan: calendarDays / 7 × workdaysPerWeek, rounded half away from zero.
// For ranges not aligned to whole weeks this diverges from an exact scan;
// that estimate is the contract the rest of the pricing engine relies on.
func CountProgramDays(arrival, departure time.Time, activeWorkdays []string) DayCount {
	if arrival.IsZero() || departure.IsZero() {
		return DayCount{}
	}

	calendarDays := int(departure.Sub(arrival).Hours()/24) + 1
	if calendarDays < 0 {
		calendarDays = 0
	}

	perWeek := countUniqueWeekdays(activeWorkdays)
	workdays := int(math.Round(float64(calendarDays) / 7 * float64(perWeek)))

	return DayCount{CalendarDays: calendarDays, Workdays: workdays}
}

// countUniqueWeekdays counts distinct recognized labels, so a duplicated or
// misspelled label coming from stored JSON cannot inflate the weekly density
// past 7.
func countUniqueWeekdays(labels []string) int {
	seen := make(map[string]bool, len(labels))
	for _, label := range labels {
		if isWeekdayLabel(label) {
			seen[label] = true
		}
	}
	return len(seen)
}

func isWeekdayLabel(label string) bool {
	for _, known := range WeekdayLabels {
		if label == known {
			return true
		}
	}
	return false
}
