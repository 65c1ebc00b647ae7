package services

// TimeBasis describes how a catalog service's unit cost scales with the
// length and shape of the seminar program. The values match the
// service_catalog collection's select field.
type TimeBasis string

const (
	BasisOneOff     TimeBasis = "one_off"
	BasisPerDay     TimeBasis = "per_day"
	BasisPerNight   TimeBasis = "per_night"
	BasisPerWorkday TimeBasis = "per_workday"
)

// ProrationMultiplier returns the time multiplier for a cost item. Nights
// are calendar days minus one, floored at zero for same-day programs. An
// unknown basis behaves like a one-off so a bad stored value still prices
// the item once rather than dropping it silently.
func ProrationMultiplier(basis TimeBasis, days DayCount) float64 {
	switch basis {
	case BasisPerDay:
		return float64(days.CalendarDays)
	case BasisPerNight:
		nights := days.CalendarDays - 1
		if nights < 0 {
			nights = 0
		}
		return float64(nights)
	case BasisPerWorkday:
		return float64(days.Workdays)
	default:
		return 1
	}
}

// ProrateCost scales a unit price by its time basis. Participant scaling is
// applied separately by the service aggregator; the two multipliers are
// orthogonal and applied in sequence.
func ProrateCost(unitPrice float64, basis TimeBasis, days DayCount) float64 {
	return unitPrice * ProrationMultiplier(basis, days)
}
