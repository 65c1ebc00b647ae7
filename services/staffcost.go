package services

// TeacherInput is one teacher assignment on a quote. The hourly rate is
// always entered manually on the quote and defaults to zero until priced.
type TeacherInput struct {
	Name       string
	HourlyRate float64
}

// CoordinatorInput is one coordinator assignment on a quote. The daily rate
// is copied from the staff directory at assignment time and frozen on the
// quote afterwards.
type CoordinatorInput struct {
	Name      string
	DailyRate float64
	Enabled   bool
}

// CalcStaffCosts computes the staffing breakdown and total.
//
// Teachers cost hourlyRate × teachingHours × workdays; teaching hours are
// delivered per workday, not per calendar day. A zero-rate teacher still
// appears in the breakdown as an unpriced placeholder. Disabled
// coordinators are excluded from both the sum and the breakdown; enabled
// ones cost dailyRate × workdays.
func CalcStaffCosts(teachers []TeacherInput, coordinators []CoordinatorInput, teachingHours float64, workdays int) ([]CostLine, float64) {
	var breakdown []CostLine
	var total float64

	for _, tch := range teachers {
		cost := tch.HourlyRate * teachingHours * float64(workdays)
		breakdown = append(breakdown, CostLine{Name: tch.Name, Cost: cost})
		total += cost
	}

	for _, coord := range coordinators {
		if !coord.Enabled {
			continue
		}
		cost := coord.DailyRate * float64(workdays)
		breakdown = append(breakdown, CostLine{Name: coord.Name, Cost: cost})
		total += cost
	}

	return breakdown, total
}
