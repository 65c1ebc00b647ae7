package services

import "time"

// QuoteInput is the full set of raw quote fields the pricing engine reads.
// The editor rebuilds it from form state on every input change and the
// summary is recomputed from scratch; the engine keeps no state between
// calls.
//
// Rates and counts are assumed sanitized and non-negative by the form
// layer; behavior on negative input is undefined.
type QuoteInput struct {
	ArrivalDate               time.Time
	DepartureDate             time.Time
	ParticipantCount          int
	ActiveWorkdays            []string
	StandardTeachingHours     float64
	Teachers                  []TeacherInput
	Coordinators              []CoordinatorInput
	Services                  []ServiceInput
	OtherCosts                []CostLine
	ManualPricePerParticipant float64
}

// QuoteSummary is the derived cost and profitability picture for a quote.
// It is snapshotted onto the quote record on save; downstream consumers
// (share view, deal aggregation) read the stored figures and never
// recompute them.
type QuoteSummary struct {
	CalendarDays              int
	Workdays                  int
	ServiceBreakdown          []CostLine
	StaffBreakdown            []CostLine
	OtherCostsBreakdown       []CostLine
	BaseCost                  float64
	TotalInternalCost         float64
	CostPerParticipant        float64
	ManualPricePerParticipant float64
	NetProfit                 float64
	ProfitMarginPercent       float64
}

// ComputeSummary derives a QuoteSummary from raw quote state. It is a pure
// function, defined for every input: missing dates produce zero days, and
// every division is guarded so a zero participant count or unpriced quote
// yields zeros instead of a fault.
func ComputeSummary(in QuoteInput) QuoteSummary {
	days := CountProgramDays(in.ArrivalDate, in.DepartureDate, in.ActiveWorkdays)

	serviceBreakdown, serviceTotal := CalcServiceCosts(in.Services, in.ParticipantCount, days)
	staffBreakdown, staffTotal := CalcStaffCosts(in.Teachers, in.Coordinators, in.StandardTeachingHours, days.Workdays)

	var otherTotal float64
	for _, line := range in.OtherCosts {
		otherTotal += line.Cost
	}

	baseCost := serviceTotal + staffTotal
	totalCost := baseCost + otherTotal

	var costPerParticipant float64
	if in.ParticipantCount > 0 {
		costPerParticipant = totalCost / float64(in.ParticipantCount)
	}

	netProfit := in.ManualPricePerParticipant*float64(in.ParticipantCount) - totalCost

	var marginPercent float64
	if in.ManualPricePerParticipant > 0 {
		marginPercent = (in.ManualPricePerParticipant - costPerParticipant) / in.ManualPricePerParticipant * 100
	}

	return QuoteSummary{
		CalendarDays:              days.CalendarDays,
		Workdays:                  days.Workdays,
		ServiceBreakdown:          serviceBreakdown,
		StaffBreakdown:            staffBreakdown,
		OtherCostsBreakdown:       in.OtherCosts,
		BaseCost:                  baseCost,
		TotalInternalCost:         totalCost,
		CostPerParticipant:        costPerParticipant,
		ManualPricePerParticipant: in.ManualPricePerParticipant,
		NetProfit:                 netProfit,
		ProfitMarginPercent:       marginPercent,
	}
}
