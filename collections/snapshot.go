package collections

import (
	"github.com/pocketbase/pocketbase/core"

	"seminarops/services"
)

// breakdownJSON is the stored shape of the quote's breakdown snapshot.
type breakdownJSON struct {
	Services []breakdownLine `json:"services"`
	Staff    []breakdownLine `json:"staff"`
	Other    []breakdownLine `json:"other"`
}

type breakdownLine struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// SnapshotSummary writes a computed summary onto a quote record's snapshot
// fields. The record still has to be saved by the caller. Once stored, the
// snapshot is the historical record: the share view and deal aggregation
// read it back instead of re-running the engine.
func SnapshotSummary(quote *core.Record, sum services.QuoteSummary) {
	quote.Set("calendar_days", sum.CalendarDays)
	quote.Set("workdays", sum.Workdays)
	quote.Set("base_cost", sum.BaseCost)
	quote.Set("total_internal_cost", sum.TotalInternalCost)
	quote.Set("cost_per_participant", sum.CostPerParticipant)
	quote.Set("net_profit", sum.NetProfit)
	quote.Set("profit_margin", sum.ProfitMarginPercent)
	quote.Set("breakdown", breakdownJSON{
		Services: toBreakdownLines(sum.ServiceBreakdown),
		Staff:    toBreakdownLines(sum.StaffBreakdown),
		Other:    toBreakdownLines(sum.OtherCostsBreakdown),
	})
}

// ReadSnapshot reconstructs a QuoteSummary from a quote record's stored
// snapshot fields.
func ReadSnapshot(quote *core.Record) services.QuoteSummary {
	var stored breakdownJSON
	// A quote saved before its first summary has no breakdown; an empty
	// snapshot is fine.
	_ = quote.UnmarshalJSONField("breakdown", &stored)

	return services.QuoteSummary{
		CalendarDays:              quote.GetInt("calendar_days"),
		Workdays:                  quote.GetInt("workdays"),
		ServiceBreakdown:          toCostLines(stored.Services),
		StaffBreakdown:            toCostLines(stored.Staff),
		OtherCostsBreakdown:       toCostLines(stored.Other),
		BaseCost:                  quote.GetFloat("base_cost"),
		TotalInternalCost:         quote.GetFloat("total_internal_cost"),
		CostPerParticipant:        quote.GetFloat("cost_per_participant"),
		ManualPricePerParticipant: quote.GetFloat("manual_price"),
		NetProfit:                 quote.GetFloat("net_profit"),
		ProfitMarginPercent:       quote.GetFloat("profit_margin"),
	}
}

func toBreakdownLines(lines []services.CostLine) []breakdownLine {
	out := make([]breakdownLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, breakdownLine{Name: l.Name, Cost: l.Cost})
	}
	return out
}

func toCostLines(lines []breakdownLine) []services.CostLine {
	var out []services.CostLine
	for _, l := range lines {
		out = append(out, services.CostLine{Name: l.Name, Cost: l.Cost})
	}
	return out
}
