package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"seminarops/services"
	"seminarops/templates"
)

// quoteBundle holds a quote record with all of its line records, in the
// stable sort_order the calculator and templates both rely on.
type quoteBundle struct {
	Quote        *core.Record
	Services     []*core.Record
	Teachers     []*core.Record
	Coordinators []*core.Record
	OtherCosts   []*core.Record
}

// loadQuoteBundle fetches the quote and all attached line records.
func loadQuoteBundle(app *pocketbase.PocketBase, quoteID string) (*quoteBundle, error) {
	quote, err := app.FindRecordById("quotes", quoteID)
	if err != nil {
		return nil, fmt.Errorf("quote not found: %w", err)
	}

	bundle := &quoteBundle{Quote: quote}

	lineCollections := []struct {
		name string
		dst  *[]*core.Record
	}{
		{"quote_services", &bundle.Services},
		{"quote_teachers", &bundle.Teachers},
		{"quote_coordinators", &bundle.Coordinators},
		{"quote_other_costs", &bundle.OtherCosts},
	}
	for _, lc := range lineCollections {
		col, err := app.FindCollectionByNameOrId(lc.name)
		if err != nil {
			return nil, fmt.Errorf("collection %s: %w", lc.name, err)
		}
		records, err := app.FindRecordsByFilter(col, "quote = {:quoteId}", "sort_order", 0, 0, map[string]any{"quoteId": quoteID})
		if err != nil {
			log.Printf("quote: could not query %s for quote %s: %v", lc.name, quoteID, err)
			records = nil
		}
		*lc.dst = records
	}

	return bundle, nil
}

// buildQuoteInput assembles the calculator input from the bundle's records.
func buildQuoteInput(b *quoteBundle) services.QuoteInput {
	in := services.QuoteInput{
		ArrivalDate:               b.Quote.GetDateTime("arrival_date").Time(),
		DepartureDate:             b.Quote.GetDateTime("departure_date").Time(),
		ParticipantCount:          int(b.Quote.GetFloat("participant_count")),
		StandardTeachingHours:     b.Quote.GetFloat("teaching_hours"),
		ManualPricePerParticipant: b.Quote.GetFloat("manual_price"),
	}

	var days []string
	if err := b.Quote.UnmarshalJSONField("active_workdays", &days); err != nil {
		log.Printf("quote: bad active_workdays on %s: %v", b.Quote.Id, err)
	}
	in.ActiveWorkdays = days

	for _, rec := range b.Services {
		svc := services.ServiceInput{
			ServiceID: rec.Id,
			Name:      rec.GetString("name"),
			TimeBasis: services.TimeBasis(rec.GetString("time_basis")),
			CostPrice: rec.GetFloat("cost_price"),
			Enabled:   rec.GetBool("enabled"),
			IsDefault: rec.GetBool("is_default"),
		}
		// 0 means no override
		if n := int(rec.GetFloat("participant_override")); n > 0 {
			svc.ParticipantOverride = &n
		}
		in.Services = append(in.Services, svc)
	}

	for _, rec := range b.Teachers {
		in.Teachers = append(in.Teachers, services.TeacherInput{
			Name:       rec.GetString("name"),
			HourlyRate: rec.GetFloat("hourly_rate"),
		})
	}

	for _, rec := range b.Coordinators {
		in.Coordinators = append(in.Coordinators, services.CoordinatorInput{
			Name:      rec.GetString("name"),
			DailyRate: rec.GetFloat("daily_rate"),
			Enabled:   rec.GetBool("enabled"),
		})
	}

	for _, rec := range b.OtherCosts {
		in.OtherCosts = append(in.OtherCosts, services.CostLine{
			Name: rec.GetString("name"),
			Cost: rec.GetFloat("amount"),
		})
	}

	return in
}

// applyQuoteForm writes the editor's form values onto the bundle's records
// without saving them. Absent checkbox fields read as unchecked, so the whole
// form must always be posted.
func applyQuoteForm(r *http.Request, b *quoteBundle) {
	form := r.Form

	if name := r.FormValue("name"); name != "" {
		b.Quote.Set("name", name)
	}
	b.Quote.Set("client", r.FormValue("client"))
	b.Quote.Set("campus", r.FormValue("campus"))
	b.Quote.Set("deal", r.FormValue("deal"))
	b.Quote.Set("arrival_date", r.FormValue("arrival_date"))
	b.Quote.Set("departure_date", r.FormValue("departure_date"))
	b.Quote.Set("notes", r.FormValue("notes"))

	if n, err := strconv.Atoi(r.FormValue("participant_count")); err == nil && n > 0 {
		b.Quote.Set("participant_count", n)
	}
	if h, err := strconv.ParseFloat(r.FormValue("teaching_hours"), 64); err == nil && h >= 0 {
		b.Quote.Set("teaching_hours", h)
	}
	if p, err := strconv.ParseFloat(r.FormValue("manual_price"), 64); err == nil && p >= 0 {
		b.Quote.Set("manual_price", p)
	}

	days := form["active_workdays"]
	if days == nil {
		days = []string{}
	}
	b.Quote.Set("active_workdays", days)

	for _, rec := range b.Services {
		if rec.GetBool("is_default") {
			// defaults stay enabled with no override
			rec.Set("enabled", true)
			continue
		}
		rec.Set("enabled", r.FormValue("svc_enabled_"+rec.Id) == "on")
		if n, err := strconv.Atoi(r.FormValue("svc_override_" + rec.Id)); err == nil && n >= 0 {
			rec.Set("participant_override", n)
		} else {
			rec.Set("participant_override", 0)
		}
	}

	for _, rec := range b.Teachers {
		if rate, err := strconv.ParseFloat(r.FormValue("teacher_rate_"+rec.Id), 64); err == nil && rate >= 0 {
			rec.Set("hourly_rate", rate)
		}
	}

	for _, rec := range b.Coordinators {
		rec.Set("enabled", r.FormValue("coord_enabled_"+rec.Id) == "on")
		if rate, err := strconv.ParseFloat(r.FormValue("coord_rate_"+rec.Id), 64); err == nil && rate >= 0 {
			rec.Set("daily_rate", rate)
		}
	}

	for _, rec := range b.OtherCosts {
		if name := r.FormValue("other_name_" + rec.Id); name != "" {
			rec.Set("name", name)
		}
		if amount, err := strconv.ParseFloat(r.FormValue("other_amount_"+rec.Id), 64); err == nil && amount >= 0 {
			rec.Set("amount", amount)
		}
	}
}

// buildSummaryData formats a computed summary for the editor's live panel.
func buildSummaryData(quoteID string, sum services.QuoteSummary) templates.SummaryData {
	data := templates.SummaryData{
		QuoteID:            quoteID,
		CalendarDays:       sum.CalendarDays,
		Workdays:           sum.Workdays,
		BaseCost:           services.FormatMoney(services.CurrencyAED, sum.BaseCost),
		TotalInternalCost:  services.FormatMoney(services.CurrencyAED, sum.TotalInternalCost),
		CostPerParticipant: services.FormatMoney(services.CurrencyAED, sum.CostPerParticipant),
		SellingPrice:       services.FormatMoney(services.CurrencyAED, sum.ManualPricePerParticipant),
		NetProfit:          services.FormatMoney(services.CurrencyAED, sum.NetProfit),
		MarginPercent:      fmt.Sprintf("%.1f%%", sum.ProfitMarginPercent),
		ProfitPositive:     sum.NetProfit >= 0,
	}

	for _, line := range sum.ServiceBreakdown {
		data.ServiceLines = append(data.ServiceLines, templates.SummaryLine{
			Name: line.Name,
			Cost: services.FormatMoney(services.CurrencyAED, line.Cost),
		})
	}
	for _, line := range sum.StaffBreakdown {
		data.StaffLines = append(data.StaffLines, templates.SummaryLine{
			Name: line.Name,
			Cost: services.FormatMoney(services.CurrencyAED, line.Cost),
		})
	}
	for _, line := range sum.OtherCostsBreakdown {
		data.OtherLines = append(data.OtherLines, templates.SummaryLine{
			Name: line.Name,
			Cost: services.FormatMoney(services.CurrencyAED, line.Cost),
		})
	}

	// USD preview of the total helps when quoting international clients.
	rate := services.PreviewRate(services.CurrencyUSD)
	data.PreviewCurrency = services.CurrencyUSD
	data.PreviewTotal = services.FormatMoney(services.CurrencyUSD, services.ConvertFromAED(sum.TotalInternalCost, rate))
	data.PreviewPerHead = services.FormatMoney(services.CurrencyUSD, services.ConvertFromAED(sum.CostPerParticipant, rate))

	return data
}
