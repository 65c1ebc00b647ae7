package handlers

import (
	"log"
	"net/url"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"seminarops/collections"
	"seminarops/services"
	"seminarops/templates"
)

// HandleQuoteShare returns a handler for the client-facing share view. All
// figures come from the stored snapshot; nothing is recomputed here, so the
// page always matches what was last saved.
//
// Query params: currency (AED, USD, EUR), rate to override the preview
// conversion rate for that currency, and view=internal to include the cost
// breakdown and margin.
func HandleQuoteShare(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(400, "Missing quote ID")
		}

		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("quote_share: quote %s not found: %v", quoteID, err)
			return e.String(404, "Quote not found")
		}

		query := e.Request.URL.Query()
		currency := query.Get("currency")
		switch currency {
		case services.CurrencyUSD, services.CurrencyEUR:
		default:
			currency = services.CurrencyAED
		}
		internal := query.Get("view") == "internal"

		snapshot := collections.ReadSnapshot(quote)

		// The agreed rate on a deal rarely matches the editor's fixed
		// preview table, so the URL may carry its own AED-per-unit rate.
		// AED stays identity regardless.
		rate := services.PreviewRate(currency)
		rateOverride := ""
		if currency != services.CurrencyAED {
			if v, err := strconv.ParseFloat(query.Get("rate"), 64); err == nil && v > 0 {
				rate = v
				rateOverride = query.Get("rate")
			}
		}

		money := func(amountAED float64) string {
			return services.FormatMoney(currency, services.ConvertFromAED(amountAED, rate))
		}

		participants := int(quote.GetFloat("participant_count"))
		sellingTotalAED := snapshot.ManualPricePerParticipant * float64(participants)

		data := templates.ShareData{
			QuoteID:          quoteID,
			QuoteName:        quote.GetString("name"),
			ParticipantCount: participants,
			CalendarDays:     snapshot.CalendarDays,
			Workdays:         snapshot.Workdays,
			Currency:         currency,
			ShowBreakdown:    internal,
			CustomRate:       rateOverride,

			TotalInternalCost:   money(snapshot.TotalInternalCost),
			CostPerParticipant:  money(snapshot.CostPerParticipant),
			SellingPricePerHead: money(snapshot.ManualPricePerParticipant),
			SellingPriceTotal:   money(sellingTotalAED),
			NetProfit:           money(snapshot.NetProfit),
			MarginPercent:       formatPercent(snapshot.ProfitMarginPercent),
		}

		if companyID := quote.GetString("company"); companyID != "" {
			if company, err := app.FindRecordById("companies", companyID); err == nil {
				data.CompanyName = company.GetString("name")
			}
		}
		if clientID := quote.GetString("client"); clientID != "" {
			if client, err := app.FindRecordById("clients", clientID); err == nil {
				data.ClientName = client.GetString("name")
			}
		}
		if campusID := quote.GetString("campus"); campusID != "" {
			if campus, err := app.FindRecordById("campuses", campusID); err == nil {
				data.CampusName = campus.GetString("name")
			}
		}
		if dt := quote.GetDateTime("arrival_date"); !dt.IsZero() {
			data.ArrivalDate = dt.Time().Format("02 Jan 2006")
		}
		if dt := quote.GetDateTime("departure_date"); !dt.IsZero() {
			data.DepartureDate = dt.Time().Format("02 Jan 2006")
		}

		if internal {
			addLine := func(dst *[]templates.SummaryLine, lines []services.CostLine) {
				for _, line := range lines {
					*dst = append(*dst, templates.SummaryLine{Name: line.Name, Cost: money(line.Cost)})
				}
			}
			addLine(&data.ServiceLines, snapshot.ServiceBreakdown)
			addLine(&data.StaffLines, snapshot.StaffBreakdown)
			addLine(&data.OtherLines, snapshot.OtherCostsBreakdown)
		}

		// EUR payments by bank transfer carry a surcharge on the converted
		// program total.
		if currency == services.CurrencyEUR {
			converted := services.ConvertFromAED(sellingTotalAED, rate)
			withSurcharge := services.EURWithBankSurcharge(converted)
			data.SurchargeApplied = true
			data.SurchargeLabel = "Bank Transfer Surcharge (3%)"
			data.SurchargeAmount = services.FormatMoney(currency, withSurcharge-converted)
			data.TotalWithSurcharge = services.FormatMoney(currency, withSurcharge)
		}

		base := "/quotes/" + quoteID + "/share?currency="
		suffix := ""
		if rateOverride != "" {
			suffix += "&rate=" + url.QueryEscape(rateOverride)
		}
		if internal {
			suffix += "&view=internal"
		}
		for _, cur := range []string{services.CurrencyAED, services.CurrencyUSD, services.CurrencyEUR} {
			data.CurrencyLinks = append(data.CurrencyLinks, templates.CurrencyLink{
				Label:  cur,
				URL:    base + cur + suffix,
				Active: cur == currency,
			})
		}

		return templates.SharePage(data).Render(e.Request.Context(), e.Response)
	}
}
