package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"seminarops/collections"
	"seminarops/services"
	"seminarops/templates"
)

// HandleDealView returns a handler that renders a deal with its quotes and
// the aggregate figures read from each quote's snapshot.
func HandleDealView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		dealID := e.Request.PathValue("id")
		if dealID == "" {
			return e.String(400, "Missing deal ID")
		}

		deal, err := app.FindRecordById("deals", dealID)
		if err != nil {
			return e.String(404, "Deal not found")
		}

		quotesCol, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("deal_view: could not find quotes collection: %v", err)
			return e.String(500, "Internal error")
		}
		quotes, err := app.FindRecordsByFilter(quotesCol, "deal = {:dealId}", "-updated", 0, 0, map[string]any{"dealId": dealID})
		if err != nil {
			log.Printf("deal_view: could not query quotes for deal %s: %v", dealID, err)
			quotes = nil
		}

		var rows []templates.DealQuoteRow
		var dealValue, dealProfit float64
		for _, quote := range quotes {
			snapshot := collections.ReadSnapshot(quote)
			participants := int(quote.GetFloat("participant_count"))
			sellingTotal := snapshot.ManualPricePerParticipant * float64(participants)

			dealValue += snapshot.TotalInternalCost
			dealProfit += snapshot.NetProfit

			rows = append(rows, templates.DealQuoteRow{
				ID:           quote.Id,
				Name:         quote.GetString("name"),
				Participants: participants,
				InternalCost: services.FormatMoney(services.CurrencyAED, snapshot.TotalInternalCost),
				SellingTotal: services.FormatMoney(services.CurrencyAED, sellingTotal),
				NetProfit:    services.FormatMoney(services.CurrencyAED, snapshot.NetProfit),
			})
		}

		clientName := ""
		if clientID := deal.GetString("client"); clientID != "" {
			if client, err := app.FindRecordById("clients", clientID); err == nil {
				clientName = client.GetString("name")
			}
		}

		data := templates.DealViewData{
			ID:         deal.Id,
			Name:       deal.GetString("name"),
			ClientName: clientName,
			Status:     deal.GetString("status"),
			Quotes:     rows,
			DealValue:  services.FormatMoney(services.CurrencyAED, dealValue),
			DealProfit: services.FormatMoney(services.CurrencyAED, dealProfit),
		}
		return templates.DealViewPage(data, GetHeaderData(e.Request)).Render(e.Request.Context(), e.Response)
	}
}

// HandleDealStatus returns a handler that updates a deal's pipeline status.
func HandleDealStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		dealID := e.Request.PathValue("id")
		if dealID == "" {
			return e.String(400, "Missing deal ID")
		}

		if err := e.Request.ParseForm(); err != nil {
			return e.String(400, "Invalid form data")
		}

		status := e.Request.FormValue("status")
		switch status {
		case "open", "won", "lost":
		default:
			return ErrorToast(e, http.StatusBadRequest, "Unknown deal status")
		}

		deal, err := app.FindRecordById("deals", dealID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Deal not found")
		}

		deal.Set("status", status)
		if err := app.Save(deal); err != nil {
			log.Printf("deal_status: error saving deal %s: %v", dealID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to update deal")
		}

		SetToast(e, "success", "Deal updated")
		e.Response.Header().Set("HX-Redirect", "/deals/"+dealID)
		if e.Request.Header.Get("HX-Request") != "true" {
			return e.Redirect(http.StatusSeeOther, "/deals/"+dealID)
		}
		return e.String(200, "OK")
	}
}
