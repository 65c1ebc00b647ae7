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

// HandleDealList returns a handler that renders the deals index. Deal value
// is the sum of the attached quotes' stored internal cost snapshots.
func HandleDealList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		dealsCol, err := app.FindCollectionByNameOrId("deals")
		if err != nil {
			log.Printf("deal_list: could not find deals collection: %v", err)
			return e.String(500, "Internal error")
		}
		quotesCol, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("deal_list: could not find quotes collection: %v", err)
			return e.String(500, "Internal error")
		}

		filter := ""
		params := map[string]any{}
		if company := GetActiveCompany(e.Request); company != nil {
			filter = "company = {:companyId}"
			params["companyId"] = company.ID
		}

		records, err := app.FindRecordsByFilter(dealsCol, filter, "-updated", 0, 0, params)
		if err != nil {
			log.Printf("deal_list: could not query deals: %v", err)
			return e.String(500, "Internal error")
		}

		var items []templates.DealListItem
		for _, rec := range records {
			quotes, err := app.FindRecordsByFilter(quotesCol, "deal = {:dealId}", "-updated", 0, 0, map[string]any{"dealId": rec.Id})
			if err != nil {
				log.Printf("deal_list: could not query quotes for deal %s: %v", rec.Id, err)
				quotes = nil
			}

			var dealValue float64
			for _, quote := range quotes {
				dealValue += collections.ReadSnapshot(quote).TotalInternalCost
			}

			clientName := ""
			if clientID := rec.GetString("client"); clientID != "" {
				if client, err := app.FindRecordById("clients", clientID); err == nil {
					clientName = client.GetString("name")
				}
			}

			items = append(items, templates.DealListItem{
				ID:         rec.Id,
				Name:       rec.GetString("name"),
				ClientName: clientName,
				Status:     rec.GetString("status"),
				QuoteCount: len(quotes),
				DealValue:  services.FormatMoney(services.CurrencyAED, dealValue),
			})
		}

		data := templates.DealListData{Items: items}
		return templates.DealListPage(data, GetHeaderData(e.Request)).Render(e.Request.Context(), e.Response)
	}
}

// HandleDealCreate returns a handler that creates a deal under the active
// company and redirects back to the deals index.
func HandleDealCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(400, "Invalid form data")
		}

		name := e.Request.FormValue("name")
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Deal name is required")
		}

		dealsCol, err := app.FindCollectionByNameOrId("deals")
		if err != nil {
			log.Printf("deal_create: could not find deals collection: %v", err)
			return e.String(500, "Internal error")
		}

		rec := core.NewRecord(dealsCol)
		rec.Set("name", name)
		rec.Set("status", "open")
		if company := GetActiveCompany(e.Request); company != nil {
			rec.Set("company", company.ID)
		}

		if err := app.Save(rec); err != nil {
			log.Printf("deal_create: error saving deal: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to create deal")
		}

		SetToast(e, "success", "Deal created")
		e.Response.Header().Set("HX-Redirect", "/deals")
		if e.Request.Header.Get("HX-Request") != "true" {
			return e.Redirect(http.StatusSeeOther, "/deals")
		}
		return e.String(200, "OK")
	}
}
