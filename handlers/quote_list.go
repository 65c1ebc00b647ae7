package handlers

import (
	"log"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"seminarops/collections"
	"seminarops/services"
	"seminarops/templates"
)

// HandleQuoteList returns a handler that renders the quotes index, scoped to
// the active company when one is selected.
func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotesCol, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("quote_list: could not find quotes collection: %v", err)
			return e.String(500, "Internal error")
		}

		filter := ""
		params := map[string]any{}
		if company := GetActiveCompany(e.Request); company != nil {
			filter = "company = {:companyId}"
			params["companyId"] = company.ID
		}

		records, err := app.FindRecordsByFilter(quotesCol, filter, "-updated", 0, 0, params)
		if err != nil {
			log.Printf("quote_list: could not query quotes: %v", err)
			return e.String(500, "Internal error")
		}

		var items []templates.QuoteListItem
		for _, rec := range records {
			updatedDate := "—"
			if dt := rec.GetDateTime("updated"); !dt.IsZero() {
				updatedDate = dt.Time().Format("02 Jan 2006")
			}

			clientName := ""
			if clientID := rec.GetString("client"); clientID != "" {
				if client, err := app.FindRecordById("clients", clientID); err == nil {
					clientName = client.GetString("name")
				}
			}
			campusName := ""
			if campusID := rec.GetString("campus"); campusID != "" {
				if campus, err := app.FindRecordById("campuses", campusID); err == nil {
					campusName = campus.GetString("name")
				}
			}

			snapshot := collections.ReadSnapshot(rec)
			items = append(items, templates.QuoteListItem{
				ID:            rec.Id,
				Name:          rec.GetString("name"),
				ClientName:    clientName,
				CampusName:    campusName,
				Participants:  int(rec.GetFloat("participant_count")),
				TotalInternal: services.FormatMoney(services.CurrencyAED, snapshot.TotalInternalCost),
				UpdatedDate:   updatedDate,
			})
		}

		data := templates.QuoteListData{Items: items}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.QuoteListContent(data)
		} else {
			component = templates.QuoteListPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
