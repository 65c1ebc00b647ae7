package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"seminarops/templates"
)

// HandleClientList returns a handler that renders the clients index for the
// active company.
func HandleClientList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientsCol, err := app.FindCollectionByNameOrId("clients")
		if err != nil {
			log.Printf("client_list: could not find clients collection: %v", err)
			return e.String(500, "Internal error")
		}
		quotesCol, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("client_list: could not find quotes collection: %v", err)
			return e.String(500, "Internal error")
		}

		filter := ""
		params := map[string]any{}
		if company := GetActiveCompany(e.Request); company != nil {
			filter = "company = {:companyId}"
			params["companyId"] = company.ID
		}

		records, err := app.FindRecordsByFilter(clientsCol, filter, "name", 0, 0, params)
		if err != nil {
			log.Printf("client_list: could not query clients: %v", err)
			return e.String(500, "Internal error")
		}

		var items []templates.ClientListItem
		for _, rec := range records {
			quotes, err := app.FindRecordsByFilter(quotesCol, "client = {:clientId}", "", 0, 0, map[string]any{"clientId": rec.Id})
			if err != nil {
				quotes = nil
			}
			items = append(items, templates.ClientListItem{
				ID:         rec.Id,
				Name:       rec.GetString("name"),
				Email:      rec.GetString("email"),
				Phone:      rec.GetString("phone"),
				QuoteCount: len(quotes),
			})
		}

		data := templates.ClientListData{Items: items}
		return templates.ClientListPage(data, GetHeaderData(e.Request)).Render(e.Request.Context(), e.Response)
	}
}

// HandleClientCreate returns a handler that creates a client under the
// active company.
func HandleClientCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(400, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Client name is required")
		}

		clientsCol, err := app.FindCollectionByNameOrId("clients")
		if err != nil {
			log.Printf("client_create: could not find clients collection: %v", err)
			return e.String(500, "Internal error")
		}

		rec := core.NewRecord(clientsCol)
		rec.Set("name", name)
		rec.Set("email", e.Request.FormValue("email"))
		rec.Set("phone", e.Request.FormValue("phone"))
		if company := GetActiveCompany(e.Request); company != nil {
			rec.Set("company", company.ID)
		}

		if err := app.Save(rec); err != nil {
			log.Printf("client_create: error saving client: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to create client")
		}

		SetToast(e, "success", "Client created")
		e.Response.Header().Set("HX-Redirect", "/clients")
		if e.Request.Header.Get("HX-Request") != "true" {
			return e.Redirect(http.StatusSeeOther, "/clients")
		}
		return e.String(200, "OK")
	}
}

// HandleClientDelete returns a handler that deletes a client. Quotes keep
// their snapshot figures; the relation just empties.
func HandleClientDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := e.Request.PathValue("id")
		if clientID == "" {
			return e.String(400, "Missing client ID")
		}

		rec, err := app.FindRecordById("clients", clientID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Client not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("client_delete: error deleting client %s: %v", clientID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to delete client")
		}

		SetToast(e, "success", "Client deleted")
		e.Response.Header().Set("HX-Redirect", "/clients")
		return e.String(200, "OK")
	}
}
