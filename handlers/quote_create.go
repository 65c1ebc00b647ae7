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

// clientOptions lists the clients of the active company for a select box.
func clientOptions(app *pocketbase.PocketBase, r *http.Request, selected string) []templates.Option {
	clientsCol, err := app.FindCollectionByNameOrId("clients")
	if err != nil {
		return nil
	}

	filter := ""
	params := map[string]any{}
	if company := GetActiveCompany(r); company != nil {
		filter = "company = {:companyId}"
		params["companyId"] = company.ID
	}

	records, err := app.FindRecordsByFilter(clientsCol, filter, "name", 0, 0, params)
	if err != nil {
		log.Printf("quote_create: could not query clients: %v", err)
		return nil
	}

	var opts []templates.Option
	for _, rec := range records {
		opts = append(opts, templates.Option{
			Value:    rec.Id,
			Label:    rec.GetString("name"),
			Selected: rec.Id == selected,
		})
	}
	return opts
}

// campusOptions lists all campuses for a select box.
func campusOptions(app *pocketbase.PocketBase, selected string) []templates.Option {
	campusesCol, err := app.FindCollectionByNameOrId("campuses")
	if err != nil {
		return nil
	}
	records, err := app.FindAllRecords(campusesCol)
	if err != nil {
		log.Printf("quote_create: could not query campuses: %v", err)
		return nil
	}

	var opts []templates.Option
	for _, rec := range records {
		opts = append(opts, templates.Option{
			Value:    rec.Id,
			Label:    rec.GetString("name"),
			Selected: rec.Id == selected,
		})
	}
	return opts
}

// HandleQuoteCreateForm returns a handler that renders the new quote form.
func HandleQuoteCreateForm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.QuoteEditData{
			ClientOptions: clientOptions(app, e.Request, ""),
			CampusOptions: campusOptions(app, ""),
		}
		return templates.QuoteCreatePage(data, GetHeaderData(e.Request)).Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteCreate returns a handler that creates a quote and initializes
// its service lines from the catalog and its coordinator lines from the
// staff directory, then redirects to the editor.
func HandleQuoteCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(400, "Invalid form data")
		}

		name := e.Request.FormValue("name")
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Quote name is required")
		}

		quotesCol, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("quote_create: could not find quotes collection: %v", err)
			return e.String(500, "Internal error")
		}

		campusID := e.Request.FormValue("campus")

		quote := core.NewRecord(quotesCol)
		quote.Set("name", name)
		quote.Set("client", e.Request.FormValue("client"))
		quote.Set("campus", campusID)
		quote.Set("participant_count", 10)
		quote.Set("teaching_hours", 6)
		quote.Set("active_workdays", services.DefaultWorkdays())
		if company := GetActiveCompany(e.Request); company != nil {
			quote.Set("company", company.ID)
		}

		if err := app.Save(quote); err != nil {
			log.Printf("quote_create: error saving quote: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to create quote")
		}

		if err := initQuoteServices(app, quote.Id, campusID); err != nil {
			log.Printf("quote_create: error initializing services: %v", err)
		}
		if err := initQuoteCoordinators(app, quote.Id); err != nil {
			log.Printf("quote_create: error initializing coordinators: %v", err)
		}

		// Store the initial snapshot so list and deal views have figures
		// before the first edit.
		if bundle, err := loadQuoteBundle(app, quote.Id); err == nil {
			collections.SnapshotSummary(bundle.Quote, services.ComputeSummary(buildQuoteInput(bundle)))
			if err := app.Save(bundle.Quote); err != nil {
				log.Printf("quote_create: error saving snapshot: %v", err)
			}
		}

		SetToast(e, "success", "Quote created")
		e.Response.Header().Set("HX-Redirect", "/quotes/"+quote.Id+"/edit")
		if e.Request.Header.Get("HX-Request") != "true" {
			return e.Redirect(http.StatusSeeOther, "/quotes/"+quote.Id+"/edit")
		}
		return e.String(200, "OK")
	}
}

// initQuoteServices copies the service catalog onto a fresh quote, resolving
// each cost against the chosen campus. Default services start enabled.
func initQuoteServices(app *pocketbase.PocketBase, quoteID, campusID string) error {
	catalogCol, err := app.FindCollectionByNameOrId("service_catalog")
	if err != nil {
		return err
	}
	quoteServicesCol, err := app.FindCollectionByNameOrId("quote_services")
	if err != nil {
		return err
	}

	catalog, err := app.FindRecordsByFilter(catalogCol, "", "sort_order", 0, 0, nil)
	if err != nil {
		return err
	}

	for i, svc := range catalog {
		var campusCosts map[string]float64
		if err := svc.UnmarshalJSONField("campus_costs", &campusCosts); err != nil {
			log.Printf("quote_create: bad campus_costs on service %s: %v", svc.Id, err)
		}
		cost := services.ResolveCampusCost(campusCosts, campusID, svc.GetFloat("default_cost"))

		rec := core.NewRecord(quoteServicesCol)
		rec.Set("quote", quoteID)
		rec.Set("service", svc.Id)
		rec.Set("sort_order", i+1)
		rec.Set("name", svc.GetString("name"))
		rec.Set("description", svc.GetString("description"))
		rec.Set("time_basis", svc.GetString("time_basis"))
		rec.Set("cost_price", cost)
		rec.Set("is_default", svc.GetBool("is_default"))
		rec.Set("enabled", svc.GetBool("is_default"))
		rec.Set("participant_override", 0)
		if err := app.Save(rec); err != nil {
			return err
		}
	}
	return nil
}

// initQuoteCoordinators copies every coordinator from the staff directory
// onto the quote, disabled, with the directory rate frozen at copy time.
func initQuoteCoordinators(app *pocketbase.PocketBase, quoteID string) error {
	staffCol, err := app.FindCollectionByNameOrId("staff")
	if err != nil {
		return err
	}
	quoteCoordsCol, err := app.FindCollectionByNameOrId("quote_coordinators")
	if err != nil {
		return err
	}

	coords, err := app.FindRecordsByFilter(staffCol, "role = 'coordinator'", "name", 0, 0, nil)
	if err != nil {
		return err
	}

	for i, staff := range coords {
		rec := core.NewRecord(quoteCoordsCol)
		rec.Set("quote", quoteID)
		rec.Set("staff", staff.Id)
		rec.Set("sort_order", i+1)
		rec.Set("name", staff.GetString("name"))
		rec.Set("daily_rate", staff.GetFloat("daily_rate"))
		rec.Set("enabled", false)
		if err := app.Save(rec); err != nil {
			return err
		}
	}
	return nil
}
