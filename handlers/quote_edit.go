package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"seminarops/collections"
	"seminarops/services"
	"seminarops/templates"
)

// timeBasisLabels maps the stored basis values to editor display text.
var timeBasisLabels = map[string]string{
	"one_off":     "one-off",
	"per_day":     "per day",
	"per_night":   "per night",
	"per_workday": "per workday",
}

// dealOptions lists the active company's deals for the editor select box.
func dealOptions(app *pocketbase.PocketBase, r *http.Request, selected string) []templates.Option {
	dealsCol, err := app.FindCollectionByNameOrId("deals")
	if err != nil {
		return nil
	}

	filter := ""
	params := map[string]any{}
	if company := GetActiveCompany(r); company != nil {
		filter = "company = {:companyId}"
		params["companyId"] = company.ID
	}

	records, err := app.FindRecordsByFilter(dealsCol, filter, "name", 0, 0, params)
	if err != nil {
		log.Printf("quote_edit: could not query deals: %v", err)
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

// unassignedTeacherOptions lists directory teachers not yet on the quote.
func unassignedTeacherOptions(app *pocketbase.PocketBase, b *quoteBundle) []templates.Option {
	staffCol, err := app.FindCollectionByNameOrId("staff")
	if err != nil {
		return nil
	}
	records, err := app.FindRecordsByFilter(staffCol, "role = 'teacher'", "name", 0, 0, nil)
	if err != nil {
		log.Printf("quote_edit: could not query staff: %v", err)
		return nil
	}

	assigned := map[string]bool{}
	for _, rec := range b.Teachers {
		assigned[rec.GetString("staff")] = true
	}

	var opts []templates.Option
	for _, rec := range records {
		if assigned[rec.Id] {
			continue
		}
		opts = append(opts, templates.Option{Value: rec.Id, Label: rec.GetString("name")})
	}
	return opts
}

// buildQuoteEditData assembles the full editor page data from a bundle.
func buildQuoteEditData(app *pocketbase.PocketBase, r *http.Request, b *quoteBundle) templates.QuoteEditData {
	quote := b.Quote

	participantCount := int(quote.GetFloat("participant_count"))

	data := templates.QuoteEditData{
		ID:               quote.Id,
		Name:             quote.GetString("name"),
		Notes:            quote.GetString("notes"),
		ParticipantCount: participantCount,
		TeachingHours:    quote.GetFloat("teaching_hours"),
		ManualPrice:      quote.GetFloat("manual_price"),
		ClientOptions:    clientOptions(app, r, quote.GetString("client")),
		CampusOptions:    campusOptions(app, quote.GetString("campus")),
		DealOptions:      dealOptions(app, r, quote.GetString("deal")),
		StaffOptions:     unassignedTeacherOptions(app, b),
		ActiveWorkdays:   map[string]bool{},
	}

	if dt := quote.GetDateTime("arrival_date"); !dt.IsZero() {
		data.ArrivalDate = dt.Time().Format("2006-01-02")
	}
	if dt := quote.GetDateTime("departure_date"); !dt.IsZero() {
		data.DepartureDate = dt.Time().Format("2006-01-02")
	}

	var days []string
	if err := quote.UnmarshalJSONField("active_workdays", &days); err == nil {
		for _, day := range days {
			data.ActiveWorkdays[day] = true
		}
	}

	for _, rec := range b.Services {
		override := int(rec.GetFloat("participant_override"))
		data.Services = append(data.Services, templates.QuoteServiceRow{
			ID:                  rec.Id,
			Name:                rec.GetString("name"),
			Description:         rec.GetString("description"),
			TimeBasisLabel:      timeBasisLabels[rec.GetString("time_basis")],
			CostPrice:           services.FormatMoney(services.CurrencyAED, rec.GetFloat("cost_price")),
			Enabled:             rec.GetBool("enabled"),
			IsDefault:           rec.GetBool("is_default"),
			ParticipantOverride: override,
			OverrideExceeds:     override > participantCount,
		})
	}

	for _, rec := range b.Teachers {
		data.Teachers = append(data.Teachers, templates.QuoteTeacherRow{
			ID:         rec.Id,
			Name:       rec.GetString("name"),
			HourlyRate: rec.GetFloat("hourly_rate"),
		})
	}

	for _, rec := range b.Coordinators {
		data.Coordinators = append(data.Coordinators, templates.QuoteCoordinatorRow{
			ID:        rec.Id,
			Name:      rec.GetString("name"),
			DailyRate: rec.GetFloat("daily_rate"),
			Enabled:   rec.GetBool("enabled"),
		})
	}

	for _, rec := range b.OtherCosts {
		data.OtherCosts = append(data.OtherCosts, templates.OtherCostRow{
			ID:     rec.Id,
			Name:   rec.GetString("name"),
			Amount: rec.GetFloat("amount"),
		})
	}

	data.Summary = buildSummaryData(quote.Id, services.ComputeSummary(buildQuoteInput(b)))

	return data
}

// HandleQuoteEdit returns a handler that renders the quote editor.
func HandleQuoteEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(400, "Missing quote ID")
		}

		bundle, err := loadQuoteBundle(app, quoteID)
		if err != nil {
			log.Printf("quote_edit: %v", err)
			return e.String(404, "Quote not found")
		}

		data := buildQuoteEditData(app, e.Request, bundle)
		return templates.QuoteEditPage(data, GetHeaderData(e.Request)).Render(e.Request.Context(), e.Response)
	}
}

// validateQuoteForm collects field errors without blocking save of the rest.
func validateQuoteForm(r *http.Request) map[string]string {
	errors := map[string]string{}

	if strings.TrimSpace(r.FormValue("name")) == "" {
		errors["name"] = "Name is required"
	}

	arrival := r.FormValue("arrival_date")
	departure := r.FormValue("departure_date")
	if arrival != "" && departure != "" && departure < arrival {
		errors["departure_date"] = "Departure cannot be before arrival"
	}

	return errors
}

// HandleQuoteSave returns a handler that persists the full editor form,
// recomputes the cost summary, and snapshots it onto the quote record.
func HandleQuoteSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(400, "Missing quote ID")
		}

		if err := e.Request.ParseForm(); err != nil {
			return e.String(400, "Invalid form data")
		}

		bundle, err := loadQuoteBundle(app, quoteID)
		if err != nil {
			log.Printf("quote_save: %v", err)
			return e.String(404, "Quote not found")
		}

		if errs := validateQuoteForm(e.Request); len(errs) > 0 {
			data := buildQuoteEditData(app, e.Request, bundle)
			data.Errors = errs
			e.Response.WriteHeader(http.StatusUnprocessableEntity)
			return templates.QuoteEditPage(data, GetHeaderData(e.Request)).Render(e.Request.Context(), e.Response)
		}

		applyQuoteForm(e.Request, bundle)

		// Campus change re-resolves each service line's cost against the
		// new campus. Lines the user repriced by override keep their toggle
		// state; only the unit cost follows the campus.
		if campusID := e.Request.FormValue("campus"); campusID != bundle.Quote.Original().GetString("campus") {
			repriceQuoteServices(app, bundle, campusID)
		}

		sum := services.ComputeSummary(buildQuoteInput(bundle))
		collections.SnapshotSummary(bundle.Quote, sum)

		for _, group := range [][]*core.Record{bundle.Services, bundle.Teachers, bundle.Coordinators, bundle.OtherCosts} {
			for _, rec := range group {
				if err := app.Save(rec); err != nil {
					log.Printf("quote_save: error saving line %s: %v", rec.Id, err)
				}
			}
		}
		if err := app.Save(bundle.Quote); err != nil {
			log.Printf("quote_save: error saving quote %s: %v", quoteID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to save quote")
		}

		SetToast(e, "success", "Quote saved")
		e.Response.Header().Set("HX-Redirect", "/quotes/"+quoteID+"/edit")
		if e.Request.Header.Get("HX-Request") != "true" {
			return e.Redirect(http.StatusSeeOther, "/quotes/"+quoteID+"/edit")
		}
		return e.String(200, "OK")
	}
}

// repriceQuoteServices re-resolves each service line cost for a new campus.
func repriceQuoteServices(app *pocketbase.PocketBase, b *quoteBundle, campusID string) {
	for _, rec := range b.Services {
		catalogID := rec.GetString("service")
		if catalogID == "" {
			continue
		}
		svc, err := app.FindRecordById("service_catalog", catalogID)
		if err != nil {
			log.Printf("quote_save: catalog service %s not found: %v", catalogID, err)
			continue
		}
		var campusCosts map[string]float64
		if err := svc.UnmarshalJSONField("campus_costs", &campusCosts); err != nil {
			log.Printf("quote_save: bad campus_costs on service %s: %v", svc.Id, err)
		}
		rec.Set("cost_price", services.ResolveCampusCost(campusCosts, campusID, svc.GetFloat("default_cost")))
	}
}

// HandleQuoteSummary returns a handler for the editor's live summary panel.
// It computes from the posted form state without persisting anything.
func HandleQuoteSummary(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(400, "Missing quote ID")
		}

		if err := e.Request.ParseForm(); err != nil {
			return e.String(400, "Invalid form data")
		}

		bundle, err := loadQuoteBundle(app, quoteID)
		if err != nil {
			log.Printf("quote_summary: %v", err)
			return e.String(404, "Quote not found")
		}

		applyQuoteForm(e.Request, bundle)
		if campusID := e.Request.FormValue("campus"); campusID != bundle.Quote.Original().GetString("campus") {
			repriceQuoteServices(app, bundle, campusID)
		}

		sum := services.ComputeSummary(buildQuoteInput(bundle))
		data := buildSummaryData(quoteID, sum)
		return templates.QuoteSummarySection(data).Render(e.Request.Context(), e.Response)
	}
}

// formatPercent is shared by summary and share rendering.
func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
