package handlers

import (
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"seminarops/testhelpers"
)

// fullQuote builds a quote with one line of every kind. The program runs
// 2026-03-01 to 2026-03-07 over Mon-Fri with 10 participants and 6 teaching
// hours per workday.
func fullQuote(t *testing.T, app *pocketbase.PocketBase) (*core.Record, url.Values) {
	t.Helper()

	company := testhelpers.CreateTestCompany(t, app, "Edit Co")
	client := testhelpers.CreateTestClient(t, app, company.Id, "Edit Client")
	quote := testhelpers.CreateTestQuote(t, app, company.Id, client.Id, "Edit Me")

	svc := testhelpers.CreateTestQuoteService(t, app, quote.Id, 1, "Lunch", "per_day", 50, true, false)
	teacher := testhelpers.CreateTestQuoteTeacher(t, app, quote.Id, 1, "A. Teacher", 100)
	coord := testhelpers.CreateTestQuoteCoordinator(t, app, quote.Id, 1, "B. Coordinator", 250, true)
	other := testhelpers.CreateTestOtherCost(t, app, quote.Id, 1, "Venue Insurance", 300)

	form := url.Values{}
	form.Set("name", "Edit Me")
	form.Set("client", client.Id)
	form.Set("arrival_date", "2026-03-01")
	form.Set("departure_date", "2026-03-07")
	form.Set("participant_count", "10")
	form.Set("teaching_hours", "6")
	form.Set("manual_price", "900")
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"} {
		form.Add("active_workdays", day)
	}
	form.Set("svc_enabled_"+svc.Id, "on")
	form.Set("teacher_rate_"+teacher.Id, "100")
	form.Set("coord_enabled_"+coord.Id, "on")
	form.Set("coord_rate_"+coord.Id, "250")
	form.Set("other_name_"+other.Id, "Venue Insurance")
	form.Set("other_amount_"+other.Id, "300")

	return quote, form
}

func TestHandleQuoteEdit_RendersAllSections(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote, _ := fullQuote(t, app)

	handler := HandleQuoteEdit(app)
	req := httptest.NewRequest(http.MethodGet, "/quotes/"+quote.Id+"/edit", nil)
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Edit Me", "Lunch", "A. Teacher", "B. Coordinator", "Venue Insurance",
		"Cost Summary", "summary-panel")
}

func TestHandleQuoteEdit_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleQuoteEdit(app)
	req := httptest.NewRequest(http.MethodGet, "/quotes/nope/edit", nil)
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != 404 {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleQuoteSave_SnapshotsSummary(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote, form := fullQuote(t, app)

	req, rec := postForm(app, "/quotes/"+quote.Id+"/save", form)
	req.SetPathValue("id", quote.Id)

	handler := HandleQuoteSave(app)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	saved, err := app.FindRecordById("quotes", quote.Id)
	if err != nil {
		t.Fatalf("quote not found after save: %v", err)
	}

	// 7 calendar days over a Mon-Fri week give 5 workdays.
	// Lunch 50*7*10 + teacher 100*6*5 + coordinator 250*5 = 7750 base,
	// plus 300 insurance = 8050 total.
	if got := saved.GetFloat("calendar_days"); got != 7 {
		t.Errorf("expected 7 calendar days, got %v", got)
	}
	if got := saved.GetFloat("workdays"); got != 5 {
		t.Errorf("expected 5 workdays, got %v", got)
	}
	if got := saved.GetFloat("base_cost"); math.Abs(got-7750) > 0.001 {
		t.Errorf("expected base cost 7750, got %v", got)
	}
	if got := saved.GetFloat("total_internal_cost"); math.Abs(got-8050) > 0.001 {
		t.Errorf("expected total cost 8050, got %v", got)
	}
	if got := saved.GetFloat("cost_per_participant"); math.Abs(got-805) > 0.001 {
		t.Errorf("expected cost per participant 805, got %v", got)
	}
	if got := saved.GetFloat("net_profit"); math.Abs(got-950) > 0.001 {
		t.Errorf("expected net profit 950, got %v", got)
	}
}

func TestHandleQuoteSave_DisablingCoordinatorDropsCost(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote, form := fullQuote(t, app)

	// The checkbox is simply absent when unchecked.
	for key := range form {
		if strings.HasPrefix(key, "coord_enabled_") {
			form.Del(key)
		}
	}

	req, rec := postForm(app, "/quotes/"+quote.Id+"/save", form)
	req.SetPathValue("id", quote.Id)

	handler := HandleQuoteSave(app)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	saved, _ := app.FindRecordById("quotes", quote.Id)
	if got := saved.GetFloat("total_internal_cost"); math.Abs(got-6800) > 0.001 {
		t.Errorf("expected total cost 6800 without coordinator, got %v", got)
	}
}

func TestHandleQuoteSave_ValidationErrors(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote, form := fullQuote(t, app)

	form.Set("name", "")
	form.Set("arrival_date", "2026-03-07")
	form.Set("departure_date", "2026-03-01")

	req, rec := postForm(app, "/quotes/"+quote.Id+"/save", form)
	req.SetPathValue("id", quote.Id)

	handler := HandleQuoteSave(app)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Name is required", "Departure cannot be before arrival")

	// Nothing was persisted
	saved, _ := app.FindRecordById("quotes", quote.Id)
	if saved.GetString("name") != "Edit Me" {
		t.Errorf("expected name unchanged, got %q", saved.GetString("name"))
	}
}

func TestHandleQuoteSummary_DoesNotPersist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote, form := fullQuote(t, app)

	// Bump the price only in the live form
	form.Set("manual_price", "1200")

	req, rec := postForm(app, "/quotes/"+quote.Id+"/summary", form)
	req.SetPathValue("id", quote.Id)

	handler := HandleQuoteSummary(app)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// Fragment reflects the posted price
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "summary-panel", "AED 1,200")

	// Record does not
	saved, _ := app.FindRecordById("quotes", quote.Id)
	if got := saved.GetFloat("manual_price"); got == 1200 {
		t.Error("expected manual price not to be persisted by the summary endpoint")
	}
}

func TestHandleQuoteSummary_OverrideScalesOptionalService(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote, form := fullQuote(t, app)

	servicesCol, _ := app.FindCollectionByNameOrId("quote_services")
	lines, _ := app.FindRecordsByFilter(servicesCol, "quote = {:q}", "sort_order", 0, 0, map[string]any{"q": quote.Id})
	if len(lines) != 1 {
		t.Fatalf("expected 1 service line, got %d", len(lines))
	}

	// Only 4 of the 10 participants take lunch
	form.Set("svc_override_"+lines[0].Id, "4")

	req, rec := postForm(app, "/quotes/"+quote.Id+"/summary", form)
	req.SetPathValue("id", quote.Id)

	handler := HandleQuoteSummary(app)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// Lunch 50*7*4 = 1400
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "AED 1,400")
}
