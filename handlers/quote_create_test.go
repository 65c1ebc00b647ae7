package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"

	"seminarops/templates"
	"seminarops/testhelpers"
)

// withActiveCompany puts a company in the request context the way the
// middleware would.
func withActiveCompany(req *http.Request, id, name string) *http.Request {
	company := &templates.ActiveCompany{ID: id, Name: name}
	ctx := context.WithValue(req.Context(), ActiveCompanyKey, company)
	ctx = context.WithValue(ctx, HeaderDataKey, templates.HeaderData{ActiveCompany: company})
	return req.WithContext(ctx)
}

func postForm(app *pocketbase.PocketBase, target string, form url.Values) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	return req, rec
}

func TestHandleQuoteCreateForm_Renders(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleQuoteCreateForm(app)
	req := httptest.NewRequest(http.MethodGet, "/quotes/create", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "New Seminar Quote", `name="name"`)
}

func TestHandleQuoteCreate_InitializesServiceLines(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Quote Co")
	campus := testhelpers.CreateTestCampus(t, app, "Marina Campus", "Dubai")

	testhelpers.CreateTestCatalogService(t, app, 1, "Accommodation", "per_night", 200, true, nil)
	testhelpers.CreateTestCatalogService(t, app, 2, "Airport Transfer", "one_off", 150, false,
		map[string]float64{campus.Id: 90})
	testhelpers.CreateTestStaff(t, app, "R. Costa", "coordinator", 280)

	form := url.Values{}
	form.Set("name", "Autumn Program")
	form.Set("campus", campus.Id)

	req, rec := postForm(app, "/quotes", form)
	req = withActiveCompany(req, company.Id, "Quote Co")

	handler := HandleQuoteCreate(app)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	quotesCol, _ := app.FindCollectionByNameOrId("quotes")
	quotes, err := app.FindRecordsByFilter(quotesCol, "name = 'Autumn Program'", "", 0, 0, nil)
	if err != nil || len(quotes) != 1 {
		t.Fatalf("expected one created quote, got %d (err %v)", len(quotes), err)
	}
	quote := quotes[0]

	if quote.GetString("company") != company.Id {
		t.Errorf("expected quote attached to active company")
	}

	servicesCol, _ := app.FindCollectionByNameOrId("quote_services")
	lines, _ := app.FindRecordsByFilter(servicesCol, "quote = {:q}", "sort_order", 0, 0, map[string]any{"q": quote.Id})
	if len(lines) != 2 {
		t.Fatalf("expected 2 service lines, got %d", len(lines))
	}

	// Default service starts enabled, optional does not
	if !lines[0].GetBool("enabled") || !lines[0].GetBool("is_default") {
		t.Error("expected default service enabled")
	}
	if lines[1].GetBool("enabled") {
		t.Error("expected optional service disabled")
	}

	// Campus override should win over the default cost
	if got := lines[1].GetFloat("cost_price"); got != 90 {
		t.Errorf("expected campus-resolved cost 90, got %v", got)
	}

	// Directory coordinators copied, disabled, rate frozen
	coordsCol, _ := app.FindCollectionByNameOrId("quote_coordinators")
	coords, _ := app.FindRecordsByFilter(coordsCol, "quote = {:q}", "sort_order", 0, 0, map[string]any{"q": quote.Id})
	if len(coords) != 1 {
		t.Fatalf("expected 1 coordinator line, got %d", len(coords))
	}
	if coords[0].GetBool("enabled") {
		t.Error("expected coordinator line disabled by default")
	}
	if got := coords[0].GetFloat("daily_rate"); got != 280 {
		t.Errorf("expected frozen daily rate 280, got %v", got)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/quotes/"+quote.Id+"/edit")
}

func TestHandleQuoteCreate_RequiresName(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{}
	req, rec := postForm(app, "/quotes", form)

	handler := HandleQuoteCreate(app)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
