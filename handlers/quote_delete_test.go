package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"seminarops/testhelpers"
)

func TestHandleQuoteDelete_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Delete Co")
	quote := testhelpers.CreateTestQuote(t, app, company.Id, "", "Delete This Quote")

	handler := HandleQuoteDelete(app)
	req := httptest.NewRequest(http.MethodDelete, "/quotes/"+quote.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/quotes")
	if _, err := app.FindRecordById("quotes", quote.Id); err == nil {
		t.Error("expected quote to be deleted")
	}
}

func TestHandleQuoteDelete_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleQuoteDelete(app)
	req := httptest.NewRequest(http.MethodDelete, "/quotes/nonexistent", nil)
	req.SetPathValue("id", "nonexistent")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleQuoteDelete_CascadeLines(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Cascade Co")
	quote := testhelpers.CreateTestQuote(t, app, company.Id, "", "Cascade Quote")
	svc := testhelpers.CreateTestQuoteService(t, app, quote.Id, 1, "Lunch", "per_day", 50, true, false)
	teacher := testhelpers.CreateTestQuoteTeacher(t, app, quote.Id, 1, "A. Teacher", 100)
	coord := testhelpers.CreateTestQuoteCoordinator(t, app, quote.Id, 1, "B. Coordinator", 250, true)
	other := testhelpers.CreateTestOtherCost(t, app, quote.Id, 1, "Insurance", 300)

	handler := HandleQuoteDelete(app)
	req := httptest.NewRequest(http.MethodDelete, "/quotes/"+quote.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// All line records cascade with the quote relation
	if _, err := app.FindRecordById("quote_services", svc.Id); err == nil {
		t.Error("expected service line to be cascade deleted")
	}
	if _, err := app.FindRecordById("quote_teachers", teacher.Id); err == nil {
		t.Error("expected teacher line to be cascade deleted")
	}
	if _, err := app.FindRecordById("quote_coordinators", coord.Id); err == nil {
		t.Error("expected coordinator line to be cascade deleted")
	}
	if _, err := app.FindRecordById("quote_other_costs", other.Id); err == nil {
		t.Error("expected other cost line to be cascade deleted")
	}
}
