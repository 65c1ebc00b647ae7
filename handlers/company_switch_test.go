package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"seminarops/testhelpers"
)

func TestHandleCompanyActivate_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Activate Me")

	handler := HandleCompanyActivate(app)

	req := httptest.NewRequest(http.MethodPost, "/companies/"+company.Id+"/activate", nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", company.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/quotes")

	// Check cookie was set
	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "active_company" && c.Value == company.Id {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected active_company cookie to be set")
	}
}

func TestHandleCompanyActivate_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleCompanyActivate(app)

	req := httptest.NewRequest(http.MethodPost, "/companies/nonexistent/activate", nil)
	req.SetPathValue("id", "nonexistent")
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != 404 {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleCompanyDeactivate_ClearsCookie(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleCompanyDeactivate(app)

	req := httptest.NewRequest(http.MethodPost, "/companies/deactivate", nil)
	req.Header.Set("HX-Request", "true")
	req.AddCookie(&http.Cookie{Name: "active_company", Value: "whatever"})
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	for _, c := range rec.Result().Cookies() {
		if c.Name == "active_company" && c.MaxAge >= 0 {
			t.Error("expected active_company cookie to be expired")
		}
	}
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/quotes")
}
