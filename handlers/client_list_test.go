package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"seminarops/testhelpers"
)

func TestHandleClientList_ScopedToActiveCompany(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	companyA := testhelpers.CreateTestCompany(t, app, "Brand A")
	companyB := testhelpers.CreateTestCompany(t, app, "Brand B")
	testhelpers.CreateTestClient(t, app, companyA.Id, "Client of A")
	testhelpers.CreateTestClient(t, app, companyB.Id, "Client of B")

	handler := HandleClientList(app)
	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req = withActiveCompany(req, companyA.Id, "Brand A")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Client of A")
	testhelpers.AssertHTMLNotContains(t, rec.Body.String(), "Client of B")
}

func TestHandleClientCreate_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Brand A")

	form := url.Values{}
	form.Set("name", "Fresh Client")
	form.Set("email", "fresh@example.com")

	req, rec := postForm(app, "/clients", form)
	req = withActiveCompany(req, company.Id, "Brand A")

	if err := HandleClientCreate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	clientsCol, _ := app.FindCollectionByNameOrId("clients")
	clients, _ := app.FindRecordsByFilter(clientsCol, "name = 'Fresh Client'", "", 0, 0, nil)
	if len(clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(clients))
	}
	if clients[0].GetString("company") != company.Id {
		t.Error("expected client attached to active company")
	}
}

func TestHandleClientCreate_RequiresName(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req, rec := postForm(app, "/clients", url.Values{})

	if err := HandleClientCreate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleClientDelete_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Brand A")
	client := testhelpers.CreateTestClient(t, app, company.Id, "Leaving Client")

	handler := HandleClientDelete(app)
	req := httptest.NewRequest(http.MethodDelete, "/clients/"+client.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", client.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if _, err := app.FindRecordById("clients", client.Id); err == nil {
		t.Error("expected client to be deleted")
	}
}
