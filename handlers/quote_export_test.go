package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"seminarops/testhelpers"
)

func TestHandleQuoteExportExcel_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := savedQuote(t, app)

	handler := HandleQuoteExportExcel(app)
	req := httptest.NewRequest(http.MethodGet, "/quotes/"+quote.Id+"/export/excel", nil)
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Quote_Edit-Me") {
		t.Errorf("expected sanitized filename, got %q", cd)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("response is not a valid workbook: %v", err)
	}
	defer f.Close()

	cell, err := f.GetCellValue("Edit Me", "A1")
	if err != nil {
		t.Fatalf("could not read workbook: %v", err)
	}
	if !strings.Contains(cell, "Edit Me") {
		t.Errorf("expected quote name in title cell, got %q", cell)
	}
}

func TestHandleQuoteExportExcel_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleQuoteExportExcel(app)
	req := httptest.NewRequest(http.MethodGet, "/quotes/nonexistent/export/excel", nil)
	req.SetPathValue("id", "nonexistent")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleQuoteExportPDF_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := savedQuote(t, app)

	handler := HandleQuoteExportPDF(app)
	req := httptest.NewRequest(http.MethodGet, "/quotes/"+quote.Id+"/export/pdf", nil)
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("unexpected content type %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("expected PDF magic bytes")
	}
}
