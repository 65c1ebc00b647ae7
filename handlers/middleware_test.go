package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"seminarops/templates"
)

func TestGetActiveCompany_FromContext(t *testing.T) {
	expected := &templates.ActiveCompany{ID: "test123", Name: "Test Company"}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), ActiveCompanyKey, expected)
	req = req.WithContext(ctx)

	got := GetActiveCompany(req)
	if got == nil {
		t.Fatal("expected active company, got nil")
	}
	if got.ID != expected.ID {
		t.Errorf("expected ID %q, got %q", expected.ID, got.ID)
	}
}

func TestGetActiveCompany_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	got := GetActiveCompany(req)
	if got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestGetHeaderData_FromContext(t *testing.T) {
	expected := templates.HeaderData{
		ActiveCompany: &templates.ActiveCompany{ID: "c1", Name: "Brand"},
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), HeaderDataKey, expected)
	req = req.WithContext(ctx)

	got := GetHeaderData(req)
	if got.ActiveCompany == nil {
		t.Fatal("expected active company in header data")
	}
	if got.ActiveCompany.ID != "c1" {
		t.Errorf("expected ID 'c1', got %q", got.ActiveCompany.ID)
	}
}

func TestGetHeaderData_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	got := GetHeaderData(req)
	if got.ActiveCompany != nil {
		t.Error("expected nil active company")
	}
}
