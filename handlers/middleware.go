package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"seminarops/templates"
)

type contextKey string

const ActiveCompanyKey contextKey = "activeCompany"
const HeaderDataKey contextKey = "headerData"

// GetActiveCompany extracts the active company from the request context.
func GetActiveCompany(r *http.Request) *templates.ActiveCompany {
	if val, ok := r.Context().Value(ActiveCompanyKey).(*templates.ActiveCompany); ok {
		return val
	}
	return nil
}

// GetHeaderData extracts the pre-built HeaderData from the request context.
func GetHeaderData(r *http.Request) templates.HeaderData {
	if val, ok := r.Context().Value(HeaderDataKey).(templates.HeaderData); ok {
		return val
	}
	return templates.HeaderData{}
}

// ActiveCompanyMiddleware reads the "active_company" cookie, loads the company
// record, builds HeaderData with the full subsidiary list, and stores both in
// the request context so handlers and templates can use them.
func ActiveCompanyMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var activeCompany *templates.ActiveCompany

		cookie, err := e.Request.Cookie("active_company")
		if err == nil && cookie.Value != "" {
			rec, err := app.FindRecordById("companies", cookie.Value)
			if err == nil {
				activeCompany = &templates.ActiveCompany{
					ID:   rec.Id,
					Name: rec.GetString("name"),
				}
			} else {
				log.Printf("middleware: active company %s not found, clearing cookie", cookie.Value)
				http.SetCookie(e.Response, &http.Cookie{
					Name:   "active_company",
					Value:  "",
					Path:   "/",
					MaxAge: -1,
				})
			}
		}

		// Build full company list for the header's brand switcher
		companiesCol, _ := app.FindCollectionByNameOrId("companies")
		var selectorItems []templates.CompanySelectorItem
		if companiesCol != nil {
			records, _ := app.FindAllRecords(companiesCol)
			for _, rec := range records {
				isActive := activeCompany != nil && rec.Id == activeCompany.ID
				selectorItems = append(selectorItems, templates.CompanySelectorItem{
					ID:       rec.Id,
					Name:     rec.GetString("name"),
					IsActive: isActive,
				})
			}
		}

		headerData := templates.HeaderData{
			ActiveCompany: activeCompany,
			Companies:     selectorItems,
		}

		ctx := context.WithValue(e.Request.Context(), ActiveCompanyKey, activeCompany)
		ctx = context.WithValue(ctx, HeaderDataKey, headerData)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}
