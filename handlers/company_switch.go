package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleCompanyActivate sets the active company cookie and returns a full page
// redirect via HX-Redirect so the entire shell re-renders under the new brand.
func HandleCompanyActivate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := e.Request.PathValue("id")

		_, err := app.FindRecordById("companies", companyID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Company not found")
		}

		// 30-day expiry, HttpOnly
		http.SetCookie(e.Response, &http.Cookie{
			Name:     "active_company",
			Value:    companyID,
			Path:     "/",
			MaxAge:   60 * 60 * 24 * 30,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		SetToast(e, "success", "Company activated")

		e.Response.Header().Set("HX-Redirect", "/quotes")

		// Plain form posts need a real redirect; HTMX follows HX-Redirect instead.
		if e.Request.Header.Get("HX-Request") != "true" {
			return e.Redirect(http.StatusSeeOther, "/quotes")
		}
		return e.String(200, "OK")
	}
}

// HandleCompanyDeactivate clears the active company cookie so all quotes show.
func HandleCompanyDeactivate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		http.SetCookie(e.Response, &http.Cookie{
			Name:   "active_company",
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})

		SetToast(e, "success", "Showing all subsidiaries")

		e.Response.Header().Set("HX-Redirect", "/quotes")
		if e.Request.Header.Get("HX-Request") != "true" {
			return e.Redirect(http.StatusSeeOther, "/quotes")
		}
		return e.String(200, "OK")
	}
}
