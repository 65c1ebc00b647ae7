package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuoteDelete returns a handler that deletes a quote. Line records
// cascade with the quote relation.
func HandleQuoteDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(400, "Missing quote ID")
		}

		rec, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quote not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("quote_delete: error deleting quote %s: %v", quoteID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to delete quote")
		}

		SetToast(e, "success", "Quote deleted")
		e.Response.Header().Set("HX-Redirect", "/quotes")
		return e.String(200, "OK")
	}
}
