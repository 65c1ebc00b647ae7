package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuoteTeacherAdd returns a handler that assigns a directory teacher
// to the quote. The hourly rate starts at zero and is set in the editor.
func HandleQuoteTeacherAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(400, "Missing quote ID")
		}

		if err := e.Request.ParseForm(); err != nil {
			return e.String(400, "Invalid form data")
		}

		staffID := e.Request.FormValue("add_teacher")
		if staffID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Pick a teacher to add")
		}

		staff, err := app.FindRecordById("staff", staffID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Teacher not found")
		}

		quoteTeachersCol, err := app.FindCollectionByNameOrId("quote_teachers")
		if err != nil {
			log.Printf("quote_staff: could not find quote_teachers collection: %v", err)
			return e.String(500, "Internal error")
		}

		existing, _ := app.FindRecordsByFilter(quoteTeachersCol, "quote = {:quoteId}", "sort_order", 0, 0, map[string]any{"quoteId": quoteID})
		for _, rec := range existing {
			if rec.GetString("staff") == staffID {
				return ErrorToast(e, http.StatusConflict, "Teacher already on this quote")
			}
		}

		rec := core.NewRecord(quoteTeachersCol)
		rec.Set("quote", quoteID)
		rec.Set("staff", staffID)
		rec.Set("sort_order", len(existing)+1)
		rec.Set("name", staff.GetString("name"))
		rec.Set("hourly_rate", 0)
		if err := app.Save(rec); err != nil {
			log.Printf("quote_staff: error saving teacher: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to add teacher")
		}

		SetToast(e, "success", "Teacher added")
		e.Response.Header().Set("HX-Redirect", "/quotes/"+quoteID+"/edit")
		if e.Request.Header.Get("HX-Request") != "true" {
			return e.Redirect(http.StatusSeeOther, "/quotes/"+quoteID+"/edit")
		}
		return e.String(200, "OK")
	}
}

// HandleQuoteTeacherRemove returns a handler that removes a teacher line.
func HandleQuoteTeacherRemove(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		teacherID := e.Request.PathValue("teacherId")
		if quoteID == "" || teacherID == "" {
			return e.String(400, "Missing IDs")
		}

		rec, err := app.FindRecordById("quote_teachers", teacherID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Teacher line not found")
		}
		if rec.GetString("quote") != quoteID {
			return ErrorToast(e, http.StatusNotFound, "Teacher line not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("quote_staff: error deleting teacher line %s: %v", teacherID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to remove teacher")
		}

		SetToast(e, "success", "Teacher removed")
		e.Response.Header().Set("HX-Redirect", "/quotes/"+quoteID+"/edit")
		return e.String(200, "OK")
	}
}

// HandleQuoteOtherCostAdd returns a handler that appends an empty overhead
// line to the quote.
func HandleQuoteOtherCostAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(400, "Missing quote ID")
		}

		otherCostsCol, err := app.FindCollectionByNameOrId("quote_other_costs")
		if err != nil {
			log.Printf("quote_staff: could not find quote_other_costs collection: %v", err)
			return e.String(500, "Internal error")
		}

		existing, _ := app.FindRecordsByFilter(otherCostsCol, "quote = {:quoteId}", "sort_order", 0, 0, map[string]any{"quoteId": quoteID})

		rec := core.NewRecord(otherCostsCol)
		rec.Set("quote", quoteID)
		rec.Set("sort_order", len(existing)+1)
		rec.Set("name", "New Cost")
		rec.Set("amount", 0)
		if err := app.Save(rec); err != nil {
			log.Printf("quote_staff: error saving other cost: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to add cost line")
		}

		e.Response.Header().Set("HX-Redirect", "/quotes/"+quoteID+"/edit")
		if e.Request.Header.Get("HX-Request") != "true" {
			return e.Redirect(http.StatusSeeOther, "/quotes/"+quoteID+"/edit")
		}
		return e.String(200, "OK")
	}
}
