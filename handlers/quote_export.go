package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"seminarops/collections"
	"seminarops/services"
)

// buildQuoteExportData assembles the export payload from the quote record
// and its stored snapshot.
func buildQuoteExportData(app *pocketbase.PocketBase, quoteID string) (services.QuoteExportData, error) {
	quote, err := app.FindRecordById("quotes", quoteID)
	if err != nil {
		return services.QuoteExportData{}, fmt.Errorf("quote not found: %w", err)
	}

	data := services.QuoteExportData{
		QuoteName:        quote.GetString("name"),
		ParticipantCount: int(quote.GetFloat("participant_count")),
		Summary:          collections.ReadSnapshot(quote),
	}

	if companyID := quote.GetString("company"); companyID != "" {
		if company, err := app.FindRecordById("companies", companyID); err == nil {
			data.CompanyName = company.GetString("name")
		}
	}
	if clientID := quote.GetString("client"); clientID != "" {
		if client, err := app.FindRecordById("clients", clientID); err == nil {
			data.ClientName = client.GetString("name")
		}
	}
	if campusID := quote.GetString("campus"); campusID != "" {
		if campus, err := app.FindRecordById("campuses", campusID); err == nil {
			data.CampusName = campus.GetString("name")
		}
	}

	if dt := quote.GetDateTime("created"); !dt.IsZero() {
		data.CreatedDate = dt.Time().Format("02 Jan 2006")
	}
	if dt := quote.GetDateTime("arrival_date"); !dt.IsZero() {
		data.ArrivalDate = dt.Time().Format("02 Jan 2006")
	}
	if dt := quote.GetDateTime("departure_date"); !dt.IsZero() {
		data.DepartureDate = dt.Time().Format("02 Jan 2006")
	}

	return data, nil
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleQuoteExportExcel returns a handler that downloads the quote as an
// Excel workbook.
func HandleQuoteExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		data, err := buildQuoteExportData(app, quoteID)
		if err != nil {
			log.Printf("quote_export: %v", err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		xlsxBytes, err := services.GenerateQuoteExcel(data)
		if err != nil {
			log.Printf("quote_export: failed to generate Excel: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Quote_%s_%d.xlsx", sanitizeFilename(data.QuoteName), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleQuoteExportPDF returns a handler that downloads the quote as a PDF.
func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		data, err := buildQuoteExportData(app, quoteID)
		if err != nil {
			log.Printf("quote_export: %v", err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		pdfBytes, err := services.GenerateQuotePDF(&data)
		if err != nil {
			log.Printf("quote_export: failed to generate PDF: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("Quote_%s_%d.pdf", sanitizeFilename(data.QuoteName), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
