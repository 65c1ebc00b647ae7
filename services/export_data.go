package services

// QuoteExportRow is a single breakdown line in a quote export, tagged with
// the section it belongs to.
type QuoteExportRow struct {
	Section string // "Services", "Staffing" or "Other Costs"
	Name    string
	Cost    float64
}

// QuoteExportData holds everything the Excel and PDF exports need: quote
// metadata plus the stored summary snapshot. Exports render the snapshot
// verbatim and never re-run the pricing engine.
type QuoteExportData struct {
	QuoteName        string
	CompanyName      string
	ClientName       string
	CampusName       string
	CreatedDate      string
	ArrivalDate      string
	DepartureDate    string
	ParticipantCount int
	Summary          QuoteSummary
}

// BreakdownRows flattens the summary's three breakdowns into sectioned
// export rows, preserving each breakdown's order.
func (d QuoteExportData) BreakdownRows() []QuoteExportRow {
	var rows []QuoteExportRow
	for _, line := range d.Summary.ServiceBreakdown {
		rows = append(rows, QuoteExportRow{Section: "Services", Name: line.Name, Cost: line.Cost})
	}
	for _, line := range d.Summary.StaffBreakdown {
		rows = append(rows, QuoteExportRow{Section: "Staffing", Name: line.Name, Cost: line.Cost})
	}
	for _, line := range d.Summary.OtherCostsBreakdown {
		rows = append(rows, QuoteExportRow{Section: "Other Costs", Name: line.Name, Cost: line.Cost})
	}
	return rows
}
