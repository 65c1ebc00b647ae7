package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ShareData feeds the client-facing share view. All figures come from the
// stored quote snapshot, already converted and formatted for the requested
// currency.
type ShareData struct {
	QuoteID          string
	QuoteName        string
	CompanyName      string
	ClientName       string
	CampusName       string
	ArrivalDate      string
	DepartureDate    string
	ParticipantCount int
	CalendarDays     int
	Workdays         int

	Currency      string
	ShowBreakdown bool   // internal view: cost lines and margin
	CustomRate    string // AED-per-unit rate when the URL overrides the preview table

	ServiceLines []SummaryLine
	StaffLines   []SummaryLine
	OtherLines   []SummaryLine

	TotalInternalCost   string
	CostPerParticipant  string
	SellingPricePerHead string
	SellingPriceTotal   string
	NetProfit           string
	MarginPercent       string

	// EUR quotes carry the bank transfer surcharge as a separate line.
	SurchargeApplied   bool
	SurchargeLabel     string
	SurchargeAmount    string
	TotalWithSurcharge string

	CurrencyLinks []CurrencyLink
}

// CurrencyLink switches the share view to another presentation currency.
type CurrencyLink struct {
	Label  string
	URL    string
	Active bool
}

// SharePage renders the standalone share view. It deliberately has no app
// navigation so it prints clean.
func SharePage(data ShareData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
		fmt.Fprintf(w, `<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		fmt.Fprintf(w, `<title>%s</title>`, esc(data.QuoteName))
		fmt.Fprintf(w, `<link rel="stylesheet" href="/static/app.css"/>`)
		fmt.Fprintf(w, `</head><body class="share">`)

		fmt.Fprintf(w, `<header class="share-head"><h1>%s</h1><p>%s</p></header>`,
			esc(data.CompanyName), esc(data.QuoteName))

		fmt.Fprintf(w, `<nav class="currency-switch no-print">`)
		for _, link := range data.CurrencyLinks {
			cls := ""
			if link.Active {
				cls = ` class="active"`
			}
			fmt.Fprintf(w, `<a href="%s"%s>%s</a>`, esc(link.URL), cls, esc(link.Label))
		}
		fmt.Fprintf(w, `</nav>`)

		fmt.Fprintf(w, `<dl class="program">`)
		fmt.Fprintf(w, `<dt>Client</dt><dd>%s</dd>`, esc(data.ClientName))
		fmt.Fprintf(w, `<dt>Campus</dt><dd>%s</dd>`, esc(data.CampusName))
		fmt.Fprintf(w, `<dt>Dates</dt><dd>%s to %s</dd>`, esc(data.ArrivalDate), esc(data.DepartureDate))
		fmt.Fprintf(w, `<dt>Participants</dt><dd>%d</dd>`, data.ParticipantCount)
		fmt.Fprintf(w, `<dt>Program Days</dt><dd>%d calendar / %d teaching</dd>`, data.CalendarDays, data.Workdays)
		fmt.Fprintf(w, `</dl>`)

		if data.ShowBreakdown {
			writeSummaryGroup(w, "Services", data.ServiceLines)
			writeSummaryGroup(w, "Staffing", data.StaffLines)
			writeSummaryGroup(w, "Other Costs", data.OtherLines)
		}

		fmt.Fprintf(w, `<dl class="totals">`)
		if data.ShowBreakdown {
			fmt.Fprintf(w, `<dt>Total Internal Cost</dt><dd>%s</dd>`, esc(data.TotalInternalCost))
			fmt.Fprintf(w, `<dt>Cost per Participant</dt><dd>%s</dd>`, esc(data.CostPerParticipant))
		}
		fmt.Fprintf(w, `<dt>Price per Participant</dt><dd>%s</dd>`, esc(data.SellingPricePerHead))
		fmt.Fprintf(w, `<dt>Program Total</dt><dd>%s</dd>`, esc(data.SellingPriceTotal))
		if data.SurchargeApplied {
			fmt.Fprintf(w, `<dt>%s</dt><dd>%s</dd>`, esc(data.SurchargeLabel), esc(data.SurchargeAmount))
			fmt.Fprintf(w, `<dt>Total Payable</dt><dd>%s</dd>`, esc(data.TotalWithSurcharge))
		}
		if data.ShowBreakdown {
			fmt.Fprintf(w, `<dt>Net Profit</dt><dd>%s</dd>`, esc(data.NetProfit))
			fmt.Fprintf(w, `<dt>Margin</dt><dd>%s</dd>`, esc(data.MarginPercent))
		}
		fmt.Fprintf(w, `</dl>`)

		fmt.Fprintf(w, `<footer class="share-foot"><p>All amounts shown in %s.`, esc(data.Currency))
		if data.Currency != "AED" {
			if data.CustomRate != "" {
				fmt.Fprintf(w, ` Converted from AED at %s AED per %s.`, esc(data.CustomRate), esc(data.Currency))
			} else {
				fmt.Fprintf(w, ` Converted from AED at a fixed preview rate.`)
			}
		}
		fmt.Fprintf(w, `</p></footer>`)

		fmt.Fprintf(w, `</body></html>`)
		return nil
	})
}
