package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// QuoteListItem is one row on the quotes index.
type QuoteListItem struct {
	ID            string
	Name          string
	ClientName    string
	CampusName    string
	Participants  int
	TotalInternal string // formatted, from the stored snapshot
	UpdatedDate   string
}

// QuoteListData feeds the quotes index page.
type QuoteListData struct {
	Items []QuoteListItem
}

// SummaryLine is one formatted breakdown row.
type SummaryLine struct {
	Name string
	Cost string
}

// SummaryData is the live cost summary panel, re-rendered on every editor
// input change.
type SummaryData struct {
	QuoteID            string
	CalendarDays       int
	Workdays           int
	ServiceLines       []SummaryLine
	StaffLines         []SummaryLine
	OtherLines         []SummaryLine
	BaseCost           string
	TotalInternalCost  string
	CostPerParticipant string
	SellingPrice       string
	NetProfit          string
	MarginPercent      string
	ProfitPositive     bool
	// Currency preview of the total at the editor's fixed table.
	PreviewCurrency string
	PreviewTotal    string
	PreviewPerHead  string
}

// QuoteServiceRow is one service line in the editor.
type QuoteServiceRow struct {
	ID                  string
	Name                string
	Description         string
	TimeBasisLabel      string
	CostPrice           string
	Enabled             bool
	IsDefault           bool
	ParticipantOverride int
	OverrideExceeds     bool // soft warning: override > participant count
}

// QuoteTeacherRow is one teacher assignment in the editor.
type QuoteTeacherRow struct {
	ID         string
	Name       string
	HourlyRate float64
}

// QuoteCoordinatorRow is one coordinator assignment in the editor.
type QuoteCoordinatorRow struct {
	ID        string
	Name      string
	DailyRate float64
	Enabled   bool
}

// OtherCostRow is one fixed overhead line in the editor.
type OtherCostRow struct {
	ID     string
	Name   string
	Amount float64
}

// QuoteEditData feeds the quote editor page.
type QuoteEditData struct {
	ID               string
	Name             string
	Notes            string
	ArrivalDate      string // yyyy-mm-dd for the date input
	DepartureDate    string
	ParticipantCount int
	ActiveWorkdays   map[string]bool
	TeachingHours    float64
	ManualPrice      float64
	ClientOptions    []Option
	CampusOptions    []Option
	DealOptions      []Option
	StaffOptions     []Option // directory entries not yet assigned
	Services         []QuoteServiceRow
	Teachers         []QuoteTeacherRow
	Coordinators     []QuoteCoordinatorRow
	OtherCosts       []OtherCostRow
	Summary          SummaryData
	Errors           map[string]string
}

// weekdayOrder drives the active-workday checkbox row.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// QuoteListPage renders the quotes index inside the layout.
func QuoteListPage(data QuoteListData, header HeaderData) templ.Component {
	return Layout("Quotes", header, QuoteListContent(data))
}

// QuoteListContent renders just the quotes table (HTMX swap target).
func QuoteListContent(data QuoteListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<section id="quote-list"><div class="page-head"><h1>Seminar Quotes</h1>`)
		fmt.Fprintf(w, `<a class="btn" href="/quotes/create">New Quote</a></div>`)

		if len(data.Items) == 0 {
			fmt.Fprintf(w, `<p class="empty">No quotes yet.</p></section>`)
			return nil
		}

		fmt.Fprintf(w, `<table class="list"><thead><tr>`)
		fmt.Fprintf(w, `<th>Name</th><th>Client</th><th>Campus</th><th>Participants</th><th>Internal Cost</th><th>Updated</th><th></th>`)
		fmt.Fprintf(w, `</tr></thead><tbody>`)
		for _, item := range data.Items {
			fmt.Fprintf(w, `<tr><td><a href="/quotes/%s/edit">%s</a></td>`, esc(item.ID), esc(item.Name))
			fmt.Fprintf(w, `<td>%s</td><td>%s</td><td>%d</td><td>%s</td><td>%s</td>`,
				esc(item.ClientName), esc(item.CampusName), item.Participants, esc(item.TotalInternal), esc(item.UpdatedDate))
			fmt.Fprintf(w, `<td><button class="danger" hx-delete="/quotes/%s" hx-confirm="Delete this quote?">Delete</button></td></tr>`, esc(item.ID))
		}
		fmt.Fprintf(w, `</tbody></table></section>`)
		return nil
	})
}

// QuoteCreatePage renders the minimal create form; the full editor opens
// after the first save.
func QuoteCreatePage(data QuoteEditData, header HeaderData) templ.Component {
	return Layout("New Quote", header, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<section class="form-page"><h1>New Seminar Quote</h1>`)
		fmt.Fprintf(w, `<form method="post" action="/quotes">`)

		fmt.Fprintf(w, `<label>Name<input type="text" name="name" value="%s" required/></label>`, esc(data.Name))
		writeFieldError(w, data.Errors, "name")

		fmt.Fprintf(w, `<label>Client`)
		writeSelect(w, "client", data.ClientOptions, "")
		fmt.Fprintf(w, `</label>`)

		fmt.Fprintf(w, `<label>Campus`)
		writeSelect(w, "campus", data.CampusOptions, "")
		fmt.Fprintf(w, `</label>`)

		fmt.Fprintf(w, `<button type="submit" class="btn">Create</button></form></section>`)
		return nil
	}))
}

// QuoteEditPage renders the full quote editor.
func QuoteEditPage(data QuoteEditData, header HeaderData) templ.Component {
	return Layout("Edit Quote – "+data.Name, header, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<section class="quote-editor"><div class="page-head"><h1>%s</h1>`, esc(data.Name))
		fmt.Fprintf(w, `<div class="actions">`)
		fmt.Fprintf(w, `<a class="btn" href="/quotes/%s/share?currency=AED" target="_blank">Share View</a>`, esc(data.ID))
		fmt.Fprintf(w, `<a class="btn" href="/quotes/%s/export/excel">Excel</a>`, esc(data.ID))
		fmt.Fprintf(w, `<a class="btn" href="/quotes/%s/export/pdf">PDF</a>`, esc(data.ID))
		fmt.Fprintf(w, `</div></div>`)

		// Every control posts the whole form to the summary endpoint so
		// the panel recomputes from scratch on each change.
		fmt.Fprintf(w, `<form id="quote-form" method="post" action="/quotes/%s/save" `, esc(data.ID))
		fmt.Fprintf(w, `hx-post="/quotes/%s/summary" hx-trigger="change, keyup delay:300ms from:input" hx-target="#summary-panel" hx-swap="outerHTML">`, esc(data.ID))

		fmt.Fprintf(w, `<div class="editor-grid"><div class="editor-main">`)

		// program schedule
		fmt.Fprintf(w, `<fieldset><legend>Program</legend>`)
		fmt.Fprintf(w, `<label>Name<input type="text" name="name" value="%s" required/></label>`, esc(data.Name))
		writeFieldError(w, data.Errors, "name")
		fmt.Fprintf(w, `<label>Client`)
		writeSelect(w, "client", data.ClientOptions, "")
		fmt.Fprintf(w, `</label>`)
		fmt.Fprintf(w, `<label>Campus`)
		writeSelect(w, "campus", data.CampusOptions, "")
		fmt.Fprintf(w, `</label>`)
		fmt.Fprintf(w, `<label>Deal`)
		writeSelect(w, "deal", data.DealOptions, "")
		fmt.Fprintf(w, `</label>`)
		fmt.Fprintf(w, `<label>Arrival<input type="date" name="arrival_date" value="%s"/></label>`, esc(data.ArrivalDate))
		fmt.Fprintf(w, `<label>Departure<input type="date" name="departure_date" value="%s"/></label>`, esc(data.DepartureDate))
		writeFieldError(w, data.Errors, "departure_date")
		fmt.Fprintf(w, `<label>Participants<input type="number" name="participant_count" min="1" value="%d"/></label>`, data.ParticipantCount)
		writeFieldError(w, data.Errors, "participant_count")
		fmt.Fprintf(w, `<label>Teaching hours per workday<input type="number" name="teaching_hours" step="0.5" min="0" value="%g"/></label>`, data.TeachingHours)

		fmt.Fprintf(w, `<div class="weekday-row"><span>Active workdays</span>`)
		for _, day := range weekdayOrder {
			checked := ""
			if data.ActiveWorkdays[day] {
				checked = " checked"
			}
			fmt.Fprintf(w, `<label class="weekday"><input type="checkbox" name="active_workdays" value="%s"%s/>%s</label>`,
				esc(day), checked, esc(day[:3]))
		}
		fmt.Fprintf(w, `</div></fieldset>`)

		// services
		fmt.Fprintf(w, `<fieldset><legend>Services</legend><table class="lines"><thead><tr>`)
		fmt.Fprintf(w, `<th></th><th>Service</th><th>Basis</th><th>Unit Cost</th><th>Participants</th></tr></thead><tbody>`)
		for _, svc := range data.Services {
			fmt.Fprintf(w, `<tr><td>`)
			if svc.IsDefault {
				fmt.Fprintf(w, `<input type="checkbox" checked disabled title="Default service"/>`)
				fmt.Fprintf(w, `<input type="hidden" name="svc_enabled_%s" value="on"/>`, esc(svc.ID))
			} else {
				checked := ""
				if svc.Enabled {
					checked = " checked"
				}
				fmt.Fprintf(w, `<input type="checkbox" name="svc_enabled_%s"%s/>`, esc(svc.ID), checked)
			}
			fmt.Fprintf(w, `</td><td title="%s">%s</td><td>%s</td><td>%s</td><td>`,
				esc(svc.Description), esc(svc.Name), esc(svc.TimeBasisLabel), esc(svc.CostPrice))
			if svc.IsDefault {
				fmt.Fprintf(w, `all`)
			} else {
				override := ""
				if svc.ParticipantOverride > 0 {
					override = fmt.Sprintf("%d", svc.ParticipantOverride)
				}
				warn := ""
				if svc.OverrideExceeds {
					warn = ` class="warn" title="Override exceeds participant count"`
				}
				fmt.Fprintf(w, `<input type="number" name="svc_override_%s" min="0" placeholder="all" value="%s"%s/>`,
					esc(svc.ID), override, warn)
			}
			fmt.Fprintf(w, `</td></tr>`)
		}
		fmt.Fprintf(w, `</tbody></table></fieldset>`)

		// staffing
		fmt.Fprintf(w, `<fieldset><legend>Teachers</legend><table class="lines"><tbody>`)
		for _, tch := range data.Teachers {
			fmt.Fprintf(w, `<tr><td>%s</td><td><label>Rate/hour `, esc(tch.Name))
			fmt.Fprintf(w, `<input type="number" name="teacher_rate_%s" step="0.01" min="0" value="%g"/></label></td>`, esc(tch.ID), tch.HourlyRate)
			fmt.Fprintf(w, `<td><button class="danger" hx-delete="/quotes/%s/teachers/%s" hx-target="body">Remove</button></td></tr>`,
				esc(data.ID), esc(tch.ID))
		}
		fmt.Fprintf(w, `</tbody></table>`)
		fmt.Fprintf(w, `<div class="add-line">`)
		writeSelect(w, "add_teacher", data.StaffOptions, `form="add-teacher-form"`)
		fmt.Fprintf(w, `<button class="btn" form="add-teacher-form">Add Teacher</button></div></fieldset>`)

		fmt.Fprintf(w, `<fieldset><legend>Coordinators</legend><table class="lines"><tbody>`)
		for _, coord := range data.Coordinators {
			checked := ""
			if coord.Enabled {
				checked = " checked"
			}
			fmt.Fprintf(w, `<tr><td><input type="checkbox" name="coord_enabled_%s"%s/></td><td>%s</td>`,
				esc(coord.ID), checked, esc(coord.Name))
			fmt.Fprintf(w, `<td><label>Rate/day <input type="number" name="coord_rate_%s" step="0.01" min="0" value="%g"/></label></td></tr>`,
				esc(coord.ID), coord.DailyRate)
		}
		fmt.Fprintf(w, `</tbody></table></fieldset>`)

		// other costs
		fmt.Fprintf(w, `<fieldset><legend>Other Costs</legend><table class="lines"><tbody>`)
		for _, oc := range data.OtherCosts {
			fmt.Fprintf(w, `<tr><td><input type="text" name="other_name_%s" value="%s"/></td>`, esc(oc.ID), esc(oc.Name))
			fmt.Fprintf(w, `<td><input type="number" name="other_amount_%s" step="0.01" min="0" value="%g"/></td></tr>`, esc(oc.ID), oc.Amount)
		}
		fmt.Fprintf(w, `</tbody></table>`)
		fmt.Fprintf(w, `<button class="btn" form="add-cost-form">Add Cost Line</button></fieldset>`)

		// pricing
		fmt.Fprintf(w, `<fieldset><legend>Pricing</legend>`)
		fmt.Fprintf(w, `<label>Selling price per participant (AED)<input type="number" name="manual_price" step="0.01" min="0" value="%g"/></label>`, data.ManualPrice)
		fmt.Fprintf(w, `<label>Notes<textarea name="notes">%s</textarea></label>`, esc(data.Notes))
		fmt.Fprintf(w, `</fieldset>`)

		fmt.Fprintf(w, `<button type="submit" class="btn primary">Save Quote</button>`)
		fmt.Fprintf(w, `</div>`)

		// live summary panel
		fmt.Fprintf(w, `<aside class="editor-side">`)
		if err := QuoteSummarySection(data.Summary).Render(ctx, w); err != nil {
			return err
		}
		fmt.Fprintf(w, `</aside></div></form>`)

		// Out-of-band form for adding a teacher without submitting the editor.
		fmt.Fprintf(w, `<form id="add-teacher-form" method="post" action="/quotes/%s/teachers"></form>`, esc(data.ID))
		fmt.Fprintf(w, `<form id="add-cost-form" method="post" action="/quotes/%s/other-costs"></form>`, esc(data.ID))
		fmt.Fprintf(w, `</section>`)
		return nil
	}))
}

// QuoteSummarySection renders the summary panel. It is both part of the
// editor page and the standalone HTMX fragment returned by the live
// recompute endpoint.
func QuoteSummarySection(data SummaryData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<div id="summary-panel" class="summary">`)
		fmt.Fprintf(w, `<h2>Cost Summary</h2>`)
		fmt.Fprintf(w, `<p class="days">%d calendar days · %d workdays</p>`, data.CalendarDays, data.Workdays)

		writeSummaryGroup(w, "Services", data.ServiceLines)
		writeSummaryGroup(w, "Staffing", data.StaffLines)
		writeSummaryGroup(w, "Other Costs", data.OtherLines)

		fmt.Fprintf(w, `<dl class="totals">`)
		fmt.Fprintf(w, `<dt>Base Cost</dt><dd>%s</dd>`, esc(data.BaseCost))
		fmt.Fprintf(w, `<dt>Total Internal Cost</dt><dd>%s</dd>`, esc(data.TotalInternalCost))
		fmt.Fprintf(w, `<dt>Cost per Participant</dt><dd>%s</dd>`, esc(data.CostPerParticipant))
		fmt.Fprintf(w, `<dt>Selling Price</dt><dd>%s</dd>`, esc(data.SellingPrice))

		profitClass := "loss"
		if data.ProfitPositive {
			profitClass = "profit"
		}
		fmt.Fprintf(w, `<dt>Net Profit</dt><dd class="%s">%s</dd>`, profitClass, esc(data.NetProfit))
		fmt.Fprintf(w, `<dt>Margin</dt><dd class="%s">%s</dd>`, profitClass, esc(data.MarginPercent))
		fmt.Fprintf(w, `</dl>`)

		if data.PreviewCurrency != "" {
			fmt.Fprintf(w, `<p class="fx-preview">≈ %s total · %s per participant</p>`,
				esc(data.PreviewTotal), esc(data.PreviewPerHead))
		}
		fmt.Fprintf(w, `</div>`)
		return nil
	})
}

func writeSummaryGroup(w io.Writer, title string, lines []SummaryLine) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(w, `<h3>%s</h3><dl class="lines">`, esc(title))
	for _, line := range lines {
		fmt.Fprintf(w, `<dt>%s</dt><dd>%s</dd>`, esc(line.Name), esc(line.Cost))
	}
	fmt.Fprintf(w, `</dl>`)
}
