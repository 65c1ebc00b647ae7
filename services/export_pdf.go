package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF creates a PDF cost breakdown document for a quote using
// maroto/v2. It returns the raw PDF bytes or an error.
func GenerateQuotePDF(data *QuoteExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteProgramBlock(m, data)
	addQuoteBreakdownTable(m, data)
	addQuoteTotals(m, data)
	addQuoteProfitability(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteHeader adds the subsidiary name, "SEMINAR QUOTE" title and quote name.
func addQuoteHeader(m core.Maroto, data *QuoteExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.CompanyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("SEMINAR QUOTE", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(data.QuoteName, props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.CreatedDate), props.Text{
					Size:  8,
					Align: align.Right,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)

	// Divider spacer
	m.AddRows(row.New(3))
}

// addQuoteProgramBlock adds client/campus details on the left and the
// program schedule figures on the right.
func addQuoteProgramBlock(m core.Maroto, data *QuoteExportData) {
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}
	rightLabelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	rightValueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("CLIENT", labelStyle)),
			col.New(6).Add(text.New("PROGRAM", rightLabelStyle)),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(data.ClientName, props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
			col.New(3).Add(text.New("Dates:", rightLabelStyle)),
			col.New(3).Add(text.New(fmt.Sprintf("%s – %s", data.ArrivalDate, data.DepartureDate), rightValueStyle)),
		),
	)

	if data.CampusName != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(6).Add(text.New(fmt.Sprintf("Campus: %s", data.CampusName), valueStyle)),
				col.New(3).Add(text.New("Duration:", rightLabelStyle)),
				col.New(3).Add(text.New(fmt.Sprintf("%d days / %d workdays", data.Summary.CalendarDays, data.Summary.Workdays), rightValueStyle)),
			),
		)
	}

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New("", valueStyle)),
			col.New(3).Add(text.New("Participants:", rightLabelStyle)),
			col.New(3).Add(text.New(fmt.Sprintf("%d", data.ParticipantCount), rightValueStyle)),
		),
	)

	m.AddRows(row.New(3))
}

// addQuoteBreakdownTable adds the sectioned cost breakdown table.
func addQuoteBreakdownTable(m core.Maroto, data *QuoteExportData) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(3).Add(text.New("Section", headerTextLeft)).WithStyle(&headerCell),
			col.New(6).Add(text.New("Cost Line", headerTextLeft)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Cost (AED)", headerText)).WithStyle(&headerCell),
		),
	)

	bodyText := props.Text{
		Size:  8,
		Align: align.Left,
	}
	sectionText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
	}
	amountText := props.Text{
		Size:  8,
		Align: align.Right,
	}
	altBg := &props.Color{Red: 245, Green: 243, Blue: 239}

	lastSection := ""
	for i, r := range data.BreakdownRows() {
		section := ""
		if r.Section != lastSection {
			section = r.Section
			lastSection = r.Section
		}

		cells := row.New(6).Add(
			col.New(3).Add(text.New(section, sectionText)),
			col.New(6).Add(text.New(r.Name, bodyText)),
			col.New(3).Add(text.New(FormatMoney(CurrencyAED, r.Cost), amountText)),
		)
		if i%2 == 1 {
			cells.WithStyle(&props.Cell{BackgroundColor: altBg})
		}
		m.AddRows(cells)
	}

	m.AddRows(row.New(3))
}

// addQuoteTotals adds the base/total cost summary rows, right-aligned.
func addQuoteTotals(m core.Maroto, data *QuoteExportData) {
	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	totals := []struct {
		label string
		value float64
	}{
		{"Base Cost:", data.Summary.BaseCost},
		{"Total Internal Cost:", data.Summary.TotalInternalCost},
		{"Cost per Participant:", data.Summary.CostPerParticipant},
	}
	for _, tot := range totals {
		m.AddRows(
			row.New(6).Add(
				col.New(9).Add(text.New(tot.label, labelStyle)),
				col.New(3).Add(text.New(FormatMoney(CurrencyAED, tot.value), valueStyle)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addQuoteProfitability adds the selling price, net profit and margin block.
func addQuoteProfitability(m core.Maroto, data *QuoteExportData) {
	headerBg := &props.Color{Red: 245, Green: 243, Blue: 239}
	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("PROFITABILITY", props.Text{
				Size:  7,
				Style: fontstyle.Bold,
				Align: align.Left,
				Color: &props.Color{Red: 100, Green: 100, Blue: 100},
			})),
		).WithStyle(&props.Cell{BackgroundColor: headerBg}),
	)

	rows := []struct {
		label string
		value string
	}{
		{"Selling Price per Participant:", FormatMoney(CurrencyAED, data.Summary.ManualPricePerParticipant)},
		{"Net Profit:", FormatMoney(CurrencyAED, data.Summary.NetProfit)},
		{"Profit Margin:", fmt.Sprintf("%.2f%%", data.Summary.ProfitMarginPercent)},
	}
	for _, r := range rows {
		m.AddRows(
			row.New(6).Add(
				col.New(9).Add(text.New(r.label, labelStyle)),
				col.New(3).Add(text.New(r.value, valueStyle)),
			),
		)
	}
}
