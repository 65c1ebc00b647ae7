package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// DealQuoteRow is one quote attached to a deal, figures read from the
// quote's stored snapshot.
type DealQuoteRow struct {
	ID           string
	Name         string
	Participants int
	InternalCost string
	SellingTotal string
	NetProfit    string
}

// DealListItem is one row on the deals index.
type DealListItem struct {
	ID         string
	Name       string
	ClientName string
	Status     string
	QuoteCount int
	DealValue  string // sum of attached quotes' internal cost
}

// DealListData feeds the deals index page.
type DealListData struct {
	Items []DealListItem
}

// DealViewData feeds a single deal page.
type DealViewData struct {
	ID         string
	Name       string
	ClientName string
	Status     string
	Quotes     []DealQuoteRow
	DealValue  string
	DealProfit string
}

// DealListPage renders the deals index inside the layout.
func DealListPage(data DealListData, header HeaderData) templ.Component {
	return Layout("Deals", header, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<section id="deal-list"><div class="page-head"><h1>Deals</h1>`)
		fmt.Fprintf(w, `<form class="inline" method="post" action="/deals">`)
		fmt.Fprintf(w, `<input type="text" name="name" placeholder="New deal name" required/>`)
		fmt.Fprintf(w, `<button type="submit" class="btn">Create Deal</button></form></div>`)

		if len(data.Items) == 0 {
			fmt.Fprintf(w, `<p class="empty">No deals yet.</p></section>`)
			return nil
		}

		fmt.Fprintf(w, `<table class="list"><thead><tr>`)
		fmt.Fprintf(w, `<th>Name</th><th>Client</th><th>Status</th><th>Quotes</th><th>Deal Value</th>`)
		fmt.Fprintf(w, `</tr></thead><tbody>`)
		for _, item := range data.Items {
			fmt.Fprintf(w, `<tr><td><a href="/deals/%s">%s</a></td>`, esc(item.ID), esc(item.Name))
			fmt.Fprintf(w, `<td>%s</td><td><span class="status status-%s">%s</span></td><td>%d</td><td>%s</td></tr>`,
				esc(item.ClientName), esc(item.Status), esc(item.Status), item.QuoteCount, esc(item.DealValue))
		}
		fmt.Fprintf(w, `</tbody></table></section>`)
		return nil
	}))
}

// DealViewPage renders one deal with its quotes and aggregate value.
func DealViewPage(data DealViewData, header HeaderData) templ.Component {
	return Layout("Deal – "+data.Name, header, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<section class="deal-view"><div class="page-head"><h1>%s</h1>`, esc(data.Name))
		fmt.Fprintf(w, `<form class="inline" method="post" action="/deals/%s/status">`, esc(data.ID))
		fmt.Fprintf(w, `<select name="status">`)
		for _, status := range []string{"open", "won", "lost"} {
			sel := ""
			if status == data.Status {
				sel = " selected"
			}
			fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, status, sel, status)
		}
		fmt.Fprintf(w, `</select><button type="submit" class="btn">Update</button></form></div>`)

		if data.ClientName != "" {
			fmt.Fprintf(w, `<p class="subtitle">%s</p>`, esc(data.ClientName))
		}

		if len(data.Quotes) == 0 {
			fmt.Fprintf(w, `<p class="empty">No quotes attached to this deal.</p>`)
		} else {
			fmt.Fprintf(w, `<table class="list"><thead><tr>`)
			fmt.Fprintf(w, `<th>Quote</th><th>Participants</th><th>Internal Cost</th><th>Selling Total</th><th>Net Profit</th>`)
			fmt.Fprintf(w, `</tr></thead><tbody>`)
			for _, q := range data.Quotes {
				fmt.Fprintf(w, `<tr><td><a href="/quotes/%s/edit">%s</a></td>`, esc(q.ID), esc(q.Name))
				fmt.Fprintf(w, `<td>%d</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
					q.Participants, esc(q.InternalCost), esc(q.SellingTotal), esc(q.NetProfit))
			}
			fmt.Fprintf(w, `</tbody></table>`)
			fmt.Fprintf(w, `<dl class="totals"><dt>Deal Value</dt><dd>%s</dd>`, esc(data.DealValue))
			fmt.Fprintf(w, `<dt>Projected Profit</dt><dd>%s</dd></dl>`, esc(data.DealProfit))
		}
		fmt.Fprintf(w, `</section>`)
		return nil
	}))
}
