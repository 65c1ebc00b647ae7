package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ClientListItem is one row on the clients index.
type ClientListItem struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	QuoteCount int
}

// ClientListData feeds the clients index page.
type ClientListData struct {
	Items  []ClientListItem
	Errors map[string]string
}

// ClientListPage renders the clients index with an inline create form.
func ClientListPage(data ClientListData, header HeaderData) templ.Component {
	return Layout("Clients", header, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<section id="client-list"><div class="page-head"><h1>Clients</h1></div>`)

		fmt.Fprintf(w, `<form class="inline" method="post" action="/clients">`)
		fmt.Fprintf(w, `<input type="text" name="name" placeholder="Client name" required/>`)
		fmt.Fprintf(w, `<input type="email" name="email" placeholder="Email"/>`)
		fmt.Fprintf(w, `<input type="text" name="phone" placeholder="Phone"/>`)
		fmt.Fprintf(w, `<button type="submit" class="btn">Add Client</button></form>`)
		writeFieldError(w, data.Errors, "name")

		if len(data.Items) == 0 {
			fmt.Fprintf(w, `<p class="empty">No clients yet.</p></section>`)
			return nil
		}

		fmt.Fprintf(w, `<table class="list"><thead><tr>`)
		fmt.Fprintf(w, `<th>Name</th><th>Email</th><th>Phone</th><th>Quotes</th><th></th>`)
		fmt.Fprintf(w, `</tr></thead><tbody>`)
		for _, item := range data.Items {
			fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%d</td>`,
				esc(item.Name), esc(item.Email), esc(item.Phone), item.QuoteCount)
			fmt.Fprintf(w, `<td><button class="danger" hx-delete="/clients/%s" hx-confirm="Delete this client?">Delete</button></td></tr>`,
				esc(item.ID))
		}
		fmt.Fprintf(w, `</tbody></table></section>`)
		return nil
	}))
}
