// Package templates renders the dashboard's HTML views as templ components.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ActiveCompany is the subsidiary selected via the brand switcher cookie.
type ActiveCompany struct {
	ID   string
	Name string
}

// CompanySelectorItem is one entry in the header's brand dropdown.
type CompanySelectorItem struct {
	ID       string
	Name     string
	IsActive bool
}

// HeaderData feeds the page header on every view.
type HeaderData struct {
	ActiveCompany *ActiveCompany
	Companies     []CompanySelectorItem
}

// esc shortens templ.EscapeString for the render funcs below.
func esc(s string) string {
	return templ.EscapeString(s)
}

// Layout wraps page content in the HTML shell with the header and brand
// switcher. HTMX drives the editor's live summary swaps.
func Layout(title string, header HeaderData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
		fmt.Fprintf(w, `<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		fmt.Fprintf(w, `<title>%s</title>`, esc(title))
		fmt.Fprintf(w, `<link rel="stylesheet" href="/static/app.css"/>`)
		fmt.Fprintf(w, `<script src="/static/htmx.min.js" defer></script>`)
		fmt.Fprintf(w, `</head><body>`)

		if err := pageHeader(header).Render(ctx, w); err != nil {
			return err
		}

		fmt.Fprintf(w, `<main class="container">`)
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		fmt.Fprintf(w, `</main></body></html>`)
		return nil
	})
}

func pageHeader(data HeaderData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<header class="topbar">`)
		fmt.Fprintf(w, `<nav class="nav"><a href="/quotes">Quotes</a><a href="/deals">Deals</a><a href="/clients">Clients</a></nav>`)

		fmt.Fprintf(w, `<div class="brand-switcher">`)
		if data.ActiveCompany != nil {
			fmt.Fprintf(w, `<span class="brand-current">%s</span>`, esc(data.ActiveCompany.Name))
		} else {
			fmt.Fprintf(w, `<span class="brand-current">All subsidiaries</span>`)
		}
		fmt.Fprintf(w, `<ul class="brand-menu">`)
		for _, c := range data.Companies {
			active := ""
			if c.IsActive {
				active = ` class="active"`
			}
			fmt.Fprintf(w, `<li%s><form method="post" action="/companies/%s/activate"><button type="submit">%s</button></form></li>`,
				active, esc(c.ID), esc(c.Name))
		}
		fmt.Fprintf(w, `</ul></div></header>`)
		return nil
	})
}

// Option is a generic select option.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

func writeSelect(w io.Writer, name string, options []Option, attrs string) {
	fmt.Fprintf(w, `<select name="%s" %s>`, esc(name), attrs)
	fmt.Fprintf(w, `<option value="">—</option>`)
	for _, o := range options {
		sel := ""
		if o.Selected {
			sel = " selected"
		}
		fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, esc(o.Value), sel, esc(o.Label))
	}
	fmt.Fprintf(w, `</select>`)
}

func writeFieldError(w io.Writer, errors map[string]string, field string) {
	if msg, ok := errors[field]; ok {
		fmt.Fprintf(w, `<p class="field-error">%s</p>`, esc(msg))
	}
}
