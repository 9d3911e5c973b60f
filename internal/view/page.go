// Package view renders the site's pages and HTMX fragments with gomponents.
package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/portfolio/internal/theme"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// PageProps are the document-level settings of a full page.
type PageProps struct {
	Title       string
	Description string
	Theme       theme.Theme
	Variant     Variant
}

// Page wraps body in the HTML document. The theme is applied to the root
// element so the first paint already has the right colours.
func Page(p PageProps, body ...g.Node) g.Node {
	pal := p.Variant.Palette()
	return Doctype(
		HTML(
			Lang("en"),
			g.If(theme.ClassFor(p.Theme) != "", Class(theme.ClassFor(p.Theme))),
			g.Attr("data-variant", string(p.Variant)),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				g.If(p.Description != "", Meta(Name("description"), Content(p.Description))),
				g.El("title", g.Text(p.Title)),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),
				Script(Src(htmxSrc), Defer()),
				Script(Src("/static/js/site.js"), Defer()),
			),
			Body(
				Class(pal.Body),
				g.Group(body),
			),
		),
	)
}
