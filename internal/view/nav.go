package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/portfolio/internal/scrollspy"
	"github.com/Zachkp/portfolio/internal/theme"
)

// NavItems are the sections reachable from the floating navigation.
var NavItems = []scrollspy.Entry{
	{ID: "hero", Label: "Home"},
	{ID: "about", Label: "About"},
	{ID: "projects", Label: "Projects"},
	{ID: "contact", Label: "Contact"},
}

// Navigation renders the floating bar with active marking the current
// section. site.js keeps it updated from /api/nav/state.
func Navigation(v Variant, active string) g.Node {
	pal := v.Palette()
	return Nav(
		ID("site-nav"),
		Class("fixed bottom-8 left-0 right-0 flex justify-center z-50"),
		g.Attr("data-tone", "light"),
		g.Attr("aria-label", "Sections"),
		Div(
			Class(pal.Nav),
			Div(
				Class("relative flex items-center gap-2"),
				g.Group(g.Map(scrollspy.Entries(NavItems, active), func(e scrollspy.Entry) g.Node {
					cls := pal.NavItem
					if e.Active {
						cls = pal.NavActive
					}
					return A(
						Href("#"+e.ID),
						Class(cls),
						g.Attr("data-section", e.ID),
						g.If(e.Active, g.Attr("aria-current", "true")),
						Span(Class("text-sm font-medium"), g.Text(e.Label)),
					)
				})),
			),
		),
	)
}

// ThemeToggle posts to /theme/toggle. Without JavaScript the form submits
// normally and the server redirects back.
func ThemeToggle(v Variant, t theme.Theme) g.Node {
	pal := v.Palette()
	label, icon := "Switch to dark theme", "☀"
	if t == theme.Dark {
		label, icon = "Switch to light theme", "☾"
	}
	return g.El("form",
		ID("theme-toggle"),
		Method("post"),
		Action("/theme/toggle"),
		g.Attr("hx-post", "/theme/toggle"),
		g.Attr("hx-swap", "none"),
		Class("fixed top-6 right-6 z-50"),
		Button(
			Type("submit"),
			Class(pal.ToggleIcon),
			g.Attr("aria-label", label),
			g.Attr("data-theme", string(t)),
			g.Text(icon),
		),
	)
}
