package view

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/portfolio/internal/content"
)

// surface marks an element whose background site.js reports to the
// navigation tone check.
func surface() g.Node { return g.Attr("data-surface", "") }

// Hero renders the opening section. The first role is rendered statically;
// site.js plays the rest from /api/typewriter.
func Hero(v Variant) g.Node {
	pal := v.Palette()
	first := ""
	if len(content.Roles) > 0 {
		first = content.Roles[0]
	}
	return Section(
		ID("hero"),
		Class(pal.Hero),
		surface(),
		Div(
			Class("relative z-10 max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			H1(Class(pal.Heading), g.Text(content.Owner)),
			P(
				Class("text-2xl font-mono"),
				Span(ID("typed-role"), g.Attr("data-typewriter", "/api/typewriter"), g.Text(first)),
				Span(Class("animate-pulse"), g.Attr("aria-hidden", "true"), g.Text("|")),
			),
			P(Class(pal.Muted), g.Text(content.HeroIntro)),
			A(Href("#projects"), Class("inline-block mt-8 "+pal.Button), g.Text("View my work")),
		),
	)
}

// About renders the bio and skills grid.
func About(v Variant) g.Node {
	pal := v.Palette()
	return Section(
		ID("about"),
		Class(pal.About),
		surface(),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			H2(Class(pal.Heading), g.Text("About Me")),
			Div(
				Class("grid md:grid-cols-2 gap-12 items-center"),
				Img(Src("/static/img/profile.jpg"), Alt("Profile"), Class("w-64 h-64 object-cover"), g.Attr("loading", "lazy")),
				Div(g.Group(g.Map(content.AboutMe, func(p string) g.Node {
					return P(Class(pal.Muted+" mb-4"), g.Text(p))
				}))),
			),
			Div(
				Class("grid md:grid-cols-3 gap-8 mt-16"),
				g.Group(g.Map(content.Skills, func(s content.Skill) g.Node {
					return Div(
						Class(pal.SkillCard),
						g.Attr("data-icon", s.Icon),
						H3(Class("text-xl font-bold mb-2"), g.Text(s.Title)),
						P(Class(pal.Muted), g.Text(s.Description)),
					)
				})),
			),
		),
	)
}

// SiteFooter renders the page footer, the one dark section of the page.
func SiteFooter(v Variant, now time.Time) g.Node {
	pal := v.Palette()
	return Footer(
		ID("footer"),
		Class(pal.Footer),
		surface(),
		Div(
			Class("max-w-7xl mx-auto px-4 text-center space-y-2"),
			P(g.Text("Made with ♥ using Go, gin & gomponents")),
			P(g.Text(fmt.Sprintf("© %d %s. All rights reserved.", now.Year(), content.Owner))),
		),
	)
}
