package view

import (
	"time"

	g "maragu.dev/gomponents"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/scrollspy"
	"github.com/Zachkp/portfolio/internal/theme"
)

// HomeProps are the inputs of the landing page.
type HomeProps struct {
	Theme   theme.Theme
	Variant Variant
	Now     time.Time
}

// Home is the full single-page site. The project gallery is deferred until
// it scrolls into view.
func Home(p HomeProps) g.Node {
	return Page(
		PageProps{
			Title:       content.Owner + " | Portfolio",
			Description: content.HeroIntro,
			Theme:       p.Theme,
			Variant:     p.Variant,
		},
		ThemeToggle(p.Variant, p.Theme),
		Navigation(p.Variant, scrollspy.Default),
		g.El("main",
			g.Attr("class", "overflow-x-hidden w-full max-w-full"),
			Hero(p.Variant),
			About(p.Variant),
			ProjectsPlaceholder(p.Variant),
			Contact(p.Variant),
		),
		SiteFooter(p.Variant, p.Now),
		ModalRoot(),
	)
}
