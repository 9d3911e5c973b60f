package view

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/portfolio/internal/projects"
)

// placeholderImage is shown until a card scrolls near the viewport.
const placeholderImage = "data:image/gif;base64,R0lGODlhAQABAAAAACw="

// ProjectsPlaceholder stands in for the gallery until it is revealed, then
// HTMX swaps in /sections/projects.
func ProjectsPlaceholder(v Variant) g.Node {
	pal := v.Palette()
	return Section(
		ID("projects"),
		Class(pal.Projects),
		surface(),
		g.Attr("hx-get", "/sections/projects"),
		g.Attr("hx-trigger", "revealed"),
		g.Attr("hx-swap", "outerHTML"),
		Div(
			Class("max-w-7xl mx-auto px-4 h-96 flex items-center justify-center"),
			Div(Class(pal.Muted), g.Text("Loading projects...")),
		),
	)
}

// Projects renders the gallery section.
func Projects(v Variant, items []projects.Project) g.Node {
	pal := v.Palette()
	return Section(
		ID("projects"),
		Class(pal.Projects),
		surface(),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 relative z-10"),
			Span(Class(pal.Eyebrow), g.Text(pal.EyebrowMark+"Portfolio")),
			H2(Class(pal.ProjectsHeading), g.Text("Selected Works")),
			P(Class(pal.Muted), g.Text("A collection of projects that showcase my approach to design, development, and creative problem-solving.")),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6 mt-16"),
				g.Group(g.Map(items, func(p projects.Project) g.Node { return ProjectCard(v, p) })),
			),
		),
	)
}

func imageFitClass(pal Palette, p projects.Project) string {
	if p.ImageFit == projects.FitContain {
		return pal.ContainFit
	}
	return "w-full h-full object-cover"
}

// ProjectCard renders one gallery entry. Clicking it loads the modal; the
// image source is filled in when the card nears the viewport.
func ProjectCard(v Variant, p projects.Project) g.Node {
	pal := v.Palette()
	return Article(
		ID("project-"+p.Slug),
		Class(pal.Card),
		g.Attr("hx-get", "/projects/"+p.Slug),
		g.Attr("hx-target", "#modal"),
		g.Attr("hx-swap", "innerHTML"),
		g.Attr("role", "button"),
		g.Attr("tabindex", "0"),
		Div(
			Class("relative h-56 overflow-hidden"),
			Img(
				ID("img-"+p.Slug),
				Src(placeholderImage),
				g.Attr("data-src", p.Image),
				Alt(p.Title),
				Class(imageFitClass(pal, p)),
			),
		),
		Div(
			Class("p-6 flex-1 flex flex-col"),
			H3(Class("text-2xl font-bold mb-2"), g.Text(p.Title)),
			P(Class(pal.Muted+" mb-4"), g.Text(p.Description)),
			tags(pal, p.Tags),
			links(p, "mt-auto pt-4 flex flex-wrap gap-3"),
		),
	)
}

func tags(pal Palette, ts []string) g.Node {
	return Div(
		Class("flex flex-wrap gap-2"),
		g.Group(g.Map(ts, func(t string) g.Node {
			return Span(Class(pal.Tag), g.Text(t))
		})),
	)
}

// links renders only the links the project has. Clicks on them must not
// open the modal.
func links(p projects.Project, cls string) g.Node {
	ls := p.Links()
	if len(ls) == 0 {
		return nil
	}
	return Div(
		Class(cls),
		g.Group(g.Map(ls, func(l projects.Link) g.Node {
			return A(
				Href(l.URL),
				Target("_blank"),
				Rel("noopener noreferrer"),
				g.Attr("hx-on:click", "event.stopPropagation()"),
				Class("underline font-mono text-sm"),
				g.Text(l.Label),
			)
		})),
	)
}

// ModalRoot is the empty container project modals are swapped into.
func ModalRoot() g.Node {
	return Div(ID("modal"))
}

// ProjectModal renders the detail view of p. Clicking the backdrop or the
// close button empties #modal.
func ProjectModal(v Variant, p projects.Project) g.Node {
	pal := v.Palette()
	closeAttrs := []g.Node{
		g.Attr("hx-get", "/modal/close"),
		g.Attr("hx-target", "#modal"),
		g.Attr("hx-swap", "innerHTML"),
	}
	return Div(
		Class(pal.Backdrop),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),
		g.Attr("aria-labelledby", "modal-title"),
		g.Attr("hx-trigger", "click[target==this], keyup[key=='Escape'] from:body"),
		g.Group(closeAttrs),
		Div(
			Class(pal.Modal),
			Div(
				Class("relative h-80 overflow-hidden"),
				Img(Src(p.Image), Alt(p.Title), Class(imageFitClass(pal, p))),
				Button(
					Type("button"),
					Class(pal.CloseButton),
					g.Attr("aria-label", "Close"),
					g.Group(closeAttrs),
					g.Text("×"),
				),
			),
			Div(
				Class("p-4 sm:p-8 max-h-[65vh] overflow-y-auto"),
				H2(ID("modal-title"), Class("text-3xl font-black mb-4"), g.Text(p.Title)),
				tags(pal, p.Tags),
				P(Class(pal.Muted+" my-6"), g.Text(p.DetailedDescription)),
				g.If(len(p.Tools) > 0, Div(
					H3(Class("text-xl font-bold mb-4"), g.Text("Tools & Technologies")),
					Ul(Class("grid sm:grid-cols-2 gap-4"), g.Group(g.Map(p.Tools, func(t projects.Tool) g.Node {
						return Li(Class(pal.SkillCard), Strong(g.Text(t.Name)), P(Class("text-sm"), g.Text(t.Purpose)))
					}))),
				)),
				g.If(len(p.Steps) > 0, Div(
					Class("mt-8"),
					H3(Class("text-xl font-bold mb-4"), g.Text("Process")),
					Ol(Class("space-y-3"), g.Group(g.Map(steps(p.Steps), func(s numberedStep) g.Node {
						return Li(
							Span(Class(pal.StepNumber), g.Text(fmt.Sprintf("%02d", s.n))),
							Strong(g.Text(s.Title)),
							P(Class("text-sm"), g.Text(s.Description)),
						)
					}))),
				)),
				links(p, "mt-8 flex flex-wrap gap-4"),
			),
		),
	)
}

type numberedStep struct {
	projects.Step
	n int
}

func steps(ss []projects.Step) []numberedStep {
	out := make([]numberedStep, len(ss))
	for i, s := range ss {
		out[i] = numberedStep{Step: s, n: i + 1}
	}
	return out
}
