package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
)

// Contact renders the contact section with an empty form.
func Contact(v Variant) g.Node {
	pal := v.Palette()
	return Section(
		ID("contact"),
		Class(pal.Contact),
		surface(),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("text-center mb-16"),
				H2(Class(pal.Heading), g.Text("Get In Touch")),
				P(Class(pal.Muted+" max-w-2xl mx-auto"), g.Text(content.ContactIntro)),
			),
			Div(
				Class("grid md:grid-cols-2 gap-12 items-start"),
				ContactForm(v, contact.Outcome{}),
				Div(
					Class("space-y-8"),
					H3(Class("text-2xl font-bold mb-4"), g.Text("Let's Connect")),
					P(Class(pal.Muted), g.Text(content.ConnectIntro)),
					H4(Class("text-lg font-semibold"), g.Text("Find me on")),
					Div(
						Class("flex flex-wrap gap-4"),
						g.Group(g.Map(content.SocialLinks, func(l content.SocialLink) g.Node {
							return A(
								Href(l.URL),
								Target("_blank"),
								Rel("noopener noreferrer"),
								Class(pal.Social),
								Span(Class("font-medium"), g.Text(l.Name)),
							)
						})),
					),
				),
			),
		),
	)
}

// ContactForm renders the form with the values and status of out. A zero
// Outcome is a fresh form with no status line.
func ContactForm(v Variant, out contact.Outcome) g.Node {
	pal := v.Palette()
	return g.El("form",
		ID("contact-form"),
		Method("post"),
		Action("/contact"),
		g.Attr("hx-post", "/contact"),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-disabled-elt", "find button"),
		Class("space-y-6"),
		field(pal, "name", "Name", "text", out.Form.Name, "Tom Konarski"),
		field(pal, "email", "Email", "email", out.Form.Email, "your.email@example.com"),
		Div(
			g.El("label", g.Attr("for", "message"), Class("block text-sm font-medium mb-2"), g.Text("Message")),
			Textarea(
				ID("message"),
				Name("message"),
				Required(),
				g.Attr("rows", "5"),
				Class(pal.Input+" resize-none"),
				Placeholder("Tell me about your project..."),
				g.Text(out.Form.Message),
			),
		),
		ContactStatus(v, out),
		Button(
			Type("submit"),
			Class(pal.Button),
			Span(Class("htmx-indicator"), g.Text("Sending...")),
			Span(g.Text("Send Message")),
		),
	)
}

func field(pal Palette, name, label, typ, value, placeholder string) g.Node {
	return Div(
		g.El("label", g.Attr("for", name), Class("block text-sm font-medium mb-2"), g.Text(label)),
		Input(
			Type(typ),
			ID(name),
			Name(name),
			Value(value),
			Required(),
			Class(pal.Input),
			Placeholder(placeholder),
		),
	)
}

// ContactStatus renders the status line of out, or nothing.
func ContactStatus(v Variant, out contact.Outcome) g.Node {
	if out.Message == "" {
		return nil
	}
	pal := v.Palette()
	cls := pal.Error
	if out.OK() {
		cls = pal.Success
	}
	return Div(
		ID("contact-status"),
		Class(cls),
		g.Attr("role", "status"),
		g.Attr("data-status", string(out.Status)),
		g.Text(out.Message),
	)
}
