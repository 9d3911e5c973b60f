package view

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/portfolio/internal/store"
)

// AdminLogin renders the admin sign-in form.
func AdminLogin(errMsg string) g.Node {
	return Page(
		PageProps{Title: "Admin Login", Variant: Brutalist},
		Div(
			Class("max-w-sm mx-auto mt-32 space-y-6"),
			H1(Class("text-3xl font-black"), g.Text("Admin Login")),
			g.If(errMsg != "", Div(ID("login-error"), Class(Brutalist.Palette().Error), g.Text(errMsg))),
			g.El("form",
				Method("post"),
				Action("/admin/login"),
				Class("space-y-4"),
				Input(Type("text"), Name("username"), Placeholder("Username"), Required(), Class(Brutalist.Palette().Input)),
				Input(Type("password"), Name("password"), Placeholder("Password"), Required(), Class(Brutalist.Palette().Input)),
				Button(Type("submit"), Class(Brutalist.Palette().Button), g.Text("Sign in")),
			),
		),
	)
}

// AdminDashboard renders the visit and message summary.
func AdminDashboard(s *store.Stats) g.Node {
	pal := Brutalist.Palette()
	stat := func(label string, n int64) g.Node {
		return Div(Class(pal.SkillCard), P(Class("font-mono text-sm uppercase"), g.Text(label)), P(Class("text-3xl font-black"), g.Text(fmt.Sprint(n))))
	}
	return Page(
		PageProps{Title: "Admin Dashboard", Variant: Brutalist},
		Div(
			Class("max-w-5xl mx-auto my-16 px-4 space-y-12"),
			Div(
				Class("flex justify-between items-center"),
				H1(Class("text-4xl font-black"), g.Text("Dashboard")),
				A(Href("/admin/logout"), Class("underline font-mono"), g.Text("Log out")),
			),
			Div(
				Class("grid grid-cols-2 md:grid-cols-5 gap-4"),
				stat("Visits", s.TotalVisitors),
				stat("Unique", s.UniqueVisitors),
				stat("Today", s.VisitorsToday),
				stat("This week", s.VisitorsThisWeek),
				stat("Messages", s.TotalMessages),
			),
			H2(Class("text-2xl font-black"), g.Text("Top pages")),
			Table(
				Class("w-full font-mono text-sm"),
				g.Group(g.Map(s.TopPaths, func(p store.Path) g.Node {
					return Tr(Td(g.Text(p.Path)), Td(g.Text(fmt.Sprint(p.Views))))
				})),
			),
			H2(Class("text-2xl font-black"), g.Text("Recent messages")),
			Table(
				ID("messages"),
				Class("w-full font-mono text-sm"),
				g.Group(g.Map(s.RecentMessages, func(m store.Message) g.Node {
					return Tr(
						ID("message-"+m.ID),
						Td(g.Text(m.CreatedAt.Format("2006-01-02 15:04"))),
						Td(g.Text(m.Name)),
						Td(A(Href("mailto:"+m.Email), g.Text(m.Email))),
						Td(Button(
							Type("button"),
							g.Attr("hx-delete", "/admin/messages/"+m.ID),
							g.Attr("hx-target", "#message-"+m.ID),
							g.Attr("hx-swap", "outerHTML"),
							g.Attr("hx-confirm", "Delete this message?"),
							g.Text("Delete"),
						)),
					)
				})),
			),
		),
	)
}

// Privacy explains what the site records about visitors.
func Privacy() g.Node {
	pal := Brutalist.Palette()
	return Page(
		PageProps{Title: "Privacy Policy", Variant: Brutalist},
		Div(
			Class("max-w-2xl mx-auto my-24 px-4 space-y-6"),
			H1(Class(pal.Heading), g.Text("Privacy")),
			P(Class(pal.Muted), g.Text("Page views are counted with a salted, truncated hash of your IP address. The raw address is never stored, and records older than the retention period are deleted automatically.")),
			P(Class(pal.Muted), g.Text("If your browser sends Do Not Track, nothing is recorded at all.")),
			P(Class(pal.Muted), g.Text("Messages sent through the contact form are delivered by email; only your name, address and the time are kept so they can be answered.")),
			A(Href("/"), Class("underline font-mono"), g.Text("Back to the site")),
		),
	)
}
