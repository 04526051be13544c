package views

import (
	"strconv"

	"github.com/pkeshava/portfolio/markup"
)

// InboxMessage is one row of the admin inbox.
type InboxMessage struct {
	ID       string
	Name     string
	Email    string
	Message  string
	RemoteIP string
	Received string // human-readable age, e.g. "3 hours ago"
}

// Inbox is what the inbox page shows. Total counts every stored message,
// which may exceed len(Messages). Traffic is nil when analytics are off.
type Inbox struct {
	Messages []InboxMessage
	Total    int
	Traffic  *TrafficSummary
}

// TrafficSummary is the page view overview shown above the inbox.
type TrafficSummary struct {
	Days      int
	Views     int
	Visitors  int
	BotViews  int
	Pages     []TrafficRow
	Referrers []TrafficRow
	Browsers  []TrafficRow
}

// TrafficRow is one labelled count.
type TrafficRow struct {
	Label string
	Count int
}

func csrfField(token string) markup.Node {
	if token == "" {
		return markup.Fragment()
	}
	return markup.El("input").
		Attr("type", "hidden").
		Attr("name", "_csrf").
		Attr("value", token)
}

// LoginPage is the inbox password prompt.
func LoginPage(opts PageOptions, csrfToken string, failed bool) markup.Document {
	form := markup.El("form",
		csrfField(csrfToken),
		markup.El("div",
			FormLabel("Password").Attr("for", "password"),
			FormInput("password", "password", "password"),
		).Styled(markup.Style{"margin-bottom": "1rem"}),
		SubmitButton("Sign in"),
	).
		Attr("method", "post").
		Attr("action", "/admin/login/").
		Styled(markup.Style{"max-width": "24rem", "margin-left": "auto", "margin-right": "auto"})

	sections := []markup.Node{LargeHeading("1.5rem", "Inbox")}
	if failed {
		sections = append(sections, notice("Wrong password.", colorError))
	}
	sections = append(sections, form)
	return page(opts, pageTitle(opts, "Sign in"), PageNav, nil,
		markup.El("section", sections...).ID("login"))
}

func logoutForm(csrfToken string) markup.Node {
	return markup.El("form",
		csrfField(csrfToken),
		markup.El("button", markup.Text("Sign out")).
			Attr("type", "submit").
			Styled(markup.Style{"color": colorMuted, "text-decoration": "underline"}),
	).Attr("method", "post").Attr("action", "/admin/logout/")
}

var inboxHeaderStyle = markup.Style{
	"display":         "flex",
	"align-items":     "center",
	"justify-content": "space-between",
	"margin-bottom":   "1.5rem",
}

// InboxPage lists contact messages with a delete button each.
func InboxPage(opts PageOptions, csrfToken string, inbox Inbox) markup.Document {
	var rows []markup.Node
	for _, m := range inbox.Messages {
		rows = append(rows, inboxRow(m, csrfToken))
	}
	if len(rows) == 0 {
		rows = append(rows, Paragraph("No messages yet."))
	} else if inbox.Total > len(inbox.Messages) {
		rows = append(rows, Paragraph("Showing the newest "+strconv.Itoa(len(inbox.Messages))+
			" of "+strconv.Itoa(inbox.Total)+" messages.").ID("inbox-truncated"))
	}

	heading := "Inbox"
	if inbox.Total > 0 {
		heading += " (" + strconv.Itoa(inbox.Total) + ")"
	}

	return page(opts, pageTitle(opts, "Inbox"), PageNav, nil,
		trafficSection(inbox.Traffic),
		markup.El("section",
			markup.El("div", LargeHeading("0", heading), logoutForm(csrfToken)).Styled(inboxHeaderStyle),
			markup.El("div", rows...).Styled(markup.Style{"display": "grid", "gap": "1rem"}),
		).ID("inbox"),
	)
}

// MessagePage shows one message with the sender's address for follow-up.
func MessagePage(opts PageOptions, csrfToken string, m InboxMessage) markup.Document {
	back := markup.El("a", markup.Text("Back to inbox")).
		Attr("href", "/admin/").
		Styled(markup.Style{"color": colorAccent})

	return page(opts, pageTitle(opts, "Message from "+m.Name), PageNav, nil,
		markup.El("section",
			markup.El("div", back, logoutForm(csrfToken)).Styled(inboxHeaderStyle),
			inboxRow(m, csrfToken),
			markup.El("p", markup.Text("Sent from "+m.RemoteIP)).
				ID("remote-ip").
				Styled(markup.Style{"color": colorMuted, "font-size": "0.875rem", "margin-top": "0.5rem"}),
		).ID("message"),
	)
}

func trafficSection(t *TrafficSummary) markup.Node {
	if t == nil {
		return markup.Fragment()
	}
	stat := func(label string, n int) markup.Node {
		return markup.El("div",
			markup.El("dt", markup.Text(label)).Styled(markup.Style{"color": colorMuted, "font-size": "0.875rem"}),
			markup.El("dd", markup.Text(strconv.Itoa(n))).Styled(markup.Style{"color": colorInk, "font-size": "1.5rem", "font-weight": "700"}),
		)
	}
	list := func(title string, rows []TrafficRow) markup.Node {
		items := make([]markup.Node, 0, len(rows))
		for _, r := range rows {
			items = append(items, markup.El("li",
				markup.El("span", markup.Text(r.Label)),
				markup.El("span", markup.Text(strconv.Itoa(r.Count))).Styled(markup.Style{"color": colorMuted}),
			).Styled(markup.Style{"display": "flex", "justify-content": "space-between"}))
		}
		return markup.El("div",
			MediumHeading("0.5rem", title),
			markup.El("ul", items...),
		)
	}

	return markup.El("section",
		LargeHeading("1rem", "Last "+strconv.Itoa(t.Days)+" days"),
		markup.El("dl",
			stat("Views", t.Views),
			stat("Visitors", t.Visitors),
			stat("Crawler hits", t.BotViews),
		).Styled(markup.Style{"display": "grid", "grid-template-columns": "repeat(3, 1fr)", "gap": "1rem", "margin-bottom": "1rem"}),
		markup.El("div",
			list("Top pages", t.Pages),
			list("Referrers", t.Referrers),
			list("Browsers", t.Browsers),
		).Styled(markup.Style{"display": "grid", "grid-template-columns": "repeat(3, 1fr)", "gap": "1rem"}),
	).
		ID("traffic").
		Styled(markup.Style{"margin-bottom": "2rem"})
}

func inboxRow(m InboxMessage, csrfToken string) markup.Node {
	from := markup.El("a", markup.Text(m.Name+" <"+m.Email+">")).
		Attr("href", "mailto:"+m.Email).
		Styled(markup.Style{"color": colorInk, "font-weight": "600"})

	remove := markup.El("form",
		csrfField(csrfToken),
		markup.El("button", markup.Text("Delete")).
			Attr("type", "submit").
			Styled(markup.Style{"color": colorError}),
	).
		Attr("method", "post").
		Attr("action", "/admin/messages/"+m.ID+"/delete/")

	return markup.El("article",
		markup.El("div",
			from,
			markup.El("a", markup.El("time", markup.Text(m.Received))).
				Attr("href", "/admin/messages/"+m.ID+"/").
				Styled(markup.Style{"color": colorMuted, "font-size": "0.875rem"}),
		).Styled(markup.Style{"display": "flex", "justify-content": "space-between", "margin-bottom": "0.5rem"}),
		Paragraph(m.Message).Styled(markup.Style{"white-space": "pre-wrap", "margin-bottom": "0.5rem"}),
		remove,
	).
		ID("message-"+m.ID).
		Styled(markup.Style{
			"background-color": colorWhite,
			"border-radius":    "0.5rem",
			"box-shadow":       cardShadow,
			"padding":          "1rem",
		})
}

// NotFoundPage is served for unknown paths.
func NotFoundPage(opts PageOptions) markup.Document {
	return page(opts, pageTitle(opts, "Not Found"), PageNav, nil,
		markup.El("section",
			LargeHeading("1rem", "Page not found"),
			Paragraph("The page you are looking for does not exist."),
			NavLink("/", "Back to the home page").Styled(markup.Style{"padding-left": "0"}),
		).ID("not-found"),
	)
}

// ServerErrorPage is served when a handler fails.
func ServerErrorPage(opts PageOptions) markup.Document {
	return page(opts, pageTitle(opts, "Error"), PageNav, nil,
		markup.El("section",
			LargeHeading("1rem", "Something went wrong"),
			Paragraph("Please try again in a moment."),
		).ID("server-error"),
	)
}
