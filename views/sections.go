package views

import "github.com/pkeshava/portfolio/markup"

// containerWidths caps a centred container at the current breakpoint width.
var containerWidths = markup.Widths("max-width", "640px", "768px", "1024px", "1280px", "1536px")

// container centres children in a responsive column.
func container(padding markup.Style, children ...markup.Node) markup.Node {
	return markup.El("div", children...).
		Styled(markup.Style{
			"width":         "100%",
			"margin-left":   "auto",
			"margin-right":  "auto",
			"padding-left":  "1.5rem",
			"padding-right": "1.5rem",
		}).
		Styled(padding).
		At(containerWidths)
}

// Header shows the owner's name and the navigation links in order.
func Header(nav []NavItem) markup.Node {
	links := make([]markup.Node, 0, len(nav))
	for _, item := range nav {
		links = append(links, NavLink(item.URL, item.Text))
	}
	return markup.El("div",
		markup.El("a", markup.Text(Owner.Name)).
			Attr("href", "/").
			Styled(markup.Style{"font-weight": "500", "color": colorInk}),
		markup.El("nav", links...),
	).Styled(markup.Style{
		"display":         "flex",
		"align-items":     "center",
		"justify-content": "space-between",
	})
}

// HeaderContainer is the white, shadowed bar holding the header.
func HeaderContainer(nav []NavItem) markup.Node {
	return markup.El("header",
		container(markup.Style{"padding-top": "0.75rem", "padding-bottom": "0.75rem"}, Header(nav)),
	).Styled(markup.Style{
		"background-color": colorWhite,
		"box-shadow":       cardShadow,
	})
}

// AboutContent is the bio paragraph and the social icon row.
func AboutContent() markup.Node {
	icons := make([]markup.Node, 0, len(Socials))
	for _, s := range Socials {
		icons = append(icons, SocialIcon(markup.Style{"color": s.HoverColor}, s.Color, s.URL, s.IconClass))
	}
	return markup.El("div",
		LargeHeading("1rem", "About Me"),
		Paragraph(Owner.Bio).Styled(markup.Style{"margin-bottom": "1rem"}),
		markup.El("div", icons...).Styled(markup.Style{
			"display":    "flex",
			"column-gap": "1rem",
		}),
	)
}

// AboutSection places the round profile photo beside the about content,
// stacked on narrow screens.
func AboutSection() markup.Node {
	photo := markup.El("img").
		Attr("src", Owner.Photo).
		Attr("alt", Owner.Name).
		Styled(markup.Style{
			"height":        "12rem",
			"width":         "12rem",
			"object-fit":    "cover",
			"border-radius": "9999px",
		}).
		At(markup.Responsive("margin-bottom", map[string]string{"0px": "1rem", "768px": "0"})).
		At(markup.Responsive("margin-right", map[string]string{"768px": "2rem"}))

	return markup.El("section",
		markup.El("div", photo, AboutContent()).
			Styled(markup.Style{"display": "flex", "align-items": "center"}).
			At(markup.Responsive("flex-direction", map[string]string{"0px": "column", "768px": "row"})),
	).ID("about").Styled(markup.Style{"margin-bottom": "3rem"})
}

// ProjectDescription is the padded title and text below a card image.
func ProjectDescription(title, description string) markup.Node {
	return markup.El("div",
		MediumHeading("0.5rem", title),
		Paragraph(description),
	).Styled(markup.Style{"padding": "1rem"})
}

// ProjectCard renders one project.
func ProjectCard(p Project) markup.Node {
	return markup.El("article",
		ProjectImage(p.ImageAlt, p.ImageURL),
		ProjectDescription(p.Title, p.Description),
	).Styled(markup.Style{
		"background-color": colorWhite,
		"overflow":         "hidden",
		"border-radius":    "0.5rem",
		"box-shadow":       cardShadow,
	})
}

// ProjectGrid lays the cards out in one, two or three columns.
func ProjectGrid(projects []Project) markup.Node {
	cards := make([]markup.Node, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, ProjectCard(p))
	}
	return markup.El("div", cards...).
		Styled(markup.Style{"display": "grid", "gap": "1.5rem"}).
		At(markup.Responsive("grid-template-columns", map[string]string{
			"0px":    "repeat(1, minmax(0, 1fr))",
			"768px":  "repeat(2, minmax(0, 1fr))",
			"1024px": "repeat(3, minmax(0, 1fr))",
		}))
}

// ProjectsSection is the headed grid of the fixed project list.
func ProjectsSection() markup.Node {
	return markup.El("section",
		LargeHeading("1.5rem", "Projects"),
		ProjectGrid(Projects),
	).ID("projects").Styled(markup.Style{"margin-bottom": "3rem"})
}

// ContactFormNode renders the contact form. Without an action the form is
// inert: it renders but has nowhere to submit.
func ContactFormNode(f ContactForm) markup.Node {
	var children []markup.Node
	switch {
	case f.Sent:
		children = append(children, notice("Thanks! Your message was sent.", colorSuccess))
	case f.Error != "":
		children = append(children, notice(f.Error, colorError))
	}
	if f.CSRFToken != "" {
		children = append(children, csrfField(f.CSRFToken))
	}

	name := FormField("Name", "name", "name", "text")
	email := FormField("Email", "email", "email", "email")
	if f.Name != "" {
		name = withValue(name, f.Name)
	}
	if f.Email != "" {
		email = withValue(email, f.Email)
	}
	message := MessageTextarea()
	if f.Message != "" {
		// Parsers drop one newline right after <textarea>.
		message = message.Append(markup.Text("\n" + f.Message))
	}

	children = append(children,
		name,
		email,
		markup.El("div",
			FormLabel("Message").Attr("for", "message"),
			message,
		).Styled(markup.Style{"margin-bottom": "1rem"}),
		SubmitButton("Send Message"),
	)

	form := markup.El("form", children...).
		Attr("method", "post").
		Styled(markup.Style{
			"max-width":    "32rem",
			"margin-left":  "auto",
			"margin-right": "auto",
		})
	if f.Action != "" {
		form = form.Attr("action", f.Action)
	}
	return form
}

// ContactSection is the headed contact form.
func ContactSection(f ContactForm) markup.Node {
	return markup.El("section",
		LargeHeading("1.5rem", "Contact Me"),
		ContactFormNode(f),
	).ID("contact").Styled(markup.Style{"margin-bottom": "3rem"})
}

// Footer is the dark copyright bar.
func Footer() markup.Node {
	return markup.El("footer",
		container(markup.Style{"text-align": "center"}, markup.El("p", markup.Text(Owner.Copyright))),
	).Styled(markup.Style{
		"background-color": colorInk,
		"padding-top":      "1rem",
		"padding-bottom":   "1rem",
		"color":            colorWhite,
	})
}

// MainContent wraps page sections in the page container.
func MainContent(sections ...markup.Node) markup.Node {
	return markup.El("main",
		container(markup.Style{"padding-top": "2rem", "padding-bottom": "2rem"}, sections...),
	)
}

func notice(text, color string) markup.Node {
	return markup.El("p", markup.Text(text)).
		Attr("role", "status").
		Styled(markup.Style{"color": color, "margin-bottom": "1rem", "font-weight": "600"})
}

// withValue sets the value of the input inside a FormField.
func withValue(field markup.Node, value string) markup.Node {
	kids := make([]markup.Node, len(field.Children))
	for i, c := range field.Children {
		if c.Tag == "input" {
			c = c.Attr("value", value)
		}
		kids[i] = c
	}
	field.Children = kids
	return field
}
