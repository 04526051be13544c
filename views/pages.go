package views

import "github.com/pkeshava/portfolio/markup"

// page wraps body sections in the shared header, container and footer.
func page(opts PageOptions, title string, nav []NavItem, head []markup.Node, sections ...markup.Node) markup.Document {
	stylesheets := opts.Stylesheets
	if stylesheets == nil {
		stylesheets = DefaultStylesheets
	}
	links := make([]markup.Node, 0, len(stylesheets)+len(head))
	for _, s := range stylesheets {
		links = append(links, StylesheetLink(s))
	}
	links = append(links, head...)

	return markup.Document{
		Lang:  "en",
		Title: title,
		Head:  links,
		Body: markup.El("div",
			HeaderContainer(nav),
			MainContent(sections...),
			Footer(),
		).Styled(markup.Style{
			"background-color": colorPage,
			"font-family":      fontStack,
			"min-height":       "100vh",
		}),
	}
}

func pageTitle(opts PageOptions, section string) string {
	name := opts.SiteName
	if name == "" {
		name = Owner.Name
	}
	if section == "" {
		return name
	}
	return section + " | " + name
}

// LandingPage assembles the about, projects and contact sections.
func LandingPage(opts PageOptions) markup.Document {
	jsonLD := markup.El("script", markup.Raw(PersonJsonLD(Owner, opts.SiteURL))).
		Attr("type", "application/ld+json")
	return page(opts, pageTitle(opts, ""), LandingNav, []markup.Node{jsonLD},
		AboutSection(),
		ProjectsSection(),
		ContactSection(opts.Contact),
	)
}

// ProjectsPage shows only the projects grid.
func ProjectsPage(opts PageOptions) markup.Document {
	return page(opts, pageTitle(opts, "Projects"), PageNav, nil, ProjectsSection())
}

// BlogPage embeds the visualization described by embed.
func BlogPage(opts PageOptions, embed BlogEmbed) markup.Document {
	var sections []markup.Node
	if embed.Title != "" || embed.CaptionHTML != "" {
		sections = append(sections, BlogCaption(embed))
	}
	sections = append(sections, Visualization(embed))
	return page(opts, pageTitle(opts, "Blog"), PageNav, nil, sections...)
}

// BlogCaption renders the caption heading, date and body.
func BlogCaption(embed BlogEmbed) markup.Node {
	var children []markup.Node
	if embed.Title != "" {
		children = append(children, LargeHeading("0.5rem", embed.Title))
	}
	if embed.Date != "" {
		children = append(children, markup.El("time", markup.Text(embed.Date)).
			Attr("datetime", embed.Date).
			Styled(markup.Style{"color": colorMuted, "font-size": "0.875rem"}))
	}
	if embed.CaptionHTML != "" {
		children = append(children, markup.El("div", markup.Raw(embed.CaptionHTML)).
			Class("caption").
			Styled(markup.Style{"color": colorMuted, "margin-top": "1rem"}))
	}
	return markup.El("section", children...).
		ID("caption").
		Styled(markup.Style{"margin-bottom": "2rem"})
}

// Visualization is the blog asset box. A missing asset renders a fixed
// fallback block instead of failing the page.
func Visualization(embed BlogEmbed) markup.Node {
	var content markup.Node
	state := "ready"
	switch embed.Mode {
	case EmbedFrame:
		content = markup.El("iframe").
			Attr("src", embed.Src).
			Attr("title", "Visualization").
			Attr("sandbox", "allow-scripts").
			Attr("loading", "lazy").
			Styled(markup.Style{"width": "100%", "height": "36rem", "border": "0"})
	case EmbedInline:
		content = markup.Raw(embed.HTML)
	default:
		state = "unavailable"
		content = Paragraph("The visualization is not available right now.")
	}
	return markup.El("div", content).
		ID("visualization").
		Attr("data-state", state).
		Styled(markup.Style{
			"border-radius": "2px",
			"width":         "50%",
			"margin":        "auto",
			"overflow":      "auto",
		}).
		At(markup.Responsive("padding", map[string]string{"0px": "1em", "480px": "2em", "768px": "3em"}))
}
