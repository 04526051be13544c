package views

// Profile is the site owner shown in the header, about section and footer.
type Profile struct {
	Name      string
	Bio       string
	Photo     string // image path served by the site
	Copyright string
	SameAs    []string // profile URLs for JSON-LD
}

// SocialLink is an icon link in the about section.
type SocialLink struct {
	URL        string
	IconClass  string // Font Awesome classes
	Color      string
	HoverColor string
}

// Project is one card in the projects grid.
type Project struct {
	Title       string
	Description string
	ImageURL    string
	ImageAlt    string
}

// NavItem is a header navigation link.
type NavItem struct {
	URL  string
	Text string
}

// ContactForm carries the state of the contact form between renders.
// Name, Email and Message are echoed back after a failed submission.
type ContactForm struct {
	Action    string // form action; empty leaves the form inert
	CSRFToken string
	Name      string
	Email     string
	Message   string
	Error     string
	Sent      bool
}

// PageOptions holds the per-request inputs shared by every page assembler.
type PageOptions struct {
	SiteName    string
	SiteURL     string
	Stylesheets []string
	Contact     ContactForm
}

// EmbedMode selects how the blog visualization is placed on the page.
type EmbedMode int

const (
	// EmbedMissing renders the fallback block.
	EmbedMissing EmbedMode = iota
	// EmbedFrame loads the asset in a sandboxed iframe.
	EmbedFrame
	// EmbedInline writes sanitized asset HTML into the page.
	EmbedInline
)

// BlogEmbed describes the visualization and optional caption for the blog page.
type BlogEmbed struct {
	Mode  EmbedMode
	Src   string // iframe source for EmbedFrame
	HTML  string // sanitized markup for EmbedInline
	Title string // caption title from frontmatter
	Date  string
	// CaptionHTML is trusted HTML rendered from the caption Markdown.
	CaptionHTML string
}
