package views

import "github.com/pkeshava/portfolio/markup"

const (
	colorInk        = "#1F2937"
	colorMuted      = "#4B5563"
	colorLabel      = "#374151"
	colorBorder     = "#D1D5DB"
	colorAccent     = "#3B82F6"
	colorAccentDark = "#2563EB"
	colorPage       = "#F3F4F6"
	colorWhite      = "#ffffff"
	colorError      = "#B91C1C"
	colorSuccess    = "#047857"

	cardShadow = "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -1px rgba(0, 0, 0, 0.06)"
	fontStack  = `system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, "Noto Sans", sans-serif, "Apple Color Emoji", "Segoe UI Emoji", "Segoe UI Symbol", "Noto Color Emoji"`
)

// focusRing is shared by every focusable form control.
var focusRing = markup.Style{
	"outline-style":   "none",
	"box-shadow":      "var(--tw-ring-inset) 0 0 0 calc(2px + var(--tw-ring-offset-width)) var(--tw-ring-color)",
	"--tw-ring-color": colorAccent,
}

var controlStyle = markup.Style{
	"border-width":   "1px",
	"border-color":   colorBorder,
	"padding-left":   "0.75rem",
	"padding-right":  "0.75rem",
	"padding-top":    "0.5rem",
	"padding-bottom": "0.5rem",
	"border-radius":  "0.375rem",
	"width":          "100%",
}

// HeadingWeight selects one of the two heading styles used on the site.
type HeadingWeight int

const (
	// Bold is the section heading: h2, weight 700.
	Bold HeadingWeight = iota
	// Semibold is the card heading: h3, weight 600.
	Semibold
)

// Heading builds a heading at the given weight.
func Heading(weight HeadingWeight, marginBottom, text string) markup.Node {
	if weight == Semibold {
		return markup.El("h3", markup.Text(text)).Styled(markup.Style{
			"font-weight":   "600",
			"margin-bottom": marginBottom,
			"color":         colorInk,
			"font-size":     "1.25rem",
			"line-height":   "1.75rem",
		})
	}
	return markup.El("h2", markup.Text(text)).Styled(markup.Style{
		"font-weight":   "700",
		"margin-bottom": marginBottom,
		"font-size":     "1.875rem",
		"line-height":   "2.25rem",
		"color":         colorInk,
	})
}

// LargeHeading is Heading(Bold, ...).
func LargeHeading(marginBottom, text string) markup.Node {
	return Heading(Bold, marginBottom, text)
}

// MediumHeading is Heading(Semibold, ...).
func MediumHeading(marginBottom, text string) markup.Node {
	return Heading(Semibold, marginBottom, text)
}

// StylesheetLink references an external stylesheet.
func StylesheetLink(url string) markup.Node {
	return markup.El("link").Attr("href", url).Attr("rel", "stylesheet")
}

// NavLink is a header navigation link.
func NavLink(url, text string) markup.Node {
	return markup.El("a", markup.Text(text)).
		Attr("href", url).
		Styled(markup.Style{
			"padding-left":   "0.75rem",
			"padding-right":  "0.75rem",
			"padding-top":    "0.5rem",
			"padding-bottom": "0.5rem",
			"color":          colorMuted,
		}).
		OnHover(markup.Style{"color": colorInk})
}

// Icon is a Font Awesome icon.
func Icon(class string) markup.Node {
	return markup.El("i").Class(class)
}

// SocialIcon links to url in a new tab, showing iconClass in color.
func SocialIcon(hover markup.Style, color, url, iconClass string) markup.Node {
	return markup.El("a", Icon(iconClass)).
		Attr("href", url).
		Attr("target", "_blank").
		Attr("rel", "noopener noreferrer").
		Styled(markup.Style{"color": color}).
		OnHover(hover)
}

// Paragraph is body text in the muted color.
func Paragraph(text string) markup.Node {
	return markup.El("p", markup.Text(text)).Styled(markup.Style{"color": colorMuted})
}

// ProjectImage is the cover image of a project card.
func ProjectImage(alt, src string) markup.Node {
	return markup.El("img").
		Attr("src", src).
		Attr("alt", alt).
		Styled(markup.Style{
			"height":     "12rem",
			"object-fit": "cover",
			"width":      "100%",
		})
}

func FormLabel(text string) markup.Node {
	return markup.El("label", markup.Text(text)).Styled(markup.Style{
		"display":       "block",
		"font-weight":   "700",
		"margin-bottom": "0.5rem",
		"color":         colorLabel,
	})
}

// FormInput is a required single-line input.
func FormInput(id, name, inputType string) markup.Node {
	return markup.El("input").
		Attr("type", inputType).
		Attr("id", id).
		Attr("name", name).
		Bool("required").
		Styled(controlStyle).
		OnFocus(focusRing)
}

// FormField pairs a label with its input.
func FormField(label, id, name, inputType string) markup.Node {
	return markup.El("div",
		FormLabel(label).Attr("for", id),
		FormInput(id, name, inputType),
	).Styled(markup.Style{"margin-bottom": "1rem"})
}

// MessageTextarea is the required multi-line message control.
func MessageTextarea() markup.Node {
	return markup.El("textarea").
		Attr("id", "message").
		Attr("name", "message").
		Attr("rows", "4").
		Bool("required").
		Styled(controlStyle).
		OnFocus(focusRing)
}

func SubmitButton(text string) markup.Node {
	return markup.El("button", markup.Text(text)).
		Attr("type", "submit").
		Styled(markup.Style{
			"background-color": colorAccent,
			"font-weight":      "700",
			"padding-left":     "1rem",
			"padding-right":    "1rem",
			"padding-top":      "0.5rem",
			"padding-bottom":   "0.5rem",
			"border-radius":    "0.25rem",
			"color":            colorWhite,
		}).
		OnHover(markup.Style{"background-color": colorAccentDark}).
		OnFocus(focusRing)
}
