package views

// Site content is compiled in. Nothing outside this file populates it.

var Owner = Profile{
	Name:      "Pouyan Keshavarzian, Ph.D.",
	Bio:       "Mixed-signal integrated circuit designer. Scientific researcher. Avid python and Julia tool developer.",
	Photo:     "/photo4.png",
	Copyright: "© 2025 Pouyan Keshavarzian. All rights reserved.",
	SameAs: []string{
		"https://www.linkedin.com/in/keshavarzian/",
		"https://github.com/pkeshava",
	},
}

var Socials = []SocialLink{
	{
		URL:        "https://www.linkedin.com/in/keshavarzian/",
		IconClass:  "fa-2x fa-linkedin fab",
		Color:      "#2563EB",
		HoverColor: "#1E40AF",
	},
	{
		URL:        "https://github.com/pkeshava",
		IconClass:  "fa-2x fa-github fab",
		Color:      "#1F2937",
		HoverColor: "#4B5563",
	},
	{
		URL:        "https://scholar.google.com/citations?user=nVpmtE8AAAAJ&hl=en",
		IconClass:  "fa-2x fa-graduation-cap fas",
		Color:      "#059669",
		HoverColor: "#065F46",
	},
}

var Projects = []Project{
	{
		Title:       "Project 1",
		Description: "A brief description of Project 1 and its key features.",
		ImageURL:    "https://placehold.co/400x200?text=Project+1",
		ImageAlt:    "Project 1",
	},
	{
		Title:       "Project 2",
		Description: "A brief description of Project 2 and its key features.",
		ImageURL:    "https://placehold.co/400x200?text=Project+2",
		ImageAlt:    "Project 2",
	},
	{
		Title:       "Project 3",
		Description: "A brief description of Project 3 and its key features.",
		ImageURL:    "https://placehold.co/400x200?text=Project+3",
		ImageAlt:    "Project 3",
	},
}

// LandingNav links to sections of the landing page and to the other pages.
var LandingNav = []NavItem{
	{URL: "#about", Text: "About"},
	{URL: "/projects", Text: "Projects"},
	{URL: "#contact", Text: "Contact"},
	{URL: "/blog", Text: "Blog"},
}

// PageNav is LandingNav as seen from pages other than the landing page.
var PageNav = []NavItem{
	{URL: "/#about", Text: "About"},
	{URL: "/projects", Text: "Projects"},
	{URL: "/#contact", Text: "Contact"},
	{URL: "/blog", Text: "Blog"},
}

// DefaultStylesheets are linked from every page.
var DefaultStylesheets = []string{
	"https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css",
	"https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.1.1/css/all.min.css",
}
