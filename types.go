package portfolio

import "time"

// ContactMessage is a visitor's contact form submission.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Message   string
	RemoteIP  string
	CreatedAt time.Time
}

// BlogAsset is the pre-generated visualization shown on the blog page.
type BlogAsset struct {
	Name     string // file name without extension, e.g. "bubble_plot"
	Content  []byte
	Hash     string // hex prefix of the content's SHA-256
	LoadedAt time.Time
	Caption  Caption
	// Inline is the sanitized markup used in inline mode.
	Inline string
}

// FileName is the content-addressed name the asset is served under.
func (b BlogAsset) FileName() string {
	return b.Name + "." + b.Hash + ".html"
}

// URL is the path the blog page frames.
func (b BlogAsset) URL() string {
	return "/assets/" + b.FileName()
}

// Caption is the optional text shown above the visualization.
type Caption struct {
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
	HTML  string `yaml:"-"`
}
