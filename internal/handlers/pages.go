package handlers

import (
	"html/template"

	"puregrind.shop/storefront/internal/nav"
	"puregrind.shop/storefront/internal/theme"
)

// PageData is the view model for pages using the shared layout.
type PageData struct {
	Title     string
	Lang      string
	Theme     theme.Theme
	SEO       SEOData
	Analytics Analytics
	CSRFToken string

	Path        string
	Header      HeaderView
	Breadcrumbs []nav.Crumb

	// Optional per-page payloads
	Product  any
	NotFound bool
}

// HeaderView feeds the site header and its swappable fragments.
type HeaderView struct {
	Lang     string
	UserName string
	Nav      NavView
	Theme    ThemeToggleView
}

// NavView is the data for the navigation fragment (links + mobile toggle + backdrop).
type NavView struct {
	Lang      string
	CSRFToken string
	Items     []nav.RenderedItem
	Mobile    nav.Mobile
}

// ThemeToggleView is the data for the theme toggle fragment.
type ThemeToggleView struct {
	Lang      string
	CSRFToken string
	Theme     theme.Theme
}

// Next is the theme the toggle switches to; the button is labelled with it.
func (v ThemeToggleView) Next() theme.Theme { return v.Theme.Toggle() }

// BuildHeader assembles the header view for a request path. csrf is embedded in
// the header's POST forms.
func BuildHeader(lang, path, userName, csrf string, navOpen bool, th theme.Theme) HeaderView {
	return HeaderView{
		Lang:     lang,
		UserName: userName,
		Nav: NavView{
			Lang:      lang,
			CSRFToken: csrf,
			Items:     nav.Build(path),
			Mobile:    nav.Mobile{Open: navOpen},
		},
		Theme: ThemeToggleView{Lang: lang, CSRFToken: csrf, Theme: th},
	}
}

// SEOData carries head metadata.
type SEOData struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          struct {
		Title       string
		Description string
		Image       string
		Type        string
		URL         string
		SiteName    string
	}
	Twitter struct {
		Card  string
		Image string
	}
	Alternates []Alternate
	JSONLD     []template.JS
}

// Alternate is an hreflang link.
type Alternate struct {
	Href     string
	Hreflang string
}
