// Package nav builds the storefront header navigation and breadcrumbs.
package nav

import (
	"path"
	"strings"
)

// Item represents a top-level navigation item. An empty Path renders as an inert
// "#" link.
type Item struct {
	Path     string // e.g. "/products"
	LabelKey string // i18n key, e.g. "nav.products"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Crumb represents a breadcrumb entry. If LabelKey is empty, use Label.
type Crumb struct {
	Href     string
	LabelKey string
	Label    string
	Active   bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/", LabelKey: "nav.home"},
	{Path: "/products", LabelKey: "nav.products"},
	{LabelKey: "nav.shops"},
	{LabelKey: "nav.offers"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		if it.Path == "" {
			items = append(items, RenderedItem{Href: "#", LabelKey: it.LabelKey})
			continue
		}
		items = append(items, RenderedItem{
			Href:     it.Path,
			LabelKey: it.LabelKey,
			Active:   isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Mobile is the collapsible navigation state for narrow viewports.
type Mobile struct {
	Open bool
}

// ToggleLabelKey is the accessible label of the menu button for the current state.
func (m Mobile) ToggleLabelKey() string {
	if m.Open {
		return "nav.close_menu"
	}
	return "nav.open_menu"
}

// Breadcrumbs builds breadcrumb entries from the current path. The last segment
// uses leaf as its label when provided.
func Breadcrumbs(currentPath, leaf string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", LabelKey: "nav.home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}
	parts := strings.Split(strings.TrimPrefix(path.Clean(currentPath), "/"), "/")
	href := ""
	for i, seg := range parts {
		if seg == "" {
			continue
		}
		href += "/" + seg
		c := Crumb{Href: href, Label: titleFromSegment(seg), Active: i == len(parts)-1}
		if i == 0 {
			for _, it := range Main {
				if it.Path == href {
					c.LabelKey = it.LabelKey
					break
				}
			}
		}
		if c.Active && leaf != "" {
			c.Label = leaf
			c.LabelKey = ""
		}
		crumbs = append(crumbs, c)
	}
	return crumbs
}

func titleFromSegment(seg string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(seg)
	if s == "" {
		return s
	}
	// slugs are ASCII
	if c := s[0]; c >= 'a' && c <= 'z' {
		s = string(c-('a'-'A')) + s[1:]
	}
	return s
}
