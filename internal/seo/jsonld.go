package seo

import (
	"encoding/json"
	"html/template"
	"strconv"
)

// JSON marshals v for embedding in a <script type="application/ld+json"> block.
// It returns an empty string on error.
func JSON(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return template.JS(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// ProductInfo is the subset of product data published as structured data.
type ProductInfo struct {
	Name        string
	Description string
	URL         string
	Images      []string
	SKU         string
	Brand       string
	Price       int64 // whole currency units
	Currency    string
	InStock     bool
	Rating      int
}

// Product returns a schema.org Product payload with a single Offer.
func Product(p ProductInfo) map[string]any {
	m := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Product",
		"name":        p.Name,
		"description": p.Description,
	}
	if p.URL != "" {
		m["url"] = p.URL
	}
	if len(p.Images) > 0 {
		m["image"] = p.Images
	}
	if p.SKU != "" {
		m["sku"] = p.SKU
	}
	if p.Brand != "" {
		m["brand"] = map[string]any{"@type": "Brand", "name": p.Brand}
	}
	availability := "https://schema.org/OutOfStock"
	if p.InStock {
		availability = "https://schema.org/InStock"
	}
	m["offers"] = map[string]any{
		"@type":         "Offer",
		"price":         strconv.FormatInt(p.Price, 10),
		"priceCurrency": p.Currency,
		"availability":  availability,
	}
	if p.Rating > 0 {
		m["aggregateRating"] = map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": p.Rating,
			"bestRating":  5,
			"ratingCount": 1,
		}
	}
	return m
}
