// Package catalog loads product definitions from markdown files with YAML front matter.
package catalog

import (
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when a product cannot be located.
var ErrNotFound = errors.New("catalog: not found")

const (
	defaultContentDir = "content"
	productsKind      = "products"
	defaultLang       = "en"
	defaultCurrency   = "INR"
	// MaxQuantity caps the quantity stepper regardless of stock.
	MaxQuantity = 49
)

// Product is a catalog entry rendered on the product page.
type Product struct {
	Slug             string
	Lang             string
	Title            string
	Brand            string
	Summary          string
	Currency         string
	Price            int64 // whole currency units
	OriginalPrice    int64
	Stock            int
	Rating           int
	Images           []Image
	DescriptionTitle string
	DescriptionMD    string
	DescriptionHTML  template.HTML
	Badge            Badge
	UpdatedAt        time.Time
}

// Image is a gallery entry.
type Image struct {
	Src string
	Alt string
}

// Badge holds copy for the quality badge and its overlay video.
type Badge struct {
	Label   string
	CTA     string
	VideoID string
	Video   string // overlay title
}

// DiscountPercent returns the rounded-down discount against the original price, or 0.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice <= 0 || p.Price >= p.OriginalPrice {
		return 0
	}
	return int((p.OriginalPrice - p.Price) * 100 / p.OriginalPrice)
}

// InStock reports whether any units remain.
func (p Product) InStock() bool { return p.Stock > 0 }

// Stepper returns the quantity bounds for this product: [1, min(stock, MaxQuantity)].
// Out-of-stock products are pinned at 1 so neither button is enabled.
func (p Product) Stepper() Stepper {
	if !p.InStock() {
		return Stepper{Min: 1, Max: 1}
	}
	return Stepper{Min: 1, Max: min(p.Stock, MaxQuantity)}
}

type productFrontMatter struct {
	Title            string   `yaml:"title"`
	Brand            string   `yaml:"brand"`
	Summary          string   `yaml:"summary"`
	Lang             string   `yaml:"lang"`
	Currency         string   `yaml:"currency"`
	Price            int64    `yaml:"price"`
	OriginalPrice    int64    `yaml:"original_price"`
	Stock            int      `yaml:"stock"`
	Rating           int      `yaml:"rating"`
	DescriptionTitle string   `yaml:"description_title"`
	UpdatedAt        string   `yaml:"updated_at"`
	Images           []string `yaml:"images"`
	ImageAlt         string   `yaml:"image_alt"`
	Badge            struct {
		Label   string `yaml:"label"`
		CTA     string `yaml:"cta"`
		VideoID string `yaml:"video_id"`
		Video   string `yaml:"video_title"`
	} `yaml:"badge"`
}

// Catalog reads products from <dir>/products/<lang>/<slug>.md and caches them.
type Catalog struct {
	dir string
	ttl time.Duration

	mu    sync.RWMutex
	items map[string]cacheEntry
}

type cacheEntry struct {
	product Product
	expires time.Time
}

// New returns a catalog rooted at dir. A non-positive ttl defaults to five minutes.
func New(dir string, ttl time.Duration) *Catalog {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = defaultContentDir
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Catalog{dir: dir, ttl: ttl, items: map[string]cacheEntry{}}
}

// Dir returns the content directory.
func (c *Catalog) Dir() string { return c.dir }

// Get returns the product for slug, preferring lang and falling back to English.
func (c *Catalog) Get(slug, lang string) (Product, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Product{}, ErrNotFound
	}
	lang = normalizeLang(lang)
	key := lang + "|" + slug
	if p, ok := c.cached(key); ok {
		return p, nil
	}
	priority := []string{lang}
	if lang != defaultLang {
		priority = append(priority, defaultLang)
	}
	for _, candidate := range priority {
		p, err := readProduct(c.dir, slug, candidate)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return Product{}, err
		}
		c.store(key, p)
		return cloneProduct(p), nil
	}
	return Product{}, ErrNotFound
}

// Slugs lists the products available in lang, sorted.
func (c *Catalog) Slugs(lang string) ([]string, error) {
	dir := filepath.Join(c.dir, productsKind, normalizeLang(lang))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("catalog: list %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(out)
	return out, nil
}

func readProduct(dir, slug, lang string) (Product, error) {
	file := filepath.Join(dir, productsKind, lang, slug+".md")
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	fm, body := splitFrontMatter(string(data))
	front := productFrontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Product{}, fmt.Errorf("catalog: parse front matter %s: %w", file, err)
		}
	}
	html, err := RenderMarkdown(body)
	if err != nil {
		return Product{}, fmt.Errorf("catalog: render %s: %w", file, err)
	}
	p := Product{
		Slug:             slug,
		Lang:             firstNonEmpty(strings.TrimSpace(front.Lang), lang),
		Title:            strings.TrimSpace(front.Title),
		Brand:            strings.TrimSpace(front.Brand),
		Summary:          strings.TrimSpace(front.Summary),
		Currency:         strings.ToUpper(firstNonEmpty(strings.TrimSpace(front.Currency), defaultCurrency)),
		Price:            front.Price,
		OriginalPrice:    front.OriginalPrice,
		Stock:            front.Stock,
		Rating:           clampRating(front.Rating),
		DescriptionTitle: strings.TrimSpace(front.DescriptionTitle),
		DescriptionMD:    body,
		DescriptionHTML:  html,
		Badge: Badge{
			Label:   strings.TrimSpace(front.Badge.Label),
			CTA:     strings.TrimSpace(front.Badge.CTA),
			VideoID: strings.TrimSpace(front.Badge.VideoID),
			Video:   strings.TrimSpace(front.Badge.Video),
		},
		UpdatedAt: parseDate(front.UpdatedAt),
	}
	if p.Title == "" {
		p.Title = prettifySlug(slug)
	}
	alt := firstNonEmpty(strings.TrimSpace(front.ImageAlt), p.Title)
	for i, src := range front.Images {
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		p.Images = append(p.Images, Image{Src: src, Alt: fmt.Sprintf("%s view %d", alt, i+1)})
	}
	return p, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func (c *Catalog) cached(key string) (Product, bool) {
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expires) {
		return Product{}, false
	}
	return cloneProduct(entry.product), true
}

func (c *Catalog) store(key string, p Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheEntry{product: cloneProduct(p), expires: time.Now().Add(c.ttl)}
}

func cloneProduct(src Product) Product {
	cp := src
	cp.Images = append([]Image(nil), src.Images...)
	return cp
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func clampRating(r int) int {
	switch {
	case r <= 0:
		return 5
	case r > 5:
		return 5
	default:
		return r
	}
}

func prettifySlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if lang == "" {
		return defaultLang
	}
	return lang
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
