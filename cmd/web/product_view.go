package main

import (
	"html/template"
	"net/url"
	"strconv"

	"puregrind.shop/storefront/internal/badge"
	"puregrind.shop/storefront/internal/catalog"
	"puregrind.shop/storefront/internal/format"
)

// ProductView aggregates the data for the product page and its fragments.
type ProductView struct {
	Lang          string
	Slug          string
	URL           string
	Product       catalog.Product
	Price         string
	OriginalPrice string
	Discount      string
	Stars         int
	Gallery       GalleryView
	Quantity      QuantityView
	Badge         BadgeView
	Overlay       OverlayView
}

// GalleryView renders thumbnails plus the main image.
type GalleryView struct {
	Lang   string
	Slug   string
	Images []GalleryImage
	Active GalleryImage
}

// GalleryImage is a thumbnail entry.
type GalleryImage struct {
	Index  int
	Src    string
	Alt    string
	Href   string
	Active bool
}

// QuantityView renders the stepper and stock status.
type QuantityView struct {
	Lang      string
	CSRFToken string
	Slug      string
	Value     int
	Min       int
	Max       int
	CanInc    bool
	CanDec    bool
	InStock   bool
	Stock     int
}

// BadgeView renders the tilt badge in a given pose.
type BadgeView struct {
	Lang      string
	CSRFToken string
	Slug      string
	Label     string
	CTA       string
	Pose      badge.Pose
	Style     template.CSS
	WakeStyle template.CSS
}

// OverlayView renders the video modal container; the player is only emitted when open.
type OverlayView struct {
	Lang      string
	CSRFToken string
	Slug      string
	Open      bool
	Title     string
	EmbedURL  string
	Allow     string
}

type productState struct {
	quantity int
	image    int
	overlay  bool
	csrf     string
}

func buildProductView(lang string, p catalog.Product, st productState) ProductView {
	return ProductView{
		Lang:          lang,
		Slug:          p.Slug,
		URL:           productPath(p.Slug),
		Product:       p,
		Price:         format.FmtCurrency(p.Price, p.Currency, lang),
		OriginalPrice: originalPrice(p, lang),
		Discount:      format.FmtDiscount(p.DiscountPercent()),
		Stars:         p.Rating,
		Gallery:       buildGalleryView(lang, p, st.image),
		Quantity:      buildQuantityView(lang, st.csrf, p, st.quantity),
		Badge:         buildBadgeView(lang, st.csrf, p, badge.Neutral()),
		Overlay:       buildOverlayView(lang, st.csrf, p, badge.NewOverlay(st.overlay)),
	}
}

func originalPrice(p catalog.Product, lang string) string {
	if p.OriginalPrice <= p.Price {
		return ""
	}
	return format.FmtCurrency(p.OriginalPrice, p.Currency, lang)
}

func buildGalleryView(lang string, p catalog.Product, active int) GalleryView {
	active = catalog.SelectImage(active, len(p.Images))
	v := GalleryView{Lang: lang, Slug: p.Slug}
	for i, img := range p.Images {
		gi := GalleryImage{
			Index:  i,
			Src:    img.Src,
			Alt:    img.Alt,
			Href:   galleryPath(p.Slug, i),
			Active: i == active,
		}
		v.Images = append(v.Images, gi)
		if gi.Active {
			v.Active = gi
		}
	}
	return v
}

func buildQuantityView(lang, csrf string, p catalog.Product, q int) QuantityView {
	s := p.Stepper()
	q = s.Clamp(q)
	return QuantityView{
		Lang:      lang,
		CSRFToken: csrf,
		Slug:      p.Slug,
		Value:     q,
		Min:       s.Min,
		Max:       s.Max,
		CanInc:    s.CanInc(q),
		CanDec:    s.CanDec(q),
		InStock:   p.InStock(),
		Stock:     p.Stock,
	}
}

func buildBadgeView(lang, csrf string, p catalog.Product, pose badge.Pose) BadgeView {
	return BadgeView{
		Lang:      lang,
		CSRFToken: csrf,
		Slug:      p.Slug,
		Label:     p.Badge.Label,
		CTA:       p.Badge.CTA,
		Pose:      pose,
		Style:     template.CSS(pose.Style()),
		WakeStyle: template.CSS(pose.WakeStyle()),
	}
}

func buildOverlayView(lang, csrf string, p catalog.Product, o badge.Overlay) OverlayView {
	v := OverlayView{Lang: lang, CSRFToken: csrf, Slug: p.Slug, Open: o.Visible(), Title: p.Badge.Video}
	if v.Open {
		video := badge.Video{ID: p.Badge.VideoID, Title: p.Badge.Video}
		v.EmbedURL = video.EmbedURL()
		v.Allow = video.Allow()
	}
	return v
}

func productPath(slug string) string {
	return "/products/" + url.PathEscape(slug)
}

func galleryPath(slug string, idx int) string {
	return productPath(slug) + "/gallery?image=" + strconv.Itoa(idx)
}
