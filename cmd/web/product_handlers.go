package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"puregrind.shop/storefront/internal/catalog"
	handlersPkg "puregrind.shop/storefront/internal/handlers"
	mw "puregrind.shop/storefront/internal/middleware"
	"puregrind.shop/storefront/internal/nav"
	"puregrind.shop/storefront/internal/seo"
	"puregrind.shop/storefront/internal/theme"
)

// HomeHandler sends visitors to the featured product.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, productPath(defaultProduct), http.StatusFound)
}

// ProductsHandler backs "All Products" and the header search. The store carries a
// single featured product, so listings and searches land on it; q is ignored.
func ProductsHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, productPath(defaultProduct), http.StatusFound)
}

// ProductHandler renders the product display page.
func ProductHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := loadProduct(w, r)
	if !ok {
		return
	}
	lang := mw.Lang(r)
	s := mw.GetSession(r)
	if raw := r.URL.Query().Get("image"); raw != "" {
		idx, _ := strconv.Atoi(raw)
		s.SetActiveImage(p.Slug, catalog.SelectImage(idx, len(p.Images)))
	}
	view := buildProductView(lang, p, productState{
		quantity: s.Quantity(p.Slug),
		image:    s.ActiveImage(p.Slug),
		overlay:  s.UI.Overlay,
		csrf:     mw.CSRFToken(r),
	})

	vm := basePageData(w, r, p.Title)
	vm.Product = view
	vm.Breadcrumbs = nav.Breadcrumbs(r.URL.Path, p.Title)

	brand := translate(lang, "brand.name")
	desc := p.Summary
	if desc == "" {
		desc = seo.Summarize(string(p.DescriptionHTML), 160)
	}
	vm.SEO.Title = p.Title + " | " + brand
	vm.SEO.Description = desc
	vm.SEO.OG.Title = vm.SEO.Title
	vm.SEO.OG.Description = desc
	vm.SEO.OG.Type = "product"
	vm.SEO.OG.SiteName = brand
	vm.SEO.Twitter.Card = "summary_large_image"
	var images []string
	for _, img := range p.Images {
		images = append(images, absoluteAsset(r, img.Src))
	}
	if len(images) > 0 {
		vm.SEO.OG.Image = images[0]
		vm.SEO.Twitter.Image = images[0]
	}
	vm.SEO.JSONLD = append(vm.SEO.JSONLD,
		seo.JSON(seo.Product(seo.ProductInfo{
			Name:        p.Title,
			Description: desc,
			URL:         vm.SEO.Canonical,
			Images:      images,
			SKU:         p.Slug,
			Brand:       p.Brand,
			Price:       p.Price,
			Currency:    p.Currency,
			InStock:     p.InStock(),
			Rating:      p.Rating,
		})),
		seo.JSON(seo.BreadcrumbList(breadcrumbItems(r, lang, vm.Breadcrumbs))),
	)

	renderPage(w, r, "product", http.StatusOK, vm)
}

// NotFoundHandler renders the shared 404 page.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	vm := basePageData(w, r, translate(mw.Lang(r), "errors.not_found.title"))
	vm.NotFound = true
	vm.SEO.Robots = "noindex"
	renderPage(w, r, "not_found", http.StatusNotFound, vm)
}

// ProductGalleryFrag selects a gallery image and renders the gallery fragment.
func ProductGalleryFrag(w http.ResponseWriter, r *http.Request) {
	p, ok := loadProduct(w, r)
	if !ok {
		return
	}
	idx, _ := strconv.Atoi(r.URL.Query().Get("image"))
	idx = catalog.SelectImage(idx, len(p.Images))
	mw.GetSession(r).SetActiveImage(p.Slug, idx)

	push := productPath(p.Slug) + "?image=" + strconv.Itoa(idx)
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, push, http.StatusSeeOther)
		return
	}
	w.Header().Set("HX-Push-Url", push)
	renderTemplate(w, r, "frag_gallery", buildGalleryView(mw.Lang(r), p, idx))
}

// ProductQuantityHandler steps the quantity up or down within the product's bounds.
func ProductQuantityHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := loadProduct(w, r)
	if !ok {
		return
	}
	s := mw.GetSession(r)
	stepper := p.Stepper()
	q := s.Quantity(p.Slug)
	switch r.PostFormValue("op") {
	case "inc":
		q = stepper.Inc(q)
	case "dec":
		q = stepper.Dec(q)
	default:
		mw.WriteError(w, r, http.StatusBadRequest, "unknown quantity operation")
		return
	}
	s.SetQuantity(p.Slug, q)
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, productPath(p.Slug), http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "frag_quantity", buildQuantityView(mw.Lang(r), mw.CSRFToken(r), p, q))
}

// loadProduct resolves the {slug} URL parameter, writing the error response itself on failure.
func loadProduct(w http.ResponseWriter, r *http.Request) (catalog.Product, bool) {
	slug := chi.URLParam(r, "slug")
	p, err := productCatalog.Get(slug, mw.Lang(r))
	if err == nil {
		return p, true
	}
	if errors.Is(err, catalog.ErrNotFound) {
		if mw.IsHTMX(r.Context()) {
			mw.WriteError(w, r, http.StatusNotFound, "product not found")
		} else {
			NotFoundHandler(w, r)
		}
		return catalog.Product{}, false
	}
	mw.LoggerFromContext(r.Context()).Error("catalog lookup", zap.String("slug", slug), zap.Error(err))
	mw.WriteError(w, r, http.StatusInternalServerError, "catalog unavailable")
	return catalog.Product{}, false
}

// basePageData fills the layout fields shared by every page.
func basePageData(w http.ResponseWriter, r *http.Request, title string) handlersPkg.PageData {
	lang := mw.Lang(r)
	s := mw.GetSession(r)
	th := themePreferences(w, r).Load()
	// a full page load follows a navigation, so the mobile menu starts closed
	s.SetNavOpen(false)

	userName := translate(lang, "header.guest")
	if u := mw.UserFromContext(r.Context()); u != nil && u.Name != "" {
		userName = u.Name
	}

	vm := handlersPkg.PageData{
		Title:     title,
		Lang:      lang,
		Theme:     th,
		Analytics: handlersPkg.LoadAnalyticsFromEnv(),
		CSRFToken: mw.CSRFToken(r),
		Path:      r.URL.Path,
		Header:    handlersPkg.BuildHeader(lang, r.URL.Path, userName, mw.CSRFToken(r), false, th),
	}
	vm.SEO.Title = title
	vm.SEO.Canonical = absoluteURL(r)
	vm.SEO.OG.URL = vm.SEO.Canonical
	vm.SEO.Alternates = buildAlternates(r)
	return vm
}

func themePreferences(w http.ResponseWriter, r *http.Request) *theme.Preferences {
	store := theme.NewCookieStore(w, r, mw.SecureCookies())
	return theme.NewPreferences(store, r.Header.Get(theme.HintHeader))
}

func breadcrumbItems(r *http.Request, lang string, crumbs []nav.Crumb) []seo.BreadcrumbItem {
	origin := requestOrigin(r)
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		name := c.Label
		if c.LabelKey != "" {
			name = translate(lang, c.LabelKey)
		}
		items = append(items, seo.BreadcrumbItem{Name: name, Item: origin + c.Href})
	}
	return items
}

func absoluteAsset(r *http.Request, src string) string {
	return requestOrigin(r) + src
}
