package main

import (
	"net/http"
	"net/url"
	"strings"

	handlersPkg "puregrind.shop/storefront/internal/handlers"
	mw "puregrind.shop/storefront/internal/middleware"
	"puregrind.shop/storefront/internal/nav"
)

// NavToggleHandler opens or closes the mobile navigation.
func NavToggleHandler(w http.ResponseWriter, r *http.Request) {
	s := mw.GetSession(r)
	s.SetNavOpen(!s.UI.NavOpen)
	respondNav(w, r, s.UI.NavOpen)
}

// NavCloseHandler closes the mobile navigation (nav links and backdrop).
func NavCloseHandler(w http.ResponseWriter, r *http.Request) {
	s := mw.GetSession(r)
	s.SetNavOpen(false)
	respondNav(w, r, false)
}

func respondNav(w http.ResponseWriter, r *http.Request, open bool) {
	back := backTo(r)
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}
	lang := mw.Lang(r)
	renderTemplate(w, r, "frag_nav", handlersPkg.NavView{
		Lang:      lang,
		CSRFToken: mw.CSRFToken(r),
		Items:     nav.Build(pathOf(back)),
		Mobile:    nav.Mobile{Open: open},
	})
}

// backTo returns the same-origin page the request came from, or the featured product.
func backTo(r *http.Request) string {
	for _, raw := range []string{r.Header.Get("HX-Current-URL"), r.Referer()} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || (u.Host != "" && u.Host != r.Host) {
			continue
		}
		if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
			continue
		}
		if u.RawQuery != "" {
			return u.Path + "?" + u.RawQuery
		}
		return u.Path
	}
	return productPath(defaultProduct)
}

func pathOf(ref string) string {
	if u, err := url.Parse(ref); err == nil {
		return u.Path
	}
	return ref
}
