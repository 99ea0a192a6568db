package middleware

import (
	"context"
	"net/http"

	"puregrind.shop/storefront/internal/i18n"
)

const langCookieName = "hl"

// Locale resolves the preferred language (query ?hl=, then session, then the hl
// cookie, then Accept-Language) and stores it in the session.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r = r.WithContext(context.WithValue(r.Context(), ctxKeyLocaleFB, bundle.Fallback()))
			s := GetSession(r)
			if q := r.URL.Query().Get("hl"); q != "" {
				if lang, ok := bundle.Match(q); ok {
					if s.Locale != lang {
						s.Locale = lang
						s.MarkDirty()
					}
					http.SetCookie(w, &http.Cookie{Name: langCookieName, Value: lang, Path: "/", SameSite: http.SameSiteLaxMode})
				}
			}
			if s.Locale == "" {
				if c, err := r.Cookie(langCookieName); err == nil {
					if lang, ok := bundle.Match(c.Value); ok {
						s.Locale = lang
					}
				}
				if s.Locale == "" {
					s.Locale = bundle.Resolve(r.Header.Get("Accept-Language"))
				}
				s.MarkDirty()
			}
			w.Header().Set("Content-Language", s.Locale)
			next.ServeHTTP(w, r)
		})
	}
}

// Lang returns current lang from session or the bundle fallback.
func Lang(r *http.Request) string {
	if s := GetSession(r); s.Locale != "" {
		return s.Locale
	}
	if fb, ok := r.Context().Value(ctxKeyLocaleFB).(string); ok && fb != "" {
		return fb
	}
	return "en"
}
