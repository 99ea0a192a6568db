package middleware

import "net/http"

// VaryLocale sets Vary header for Accept-Language on dynamic responses
func VaryLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Language")
		next.ServeHTTP(w, r)
	})
}

// ClientHints advertises the color-scheme hint used to pick the initial theme.
func ClientHints(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-CH", "Sec-CH-Prefers-Color-Scheme")
		w.Header().Add("Vary", "Sec-CH-Prefers-Color-Scheme")
		next.ServeHTTP(w, r)
	})
}
