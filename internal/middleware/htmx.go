package middleware

import (
	"context"
	"net/http"
)

// HTMX marks requests coming from htmx so handlers/middlewares can adapt responses.
// History-restore requests want the full page and are not treated as fragments.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is := r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-History-Restore-Request") != "true"
		ctx := WithHTMX(r.Context(), is)
		if is {
			ctx = context.WithValue(ctx, ctxKeyHXTarget, r.Header.Get("HX-Target"))
			w.Header().Add("Vary", "HX-Request")
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
