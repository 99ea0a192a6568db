package main

import (
	"encoding/json"
	"net/http"

	handlersPkg "puregrind.shop/storefront/internal/handlers"
	mw "puregrind.shop/storefront/internal/middleware"
)

// ThemeToggleHandler flips and persists the color theme. htmx clients get the new
// toggle button plus a theme-changed event the page script applies to <html data-theme>.
func ThemeToggleHandler(w http.ResponseWriter, r *http.Request) {
	next := themePreferences(w, r).Toggle()
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, backTo(r), http.StatusSeeOther)
		return
	}
	trigger, _ := json.Marshal(map[string]any{"theme-changed": map[string]string{"theme": string(next)}})
	w.Header().Set("HX-Trigger", string(trigger))
	renderTemplate(w, r, "frag_theme_toggle", handlersPkg.ThemeToggleView{Lang: mw.Lang(r), CSRFToken: mw.CSRFToken(r), Theme: next})
}
