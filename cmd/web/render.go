package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"puregrind.shop/storefront/internal/format"
	"puregrind.shop/storefront/internal/handlers"
	mw "puregrind.shop/storefront/internal/middleware"
)

// templateSet holds shared layouts/partials plus one clone per page so each page
// can define its own "content" block.
type templateSet struct {
	shared *template.Template
	pages  map[string]*template.Template
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"now": time.Now,
		"t":   translate,
		"tf": func(lang, key string, args ...any) string {
			return fmt.Sprintf(translate(lang, key), args...)
		},
		"currency": format.FmtCurrency,
		"discount": format.FmtDiscount,
		"date":     format.FmtDate,
		"css":      func(s string) template.CSS { return template.CSS(s) },
		"seq": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i + 1
			}
			return out
		},
	}
}

func parseTemplates() (*templateSet, error) {
	// Recursively discover all .tmpl files. Note: ParseGlob doesn't support **.
	var shared, pages []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".tmpl") {
			return nil
		}
		if filepath.Base(filepath.Dir(path)) == "pages" {
			pages = append(pages, path)
		} else {
			shared = append(shared, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(shared) == 0 || len(pages) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	root, err := template.New("_root").Funcs(templateFuncs()).ParseFiles(shared...)
	if err != nil {
		return nil, err
	}
	ts := &templateSet{shared: root, pages: map[string]*template.Template{}}
	for _, p := range pages {
		clone, err := root.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFiles(p); err != nil {
			return nil, err
		}
		ts.pages[strings.TrimSuffix(filepath.Base(p), ".tmpl")] = clone
	}
	return ts, nil
}

// templates returns the cached set, or reparses in dev mode.
func templates() (*templateSet, error) {
	if devMode {
		return parseTemplates()
	}
	if tmplCache == nil {
		return nil, fmt.Errorf("template not initialized")
	}
	return tmplCache, nil
}

// renderPage executes the base layout for the named page.
func renderPage(w http.ResponseWriter, r *http.Request, page string, status int, data handlers.PageData) {
	ts, err := templates()
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	t, ok := ts.pages[page]
	if !ok {
		renderFailure(w, r, fmt.Errorf("unknown page %q", page))
		return
	}
	execute(w, r, t, "base", status, data)
}

// renderTemplate executes a named fragment from the shared set.
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	ts, err := templates()
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	execute(w, r, ts.shared, name, http.StatusOK, data)
}

// execute buffers output so a failing template never produces a half-written 200.
func execute(w http.ResponseWriter, r *http.Request, t *template.Template, name string, status int, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		renderFailure(w, r, fmt.Errorf("execute %s: %w", name, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func renderFailure(w http.ResponseWriter, r *http.Request, err error) {
	mw.LoggerFromContext(r.Context()).Error("render", zap.Error(err))
	http.Error(w, "template error", http.StatusInternalServerError)
}

// requestOrigin returns scheme://host of the request, honouring proxy headers.
func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// absoluteURL reconstructs the public URL of the request path.
func absoluteURL(r *http.Request) string {
	return requestOrigin(r) + r.URL.EscapedPath()
}

// buildAlternates lists hreflang variants of the current URL for every loaded locale.
func buildAlternates(r *http.Request) []handlers.Alternate {
	if i18nBundle == nil {
		return nil
	}
	base := absoluteURL(r)
	var out []handlers.Alternate
	for _, lang := range i18nBundle.Supported() {
		out = append(out, handlers.Alternate{Href: base + "?hl=" + lang, Hreflang: lang})
	}
	return out
}

func translate(lang, key string) string {
	if i18nBundle == nil {
		return key
	}
	return i18nBundle.T(lang, key)
}
