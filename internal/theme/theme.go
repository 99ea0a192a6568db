// Package theme manages the light/dark color theme preference.
package theme

import (
	"net/http"
	"strings"
	"time"
)

// Theme is a color theme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// StorageKey is the fixed key the preference is stored under.
const StorageKey = "theme"

// HintHeader is the client hint carrying the user agent's preferred color scheme.
const HintHeader = "Sec-CH-Prefers-Color-Scheme"

// Parse returns the theme named by v.
func Parse(v string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(v))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Store is a key-value capability for persisting small preferences.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Preferences loads and saves the theme through a Store.
type Preferences struct {
	store Store
	hint  string
}

// NewPreferences binds preferences to a store. hint is the raw color-scheme client
// hint, used only when nothing has been stored yet.
func NewPreferences(store Store, hint string) *Preferences {
	return &Preferences{store: store, hint: hint}
}

// Load returns the stored theme, or the hinted one when no valid value is stored.
func (p *Preferences) Load() Theme {
	if p.store != nil {
		if v, ok := p.store.Get(StorageKey); ok {
			if t, ok := Parse(v); ok {
				return t
			}
		}
	}
	if t, ok := Parse(strings.Trim(p.hint, `"`)); ok && t == Dark {
		return Dark
	}
	return Light
}

// Save persists t.
func (p *Preferences) Save(t Theme) {
	if p.store == nil {
		return
	}
	p.store.Set(StorageKey, string(t))
}

// Toggle flips the current theme, persists and returns it.
func (p *Preferences) Toggle() Theme {
	next := p.Load().Toggle()
	p.Save(next)
	return next
}

// CookieStore is a request-scoped Store backed by cookies.
type CookieStore struct {
	w      http.ResponseWriter
	r      *http.Request
	secure bool
	// writes made during this request, visible to later Gets
	pending map[string]string
}

// NewCookieStore returns a Store reading from r and writing Set-Cookie headers to w.
func NewCookieStore(w http.ResponseWriter, r *http.Request, secure bool) *CookieStore {
	return &CookieStore{w: w, r: r, secure: secure, pending: map[string]string{}}
}

func (s *CookieStore) Get(key string) (string, bool) {
	if v, ok := s.pending[key]; ok {
		return v, true
	}
	c, err := s.r.Cookie(key)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

func (s *CookieStore) Set(key, value string) {
	s.pending[key] = value
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
	})
}

// MapStore is an in-memory Store.
type MapStore map[string]string

func (m MapStore) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapStore) Set(key, value string) { m[key] = value }
