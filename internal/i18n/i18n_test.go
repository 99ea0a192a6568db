package i18n

import "testing"

func load(t *testing.T) *Bundle {
	t.Helper()
	b, err := Load("../../locales", "en", []string{"en", "hi"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return b
}

func TestResolveHonorsQValues(t *testing.T) {
	b := load(t)
	if got := b.Resolve("en;q=0.8, hi;q=0.9"); got != "hi" {
		t.Fatalf("expected hi, got %s", got)
	}
	if got := b.Resolve("hi-IN,en;q=0.5"); got != "hi" {
		t.Fatalf("expected hi for regional tag, got %s", got)
	}
}

func TestResolveFallsBack(t *testing.T) {
	b := load(t)
	for _, header := range []string{"", "fr-FR", "de;q=1, fr;q=0.5"} {
		if got := b.Resolve(header); got != "en" {
			t.Fatalf("header %q: expected fallback en, got %s", header, got)
		}
	}
}

func TestMatch(t *testing.T) {
	b := load(t)
	if got, ok := b.Match("HI-in"); !ok || got != "hi" {
		t.Fatalf("expected hi, got %q %v", got, ok)
	}
	if _, ok := b.Match("de"); ok {
		t.Fatalf("expected de to be unsupported")
	}
}

func TestTFallsBackToDefaultThenKey(t *testing.T) {
	b := load(t)
	if got := b.T("hi", "nav.home"); got == "nav.home" || got == "" {
		t.Fatalf("expected hindi translation for nav.home, got %q", got)
	}
	if got := b.T("hi", "brand.name"); got != "Mom's Pure Grind" {
		t.Fatalf("expected english fallback, got %q", got)
	}
	if got := b.T("en", "missing.key"); got != "missing.key" {
		t.Fatalf("expected key passthrough, got %q", got)
	}
}
