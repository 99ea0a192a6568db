package theme

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadPrefersStoredValue(t *testing.T) {
	t.Parallel()

	store := MapStore{StorageKey: "dark"}
	require.Equal(t, Dark, NewPreferences(store, "light").Load())

	store[StorageKey] = "light"
	require.Equal(t, Light, NewPreferences(store, `"dark"`).Load(), "stored value beats client hint")
}

func TestLoadFallsBackToHint(t *testing.T) {
	t.Parallel()

	require.Equal(t, Dark, NewPreferences(MapStore{}, `"dark"`).Load())
	require.Equal(t, Light, NewPreferences(MapStore{}, "").Load())
	require.Equal(t, Light, NewPreferences(MapStore{StorageKey: "sepia"}, "").Load(), "invalid stored value is ignored")
	require.Equal(t, Light, NewPreferences(nil, "").Load())
}

func TestToggleRoundTrips(t *testing.T) {
	t.Parallel()

	store := MapStore{}
	prefs := NewPreferences(store, "")
	require.Equal(t, Dark, prefs.Toggle())
	require.Equal(t, "dark", store[StorageKey])
	require.Equal(t, Light, prefs.Toggle())
	require.Equal(t, "light", store[StorageKey])
}

func TestCookieStore(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: StorageKey, Value: "dark"})
	rec := httptest.NewRecorder()
	store := NewCookieStore(rec, req, false)

	v, ok := store.Get(StorageKey)
	require.True(t, ok)
	require.Equal(t, "dark", v)

	prefs := NewPreferences(store, "")
	require.Equal(t, Light, prefs.Toggle())
	require.Equal(t, Light, prefs.Load(), "pending write visible within the request")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, StorageKey, cookies[0].Name)
	require.Equal(t, "light", cookies[0].Value)
}

func TestParse(t *testing.T) {
	t.Parallel()

	th, ok := Parse(" Dark ")
	require.True(t, ok)
	require.Equal(t, Dark, th)
	_, ok = Parse("blue")
	require.False(t, ok)
	require.Equal(t, Light, Dark.Toggle())
	require.Equal(t, Dark, Light.Toggle())
}
