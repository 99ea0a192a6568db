package middleware

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

const (
	sessionCookieName = "PUREGRIND_SESSION"
	sessionLifetime   = 30 * 24 * time.Hour
)

// SessionData is the per-visitor state persisted in the signed session cookie.
type SessionData struct {
	ID        string    `json:"id"`
	UserID    string    `json:"uid,omitempty"`
	UserName  string    `json:"name,omitempty"`
	Locale    string    `json:"locale,omitempty"`
	CSRFToken string    `json:"csrf,omitempty"`
	UI        UIState   `json:"ui"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// internal dirty flag; not serialized
	dirty bool
}

// UIState holds the product page toggles that survive a reload.
type UIState struct {
	Quantity map[string]int `json:"qty,omitempty"`
	Image    map[string]int `json:"img,omitempty"`
	NavOpen  bool           `json:"nav,omitempty"`
	Overlay  bool           `json:"overlay,omitempty"`
}

var (
	sessionCodec     *securecookie.SecureCookie
	sessionSecure    bool
	sessionEphemeral bool
)

func init() {
	hashKey := []byte(os.Getenv("PUREGRIND_WEB_SESSION_HASH_KEY"))
	blockKey := []byte(os.Getenv("PUREGRIND_WEB_SESSION_BLOCK_KEY"))
	if len(hashKey) == 0 {
		// process-ephemeral keys: sessions do not survive restarts
		hashKey = securecookie.GenerateRandomKey(32)
		blockKey = securecookie.GenerateRandomKey(32)
		sessionEphemeral = true
	}
	switch len(blockKey) {
	case 16, 24, 32:
	default:
		blockKey = nil
	}
	sessionCodec = securecookie.New(hashKey, blockKey)
	sessionCodec.SetSerializer(securecookie.JSONEncoder{})
	sessionCodec.MaxAge(int(sessionLifetime / time.Second))
	// mark cookies secure in prod (when PUREGRIND_WEB_ENV=prod)
	sessionSecure = strings.ToLower(os.Getenv("PUREGRIND_WEB_ENV")) == "prod"
}

// EphemeralSessionKeys reports whether session keys were generated at startup.
func EphemeralSessionKeys() bool { return sessionEphemeral }

// SecureCookies reports whether cookies are issued with the Secure attribute.
func SecureCookies() bool { return sessionSecure }

// Session loads or initializes a session and stores it in request context.
// The cookie is rewritten just before the first response write when the session changed.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sd, fromCookie := readSessionCookie(r)
		if sd.ID == "" {
			sd = newSession()
		}
		ctx := WithSession(r.Context(), sd)
		if sd.UserID != "" {
			ctx = WithUser(ctx, &User{ID: sd.UserID, Name: sd.UserName})
		}
		rw := NewResponseRecorder(w)
		persist := func(w http.ResponseWriter) {
			if sd.dirty || !fromCookie {
				writeSessionCookie(w, r, sd)
			}
		}
		rw.SetBeforeWrite(persist)
		next.ServeHTTP(rw, r.WithContext(ctx))
		// nothing written (e.g. HEAD): persist now
		if !rw.Written() {
			persist(w)
		}
	})
}

func newSession() *SessionData {
	now := time.Now().UTC()
	return &SessionData{
		ID:        ulid.Make().String(),
		CSRFToken: newCSRFToken(),
		CreatedAt: now,
		UpdatedAt: now,
		dirty:     true,
	}
}

// GetSession returns session data from context
func GetSession(r *http.Request) *SessionData {
	if sd, ok := r.Context().Value(ctxKeySession).(*SessionData); ok {
		return sd
	}
	return &SessionData{}
}

// MarkDirty flags the session for writing at end of request
func (s *SessionData) MarkDirty() { s.dirty = true; s.UpdatedAt = time.Now().UTC() }

// Quantity returns the stored quantity for slug, or 0 when unset.
func (s *SessionData) Quantity(slug string) int { return s.UI.Quantity[slug] }

// SetQuantity stores q for slug.
func (s *SessionData) SetQuantity(slug string, q int) {
	if s.UI.Quantity == nil {
		s.UI.Quantity = map[string]int{}
	}
	if s.UI.Quantity[slug] == q {
		return
	}
	s.UI.Quantity[slug] = q
	s.MarkDirty()
}

// ActiveImage returns the selected gallery index for slug.
func (s *SessionData) ActiveImage(slug string) int { return s.UI.Image[slug] }

// SetActiveImage stores the selected gallery index for slug.
func (s *SessionData) SetActiveImage(slug string, idx int) {
	if s.UI.Image == nil {
		s.UI.Image = map[string]int{}
	}
	if s.UI.Image[slug] == idx {
		return
	}
	s.UI.Image[slug] = idx
	s.MarkDirty()
}

// SetNavOpen stores the mobile navigation state.
func (s *SessionData) SetNavOpen(open bool) {
	if s.UI.NavOpen != open {
		s.UI.NavOpen = open
		s.MarkDirty()
	}
}

// SetOverlay stores the badge overlay visibility.
func (s *SessionData) SetOverlay(open bool) {
	if s.UI.Overlay != open {
		s.UI.Overlay = open
		s.MarkDirty()
	}
}

// RegenerateID assigns a new session ID and CSRF token to prevent fixation after auth.
func (s *SessionData) RegenerateID() {
	s.ID = ulid.Make().String()
	s.CSRFToken = newCSRFToken()
	s.MarkDirty()
}

func readSessionCookie(r *http.Request) (*SessionData, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return &SessionData{}, false
	}
	var sd SessionData
	if err := sessionCodec.Decode(sessionCookieName, c.Value, &sd); err != nil {
		LoggerFromContext(r.Context()).Debug("session: discarding undecodable cookie", zap.Error(err))
		return &SessionData{}, false
	}
	return &sd, true
}

func writeSessionCookie(w http.ResponseWriter, r *http.Request, sd *SessionData) {
	val, err := sessionCodec.Encode(sessionCookieName, sd)
	if err != nil {
		LoggerFromContext(r.Context()).Error("session: encode cookie", zap.Error(err))
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    val,
		Path:     "/",
		HttpOnly: true,
		Secure:   sessionSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(sessionLifetime),
	})
}
