package middleware

import (
	"net/http"
	"os"
	"strings"
)

// Auth hydrates the header greeting user. Outside prod it accepts a development
// helper header "Authorization: Bearer debug:<uid>[:<display name>]".
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env := strings.ToLower(os.Getenv("PUREGRIND_WEB_ENV"))
		if env != "prod" {
			if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer debug:"); ok {
				uid, name, _ := strings.Cut(token, ":")
				s := GetSession(r)
				wasAuthed := s.UserID != ""
				if uid != "" && (s.UserID != uid || s.UserName != name) {
					s.UserID = uid
					s.UserName = name
					// first authentication: regenerate session ID to prevent fixation
					if !wasAuthed {
						s.RegenerateID()
					} else {
						s.MarkDirty()
					}
				}
				if s.UserID != "" {
					r = r.WithContext(WithUser(r.Context(), &User{ID: s.UserID, Name: s.UserName}))
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
