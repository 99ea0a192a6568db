package middleware

import (
	"context"

	"go.uber.org/zap"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyIsHTMX   ctxKey = "is_htmx"
	ctxKeyHXTarget ctxKey = "hx_target"
	ctxKeySession  ctxKey = "session"
	ctxKeyUser     ctxKey = "user"
	ctxKeyLocaleFB ctxKey = "locale_fallback"
	ctxKeyLogger   ctxKey = "logger"
)

// WithHTMX marks request as HTMX
func WithHTMX(ctx context.Context, is bool) context.Context {
	return context.WithValue(ctx, ctxKeyIsHTMX, is)
}

// IsHTMX returns whether this is an htmx request
func IsHTMX(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyIsHTMX).(bool)
	return v
}

// HXTarget returns the id of the element htmx will swap, if any.
func HXTarget(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyHXTarget).(string)
	return v
}

// WithSession stores the session in context.
func WithSession(ctx context.Context, s *SessionData) context.Context {
	return context.WithValue(ctx, ctxKeySession, s)
}

// User represents the signed-in shopper shown in the header greeting.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// WithUser stores user in context
func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ctxKeyUser, u)
}

// UserFromContext returns user if present
func UserFromContext(ctx context.Context) *User {
	if u, ok := ctx.Value(ctxKeyUser).(*User); ok {
		return u
	}
	return nil
}

// WithLogger stores the request logger in context.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKeyLogger, l)
}

// LoggerFromContext returns the request logger, falling back to the global logger.
func LoggerFromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKeyLogger).(*zap.Logger); ok && l != nil {
		return l
	}
	return zap.L()
}
