// internal/adapters/in/http/middleware/session.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const sessionCookieName = "ng_session"

var ctxKeySession = ctxKey{name: "sessionId"}

// Session resolves the storefront session id used to scope the cart.
//
// Resolution order:
// - header: X-Session-Id (SPA clients that keep the id themselves)
// - cookie: ng_session
// - otherwise a new uuid is minted and set as a cookie
//
// The session id needs no authentication: the cart is device-scoped, like
// the web client's localStorage cart.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := strings.TrimSpace(r.Header.Get("X-Session-Id"))

		if sid == "" {
			if c, err := r.Cookie(sessionCookieName); err == nil {
				sid = strings.TrimSpace(c.Value)
			}
		}

		if sid == "" {
			sid = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), ctxKeySession, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext returns the session id ("" when Session did not run).
func SessionFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeySession).(string); ok {
		return v
	}
	return ""
}
