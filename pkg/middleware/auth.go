package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"countryhub/pkg/session"
)

type contextKey string

const UserIDContextKey contextKey = "userID"

// Routes that never require a key. Logout only reads the cookie if present,
// so a client holding an expired key can still clear it.
var openRoutes = map[string]string{
	"/api/auth/register": http.MethodPost,
	"/api/auth/login":    http.MethodPost,
	"/api/auth/logout":   http.MethodPost,
}

// Auth gates every protected route: cookie in, store lookup, user id into
// the request context. The store is consulted on every request; nothing is
// cached in process memory.
func Auth(store session.Store, cookieName string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := mux.CurrentRoute(r)
			template, err := route.GetPathTemplate()
			if err != nil {
				http.Error(w, "Route not found", http.StatusNotFound)
				return
			}

			if method, ok := openRoutes[template]; ok && method == r.Method {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
				return
			}

			sess, err := store.GetValid(cookie.Value, time.Now().UTC())
			if err != nil {
				logger.Error("key lookup", "error", err)
				http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
				return
			}
			if sess == nil {
				http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDContextKey, sess.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDContextKey).(string)
	return id, ok && id != ""
}
