package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

// UserIDKey is the context key for the acting user ID.
const UserIDKey ContextKey = "user_id"

// defaultUserID is assumed when no identity header is sent, so the API
// stays usable from a browser or curl during development.
const defaultUserID int64 = 1

// DevUserMiddleware resolves the acting user from the X-User-ID header.
// It is a development stand-in for real authentication: any positive
// integer is accepted as-is, and requests without the header act as the
// default user.
func DevUserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := defaultUserID
		if v := r.Header.Get("X-User-ID"); v != "" {
			if id, err := strconv.ParseInt(v, 10, 64); err == nil && id > 0 {
				userID = id
			}
		}
		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the acting user ID from the request context.
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}
