package httpadapter

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"carry-ads/internal/core/domain"
)

type ctxKey int

const principalKey ctxKey = 0

// withPrincipal builds the authenticated principal from the headers set
// by the identity gateway in front of this service. Credentials are not
// re-verified here; requests without a user id pass through anonymous
// and are stopped by the role guards.
func withPrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := r.Header.Get("X-User-Id")
		if idStr == "" {
			next.ServeHTTP(w, r)
			return
		}
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "invalid user id", http.StatusUnauthorized)
			return
		}
		var roles []string
		for _, role := range strings.Split(r.Header.Get("X-User-Roles"), ",") {
			if role = strings.TrimSpace(role); role != "" {
				roles = append(roles, role)
			}
		}
		p := domain.Principal{UserID: id, Email: r.Header.Get("X-User-Email"), Roles: roles}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), principalKey, p)))
	})
}

// principalFrom extracts the principal stored by withPrincipal.
func principalFrom(r *http.Request) (domain.Principal, bool) {
	p, ok := r.Context().Value(principalKey).(domain.Principal)
	return p, ok
}

// requireRole rejects requests whose principal is missing (401) or does
// not carry the role (403).
func requireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := principalFrom(r)
			if !ok {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}
			if !p.HasRole(role) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
