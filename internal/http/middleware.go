package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Balraaj27/lawcrusade/internal/auth"
	"github.com/Balraaj27/lawcrusade/internal/model"
)

type contextKey struct{ name string }

var identityKey = &contextKey{"identity"}

// bearerToken extracts the token from an "Authorization: Bearer ..." header.
func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// authenticate verifies the bearer token and resolves the admin it names.
// Any failure yields the same 401 so callers cannot probe whether a token
// was malformed, expired, or belonged to a deleted account.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}
		claims, err := auth.ParseToken(s.cfg.JWTSecret, token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid token.")
			return
		}
		admin, err := s.store.GetAdminByID(r.Context(), claims.ID)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid token.")
			return
		}
		ctx := context.WithValue(r.Context(), identityKey, admin.Identity())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// guarded applies authentication unless the route was configured public.
func (s *Server) guarded(public bool, h http.HandlerFunc) http.Handler {
	if public {
		return h
	}
	return s.authenticate(h)
}

func identityFromContext(ctx context.Context) (model.Identity, bool) {
	id, ok := ctx.Value(identityKey).(model.Identity)
	return id, ok
}

// recoverer turns panics into the uniform 500 envelope instead of chi's
// plain-text response.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slog.Error("panic serving request", "method", r.Method, "path", r.URL.Path, "panic", rec)
				writeError(w, http.StatusInternalServerError, "Something went wrong!")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
