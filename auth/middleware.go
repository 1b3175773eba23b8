// HTTP middleware resolving the viewer behind a request from the
// Authorization header.
package auth

import (
	"net/http"
	"strings"

	"github.com/user/growtwitter-go/apperror"
)

// TokenValidator validates an access token and returns its claims.
// *Service satisfies it; tests substitute their own.
type TokenValidator interface {
	ValidateToken(tokenString string, expectedTokenType string) (*CustomClaims, error)
}

// RequireAuth rejects requests without a valid Bearer access token and puts
// the viewer into the request context for downstream handlers.
func RequireAuth(validator TokenValidator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			viewer, err := viewerFromHeader(r, validator)
			if err != nil {
				WriteError(w, r, err)
				return
			}
			if viewer == nil {
				WriteError(w, r, apperror.NewAuthError("authorization header is missing", nil))
				return
			}
			next.ServeHTTP(w, r.WithContext(NewContextWithViewer(r.Context(), viewer)))
		})
	}
}

// OptionalAuth lets anonymous requests through untouched. A present but
// invalid token is still rejected: a client that sends credentials should
// learn they are bad rather than silently browse as anonymous.
func OptionalAuth(validator TokenValidator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			viewer, err := viewerFromHeader(r, validator)
			if err != nil {
				WriteError(w, r, err)
				return
			}
			if viewer == nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(NewContextWithViewer(r.Context(), viewer)))
		})
	}
}

// viewerFromHeader parses the Authorization header. A missing header yields
// (nil, nil); a malformed or invalid token yields an auth error.
func viewerFromHeader(r *http.Request, validator TokenValidator) (*Viewer, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, apperror.NewAuthError("authorization header format must be Bearer {token}", nil)
	}

	claims, err := validator.ValidateToken(parts[1], tokenTypeAccess)
	if err != nil {
		return nil, apperror.NewAuthError("invalid or expired token", err)
	}

	return &Viewer{ID: claims.UserID, Username: claims.Username}, nil
}
