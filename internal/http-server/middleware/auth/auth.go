// Package auth gates protected routes on a valid bearer token and exposes the
// verified identity to downstream handlers through the request context.
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/lib/token"

	"github.com/go-chi/render"
)

type Identity struct {
	UserID int64
	Name   string
}

type ctxKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}

type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

func New(log *slog.Logger, verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				log.Warn("token missing in request", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("access denied, token missing"))
				return
			}

			claims, err := verifier.Verify(tokenString)
			if err != nil {
				log.Warn("failed to verify token", sl.Err(err))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			ctx := WithIdentity(r.Context(), Identity{
				UserID: claims.UserID,
				Name:   claims.Name,
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, tokenString, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	tokenString = strings.TrimSpace(tokenString)

	return tokenString, tokenString != ""
}
