package mwauth

import (
	"context"
	"hallBooker/internal/lib/api/response"
	"hallBooker/internal/lib/jwt"
	"hallBooker/internal/lib/logger/sl"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"
)

type ctxKey struct{}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenParser
type TokenParser interface {
	ParseToken(token string) (*jwt.Claims, error)
}

// New rejects requests without a valid "Authorization: Bearer" token and
// stores the decoded claims in the request context.
func New(log *slog.Logger, parser TokenParser) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				log.Warn("missing bearer token", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("access denied"))
				return
			}

			claims, err := parser.ParseToken(strings.TrimSpace(token))
			if err != nil {
				log.Warn("invalid token", sl.Err(err))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("invalid token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		}

		return http.HandlerFunc(fn)
	}
}

// AdminOnly must run after New.
func AdminOnly(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok || !claims.IsAdmin() {
				log.Warn("admin access denied", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("admin access required"))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func WithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, claims)
}

func ClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(*jwt.Claims)
	return claims, ok && claims != nil
}
