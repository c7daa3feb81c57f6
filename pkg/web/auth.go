package web

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hackdeck/hackdeck/pkg/backend"
	"github.com/hackdeck/hackdeck/pkg/config"
	"github.com/hackdeck/hackdeck/pkg/db/models"
)

var userContextKey = &struct{ string }{"user"}

// tokenTTL bounds how long an issued bearer token stays valid.
const tokenTTL = 24 * time.Hour

// NewUserToken issues a signed bearer token for the user.
func NewUserToken(cfg *config.Config, username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    cfg.Name,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// parseUserToken verifies a bearer token and returns the subject
// username.
func parseUserToken(cfg *config.Config, raw string) (string, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWT.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	return token.Claims.GetSubject()
}

// withUser attaches the authenticated user to the request context.
func withUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, userContextKey, u)
}

// userFromRequest returns the authenticated user of the request.
func userFromRequest(r *http.Request) (models.User, bool) {
	u, ok := r.Context().Value(userContextKey).(models.User)
	return u, ok
}

// requireUser wraps a handler with bearer token authentication. The user
// row is loaded fresh on every request, the token only carries identity.
func requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cfg := config.FromContext(ctx)
		be := backend.FromContext(ctx)

		auth := r.Header.Get("Authorization")
		raw, found := strings.CutPrefix(auth, "Bearer ")
		if !found || raw == "" {
			renderStatus(http.StatusUnauthorized)(w, r)
			return
		}

		username, err := parseUserToken(cfg, raw)
		if err != nil {
			renderStatus(http.StatusUnauthorized)(w, r)
			return
		}

		user, err := be.User(ctx, username)
		if err != nil {
			renderStatus(http.StatusUnauthorized)(w, r)
			return
		}

		next(w, r.WithContext(withUser(ctx, user)))
	}
}
