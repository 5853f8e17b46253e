package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
	"github.com/SSRGNG/ssrg-sub002/internal/utils"
)

type contextKey string

const claimsKey contextKey = "claims"

var (
	ErrMissingAuthHeader = errors.New("missing or malformed Authorization header")
	ErrInvalidToken      = errors.New("invalid token")
)

// VerifyToken fetches the Authorization header, validates the JWT and
// returns the claims.
func VerifyToken(r *http.Request, secret string) (jwt.MapClaims, error) {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return nil, ErrMissingAuthHeader
	}
	tokenStr := strings.TrimPrefix(authz, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Authenticate rejects requests without a valid bearer token and stores the
// claims on the request context.
func Authenticate(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := VerifyToken(r, secret)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid credentials")
				return
			}
			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates a subtree on the admin role claim. Must sit inside
// Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if RoleFromContext(r.Context()) != models.RoleAdmin {
			utils.JSONError(w, http.StatusForbidden, "forbidden", "Unauthorized: admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFromContext returns the verified claims, nil outside Authenticate.
func ClaimsFromContext(ctx context.Context) jwt.MapClaims {
	claims, _ := ctx.Value(claimsKey).(jwt.MapClaims)
	return claims
}

// RoleFromContext extracts the role claim, "" when absent.
func RoleFromContext(ctx context.Context) models.Role {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return models.Role(role)
}

// UserIDFromContext extracts the numeric subject claim, 0 when absent. JWT
// numbers decode as float64.
func UserIDFromContext(ctx context.Context) uint {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return 0
	}
	switch v := claims["sub"].(type) {
	case float64:
		return uint(v)
	case string:
		return 0
	}
	return 0
}
