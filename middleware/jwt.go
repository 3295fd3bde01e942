// middleware/jwt.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fuelstations/config"
)

// Claims are the custom payload in the JWT. The subject identifier
// travels in the "id" claim.
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// unexported type prevents collisions in context
type ctxKey int

const (
	subjectIDKey ctxKey = iota
)

// GenerateToken creates a signed JWT for the given subject id, valid for
// the configured token TTL.
func GenerateToken(subjectID string) (string, error) {
	claims := Claims{
		ID: subjectID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.TokenTTL())),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTKey())
}

// JWTMiddleware validates the token and stashes the subject id in ctx.
// The token is the raw Authorization header value, not prefixed with a
// scheme. Authentication only; no authorization checks happen here.
func JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := r.Header.Get("Authorization")
		if tokenStr == "" {
			unauthorized(w, "No token provided in the request")
			return
		}

		token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
			return config.JWTKey(), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			unauthorized(w, "Failed to authenticate token.")
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok {
			unauthorized(w, "Failed to authenticate token.")
			return
		}

		ctx := context.WithValue(r.Context(), subjectIDKey, claims.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSubjectID pulls the authenticated subject id out of the request
// context (or "").
func GetSubjectID(r *http.Request) string {
	if id, ok := r.Context().Value(subjectIDKey).(string); ok {
		return id
	}
	return ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   "Unauthorized",
		"message": message,
	})
}
