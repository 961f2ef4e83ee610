// Package identity extracts the stable user identifier from the auth
// service's session token. The identifier keys the per-user remote record.
package identity

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/mpavlenko/recipekeeper/internal/common"
)

// Claims carries the registered claims plus the email the auth service
// issues as the user's stable identifier.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// UserIDFromToken verifies tokenString against secretKey (HS256) and
// returns the user identifier.
func UserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.Email == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Email, nil
}

// UserIDFromTokenUnverified extracts the identifier without checking the
// signature. The auth service is trusted for identity (the backend enforces
// authorization on its side); this is for display and record keying when the
// signing key is not distributed to clients.
func UserIDFromTokenUnverified(tokenString string) (string, error) {
	claims := &Claims{}

	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return "", err
	}
	if claims.Email == "" {
		return "", common.ErrInvalidToken
	}
	return claims.Email, nil
}
