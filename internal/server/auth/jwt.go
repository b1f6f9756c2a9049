// Package auth issues and verifies the signed bearer tokens the server
// hands out on signup/signin. Tokens are self-contained: the server keeps
// no session table, validity is signature + expiry alone.
package auth

import (
	"time"

	"github.com/alinaagnistova/TestTask/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claim set plus the authenticated login.
type Claims struct {
	jwt.RegisteredClaims
	Username string
}

// GenerateToken produces an HS256-signed token for username, valid for
// validityDuration from now. IssuedAt is set, so two tokens for the same
// subject issued at different instants differ.
func GenerateToken(username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Username: username,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUsernameFromToken validates signature and expiry and returns the
// embedded login. Expired, malformed or mis-signed tokens all come back as
// an error value; the caller decides how to surface it.
func GetUsernameFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Username, nil
}
