package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expired reports whether the bearer token carries an exp claim in the past.
// The signature is not verified here; the backend remains authoritative and
// still answers 401 for anything it dislikes. Tokens that do not parse or
// carry no exp claim are treated as non-expiring.
func Expired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
