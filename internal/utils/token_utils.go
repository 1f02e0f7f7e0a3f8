package utils

import (
	"errors"
	"time"

	"github.com/SscSPs/finops_core/internal/middleware"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT signs an HS256 token for userID. A non-empty company restricts
// the token to that company.
func GenerateJWT(userID string, company string, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	if userID == "" {
		return "", errors.New("user ID is required")
	}
	if expiryDuration <= 0 {
		return "", errors.New("expiry duration must be positive")
	}
	now := time.Now()
	claims := middleware.Claims{
		Company: company,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
