// Package jwtx issues and verifies the backoffice session tokens: Ed25519
// JWTs carrying the account id, email, and role at issuance time. The role
// claim is informational for the SPA; authorization decisions re-read the
// role from the directory on every check.
package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is how long a session token stays valid.
const DefaultSessionTTL = 12 * time.Hour

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// NewSessionClaims builds the claims for a fresh session.
func NewSessionClaims(issuer, accountID, email, role string, ttl time.Duration) Claims {
	now := time.Now().UTC()
	return Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}
