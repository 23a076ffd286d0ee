package jwtx

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("jwtx: invalid token")

// Verifier validates session tokens against the signing key's public half
// and the expected issuer. Expiry is enforced during parsing.
type Verifier struct {
	pub    ed25519.PublicKey
	issuer string
}

func NewVerifier(key ed25519.PrivateKey, issuer string) *Verifier {
	return &Verifier{
		pub:    key.Public().(ed25519.PublicKey),
		issuer: issuer,
	}
}

func (v *Verifier) Verify(raw string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return v.pub, nil
		},
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
