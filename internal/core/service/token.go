package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/prismatech/marketing-dashboard/internal/core/domain"
)

// TokenIssuer signs the opaque credential token stored next to the identity.
// Tokens carry no expiry.
type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), now: time.Now}
}

// Issue returns an HS256 token for identity.
func (t *TokenIssuer) Issue(identity domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":   identity.ID,
		"name":  identity.Name,
		"email": identity.Email,
		"role":  string(identity.Role),
		"iat":   t.now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}
