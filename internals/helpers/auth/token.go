package helper

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenTTL is the fixed validity window for issued credentials.
const TokenTTL = 24 * time.Hour

// AuthClaims embeds the resolved identity into the token. The organization id
// is trusted on subsequent requests; the resolver is skipped when present.
type AuthClaims struct {
	ID             string `json:"id"`
	Role           string `json:"role"`
	Number         string `json:"number"`
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateAuthToken signs a 24h HS256 credential for a resolved identity.
func GenerateAuthToken(secret, id, role, number, organizationID, name string) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		ID:             id,
		Role:           role,
		Number:         number,
		OrganizationID: organizationID,
		Name:           name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseAuthToken verifies the signature and expiry and returns the claims.
func ParseAuthToken(secret, raw string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	tok, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
