package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ShareClaims identifies which child's report a share link grants access to
// and the period it covers
type ShareClaims struct {
	ChildID string `json:"child_id"`
	Start   string `json:"start"`
	End     string `json:"end"`
	jwt.RegisteredClaims
}

// ShareTokenSigner issues and verifies signed report share tokens, so a
// report link can be opened without a parent session
type ShareTokenSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewShareTokenSigner creates a signer with the given HMAC secret and token lifetime
func NewShareTokenSigner(secret string, ttl time.Duration) *ShareTokenSigner {
	return &ShareTokenSigner{secret: []byte(secret), ttl: ttl}
}

// Sign issues a share token for a child's report over [start, end]
func (s *ShareTokenSigner) Sign(childID, start, end string) (string, error) {
	now := time.Now()
	claims := ShareClaims{
		ChildID: childID,
		Start:   start,
		End:     end,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign share token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a share token, returning its claims
func (s *ShareTokenSigner) Verify(tokenString string) (*ShareClaims, error) {
	claims := &ShareClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid share token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid share token")
	}
	return claims, nil
}
