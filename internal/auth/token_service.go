package auth

import (
	"errors"
	"fmt"
	"time"

	"cometjet/crewdesk/internal/constants"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService signs and verifies pilot session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// IssueToken signs a session token carrying the pilot id, role and display name.
func (s *TokenService) IssueToken(pilotID string, role constants.PilotRole, name string) (string, error) {
	now := time.Now()

	claims := &JWTClaims{
		PilotID:   pilotID,
		RoleValue: role,
		Name:      name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   pilotID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses a session token and returns its claims.
func (s *TokenService) VerifyToken(tokenStr string) (*JWTClaims, error) {
	claims := &JWTClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
