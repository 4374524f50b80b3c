package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
)

const defaultTokenTTL = 2 * time.Hour

// TokenService issues and verifies HS256-signed bearer tokens. The subject
// carries the account email, the "role" claim the privilege level.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *TokenService) Issue(email string, role domain.Role) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"sub":  email,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry. Every failure mode (bad signature,
// malformed structure, expired) collapses into domain.ErrInvalidToken so
// nothing token-shaped ever leaks past this boundary.
func (s *TokenService) Verify(token string) (string, domain.Role, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !parsed.Valid {
		return "", "", domain.ErrInvalidToken
	}

	email, _ := claims["sub"].(string)
	if email == "" {
		return "", "", domain.ErrInvalidToken
	}

	role := domain.RoleUser
	if r, ok := claims["role"].(string); ok && r != "" {
		role = domain.Role(r)
	}

	return email, role, nil
}
