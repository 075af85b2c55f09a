package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cartences/cartences-api/internal/core/domain"
)

// DefaultTokenTTL is the fixed validity window of an issued token.
const DefaultTokenTTL = 7 * 24 * time.Hour

// TokenService signs and verifies HS256 bearer tokens. The secret is copied
// at construction and never mutated afterwards, so a single instance is safe
// for concurrent use.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue builds and signs a token for the given user. The subject is the
// stringified user id; username and role are frozen into the claims as they
// are at this moment.
func (s *TokenService) Issue(userID int64, username, role string) (string, error) {
	now := time.Now()
	claims := domain.Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Audience:  jwt.ClaimStrings{domain.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify parses and validates a token. The input may be a bare token or a
// full Authorization header value; a "Bearer " prefix is stripped when
// present. Every validation failure collapses to domain.ErrTokenInvalid so
// callers cannot tell a bad signature from an expired token.
func (s *TokenService) Verify(raw string) (*domain.Claims, error) {
	token := strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(token, "Bearer "); ok {
		token = rest
	}

	claims := &domain.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithAudience(domain.Audience))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
