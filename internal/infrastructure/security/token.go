package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bancobr/bank-api/internal/core/domain"
	"github.com/bancobr/bank-api/internal/core/ports"
)

// Issuer is the fixed iss claim stamped on every token.
const Issuer = "auth-api"

// DefaultTokenTTL is the validity window applied when no override is configured.
const DefaultTokenTTL = 20 * time.Minute

type tokenClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed JWTs. Expiry arithmetic is
// pure UTC: expiresAt = now + ttl, independent of the host time zone.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService builds a TokenService around a symmetric signing secret.
// A nil clock means time.Now; ttl <= 0 means DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration, now func() time.Time) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	if now == nil {
		now = time.Now
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: now}
}

// Issue signs a token whose subject is the username, valid for the
// configured TTL from the current clock reading.
func (s *TokenService) Issue(username, role string) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("%w: empty signing secret", domain.ErrTokenCreation)
	}

	issuedAt := s.now().UTC()
	claims := tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTokenCreation, err)
	}
	return signed, nil
}

// Validate verifies signature, issuer and expiry, and returns the claims.
// Every verification failure maps to domain.ErrTokenInvalid; malformed input
// is an invalid result, never a panic.
func (s *TokenService) Validate(token string) (*ports.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{},
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, domain.ErrTokenInvalid
	}

	return &ports.TokenClaims{Subject: claims.Subject, Role: claims.Role}, nil
}
