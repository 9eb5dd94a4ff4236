package httpapi

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long a dashboard login stays valid.
const TokenTTL = 24 * time.Hour

var errInvalidToken = errors.New("invalid token")

// Claims identify the worker behind a dashboard session.
type Claims struct {
	Worker string `json:"worker"`
	Admin  bool   `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and checks HS256 session tokens.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// Issue returns a signed token for m.
func (s *TokenService) Issue(m domain.Member) (string, error) {
	now := s.now()
	claims := &Claims{
		Worker: m.Name,
		Admin:  m.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   m.Name,
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Validate parses a token and returns its claims. Expired tokens and tokens
// signed with anything but the HMAC secret are rejected.
func (s *TokenService) Validate(raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Worker == "" {
		return nil, errInvalidToken
	}
	return claims, nil
}
