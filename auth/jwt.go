package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrMissingToken = errors.New("missing token")
)

// Claims represents JWT claims carried by the session cookie.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AccountID returns the subject claim as an account id.
func (c *Claims) AccountID() (int, error) {
	id, err := strconv.Atoi(c.Subject)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}

// Service issues and verifies session tokens. The signing secret and
// token lifetime are fixed at construction so nothing in this package
// reads ambient process state.
type Service struct {
	secret       []byte
	lifetime     time.Duration
	cookieSecure bool
}

// NewService creates an auth service. The secret must be non-empty;
// config.Load enforces that before the server starts.
func NewService(secret string, lifetime time.Duration, cookieSecure bool) *Service {
	return &Service{
		secret:       []byte(secret),
		lifetime:     lifetime,
		cookieSecure: cookieSecure,
	}
}

// Lifetime returns the configured token lifetime.
func (s *Service) Lifetime() time.Duration {
	return s.lifetime
}

// GenerateToken generates a signed JWT for an account.
func (s *Service) GenerateToken(accountID int, role string) (string, error) {
	if accountID <= 0 || role == "" {
		return "", errors.New("account id and role are required")
	}

	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(accountID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.lifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies a JWT signature and expiry and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
