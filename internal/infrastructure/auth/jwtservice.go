package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"caseline/internal/shared/authorization"
	"caseline/internal/shared/config"
)

// TokenClaims carries the principal's identity and role. The subject is the
// stable external identifier (openid) the auth provider issued.
type TokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret    []byte
	accessExp time.Duration
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{
		secret:    []byte(cfg.Secret),
		accessExp: time.Duration(cfg.AccessExpMinutes) * time.Minute,
	}
}

// Generate mints a signed access token for the given identity and role.
func (s *JWTService) Generate(openID string, role authorization.Role) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   openID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessExp)),
			Issuer:    "caseline",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token and returns its claims.
func (s *JWTService) Verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
