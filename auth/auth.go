package auth

import (
	"errors"
	"time"

	"github.com/andrewpaige1/studysnap-api/config"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Nickname string `json:"nickname,omitempty"`
	jwt.RegisteredClaims
}

// CreateToken signs an HS256 token that EnsureValidToken accepts. It is
// meant for local development and tests; production tokens come from the
// identity provider.
func CreateToken(cfg config.JWTConfig, subject, nickname string, ttl time.Duration) (string, error) {
	if cfg.SecretKey == "" {
		return "", errors.New("auth: JWT secret key not set")
	}
	if subject == "" {
		return "", errors.New("auth: subject is required")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Nickname: nickname,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings(cfg.Audience),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	return token.SignedString([]byte(cfg.SecretKey))
}
