package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/andrewpaige1/studysnap-api/config"
	"github.com/andrewpaige1/studysnap-api/logger"
	"github.com/andrewpaige1/studysnap-api/utils"
	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

// CustomClaims carries the profile claims we read besides the subject.
type CustomClaims struct {
	Nickname string `json:"nickname"`
}

func (c CustomClaims) Validate(ctx context.Context) error {
	return nil
}

// EnsureValidToken rejects requests without a valid HS256 bearer token. The
// validated claims are stored under jwtmiddleware.ContextKey{}.
func EnsureValidToken(cfg config.JWTConfig, log *logger.Logger) (func(http.Handler) http.Handler, error) {
	keyFunc := func(ctx context.Context) (interface{}, error) {
		return []byte(cfg.SecretKey), nil
	}

	jwtValidator, err := validator.New(
		keyFunc,
		validator.HS256,
		cfg.Issuer,
		cfg.Audience,
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &CustomClaims{}
		}),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set up the jwt validator: %w", err)
	}

	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		log.Debug("rejected token", "path", r.URL.Path, "error", err)
		_ = utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "Failed to validate JWT."})
	}

	m := jwtmiddleware.New(
		jwtValidator.ValidateToken,
		jwtmiddleware.WithErrorHandler(errorHandler),
	)
	return m.CheckJWT, nil
}
