package middleware

import (
	"context"
	"net/http"

	"github.com/andrewpaige1/studysnap-api/logger"
	"github.com/andrewpaige1/studysnap-api/models"
	"github.com/andrewpaige1/studysnap-api/utils"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

type contextKey string

const userKey = contextKey("user")

type UserSyncer interface {
	SyncUser(ctx context.Context, subject, nickname string) (*models.User, error)
}

// SyncUser ensures the token's user exists in the DB and attaches it to context
func SyncUser(users UserSyncer, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject, ok := utils.GetSubject(r)
			if !ok {
				_ = utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "No subject found in token"})
				return
			}

			user, err := users.SyncUser(r.Context(), subject, nickname(r))
			if err != nil {
				log.Error("failed to sync user", "subject", subject, "error", err)
				_ = utils.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load user"})
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func nickname(r *http.Request) string {
	claims, ok := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)
	if !ok {
		return ""
	}
	if customClaims, ok := claims.CustomClaims.(*CustomClaims); ok && customClaims != nil {
		return customClaims.Nickname
	}
	return ""
}

func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// CurrentUser returns the user attached by SyncUser.
func CurrentUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok && user != nil
}
