package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
	"github.com/DhavalSuthar-24/hooptrack/internal/policy"
	"github.com/DhavalSuthar-24/hooptrack/pkg/responses"
	"github.com/DhavalSuthar-24/hooptrack/pkg/token"
)

const (
	AuthUserIDKey    = "auth_user_id"
	AuthPrincipalKey = "auth_principal"
)

// UserSource loads the account behind a token.
type UserSource interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// PrincipalSource turns a user id into a policy principal.
type PrincipalSource interface {
	Principal(ctx context.Context, userID uint) (policy.Principal, error)
}

// AuthMiddleware validates the bearer token, rejects unknown or inactive
// accounts and stores the caller's principal on the context.
func AuthMiddleware(jwtSecret string, users UserSource, principals PrincipalSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Unauthorized(c, "Authorization header is required")
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			responses.Unauthorized(c, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			responses.Unauthorized(c, "Invalid or expired token: "+err.Error())
			return
		}

		ctx := c.Request.Context()
		user, err := users.GetByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				responses.Unauthorized(c, "User not found or inactive")
				return
			}
			responses.SendAppError(c, err)
			return
		}
		if !user.IsActive {
			responses.Unauthorized(c, "User not found or inactive")
			return
		}

		principal, err := principals.Principal(ctx, user.ID)
		if err != nil {
			responses.SendAppError(c, err)
			return
		}

		log := zerolog.Ctx(ctx).With().Uint("user_id", user.ID).Str("role", user.Role.String()).Logger()
		c.Request = c.Request.WithContext(log.WithContext(ctx))

		c.Set(AuthUserIDKey, user.ID)
		c.Set(AuthPrincipalKey, principal)
		c.Next()
	}
}

// GetUserIDFromContext extracts the user ID from the context
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userID, exists := c.Get(AuthUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}

	uid, ok := userID.(uint)
	if !ok {
		return 0, fmt.Errorf("user ID has unexpected type: %T", userID)
	}

	return uid, nil
}

// PrincipalFrom returns the principal set by AuthMiddleware. A request that
// never passed authentication gets the zero principal, which policy denies.
func PrincipalFrom(c *gin.Context) policy.Principal {
	if v, ok := c.Get(AuthPrincipalKey); ok {
		if p, ok := v.(policy.Principal); ok {
			return p
		}
	}
	return policy.Principal{}
}
