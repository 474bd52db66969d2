// Package middleware - request authentication and role gating.
package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"github.com/shaesansv/pet-new/internal/api/auth/models"
	authsvc "github.com/shaesansv/pet-new/internal/api/auth/service"
	"github.com/shaesansv/pet-new/internal/common"
	"github.com/shaesansv/pet-new/internal/logger"
	"github.com/shaesansv/pet-new/internal/utility"
)

// AuthManager verifies bearer tokens and caches the verdicts so repeated
// requests from the same session skip the JWT parse and user lookup.
type AuthManager struct {
	auth  *authsvc.AuthService
	cache *utility.Cache
}

// NewAuthManager creates the auth manager over the given auth service.
func NewAuthManager(auth *authsvc.AuthService) *AuthManager {
	return &AuthManager{
		auth:  auth,
		cache: utility.NewCache(5*time.Minute, 10*time.Minute),
	}
}

// resolveUser returns the user owning the token, from cache when possible.
func (am *AuthManager) resolveUser(c fiber.Ctx, token string) (models.User, error) {
	cacheKey := "auth_token:" + token
	if cached, found := am.cache.Get(cacheKey); found {
		return cached.(models.User), nil
	}

	user, err := am.auth.VerifyToken(c.Context(), token)
	if err != nil {
		return models.User{}, err
	}

	am.cache.Set(cacheKey, user)
	return user, nil
}

// InvalidateToken drops a token from the verdict cache. Called on logout so
// the cleared token stops working immediately instead of after cache TTL.
func (am *AuthManager) InvalidateToken(token string) {
	am.cache.Delete("auth_token:" + token)
}

// Authenticate is the middleware guarding every protected route. On success
// the user id, role and token are stored in the request locals.
func (am *AuthManager) Authenticate() fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("missing Authorization header")
			return HandleErrorResponse(c, common.ErrTokenMissing)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return HandleErrorResponse(c, common.ErrTokenInvalid)
		}

		user, err := am.resolveUser(c, parts[1])
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("token rejected")
			return HandleErrorResponse(c, err)
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("user_role", user.Role)
		c.Locals("user_token", parts[1])
		return c.Next()
	}
}

// RequireAdmin gates a route to admin accounts. Must run after Authenticate.
func (am *AuthManager) RequireAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if role != models.RoleAdmin {
			return HandleErrorResponse(c, common.ErrForbidden)
		}
		return c.Next()
	}
}

// HandleErrorResponse writes the uniform error envelope from middleware,
// where no handler is available to do it.
func HandleErrorResponse(c fiber.Ctx, err error) error {
	if customErr, ok := err.(*common.Error); ok {
		c.Set("Content-Type", "application/json; charset=utf-8")
		return c.Status(customErr.StatusCode).JSON(fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
			"status":  "error",
		})
	}
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(common.StatusInternalServerError).JSON(fiber.Map{
		"code":    common.ErrCodeInternalServer.Code,
		"message": err.Error(),
		"status":  "error",
	})
}
