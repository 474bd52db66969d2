// Package authhdl - HTTP handlers for registration, login and sessions.
package authhdl

import (
	"github.com/gofiber/fiber/v3"

	authdto "github.com/shaesansv/pet-new/internal/api/auth/dto"
	authsvc "github.com/shaesansv/pet-new/internal/api/auth/service"
	basehdl "github.com/shaesansv/pet-new/internal/api/base/handler"
	"github.com/shaesansv/pet-new/internal/api/middleware"
	"github.com/shaesansv/pet-new/internal/common"
	"github.com/shaesansv/pet-new/internal/utility"
)

// AuthHandler handles auth requests.
type AuthHandler struct {
	basehdl.BaseHandler
	service     *authsvc.AuthService
	authManager *middleware.AuthManager
}

// NewAuthHandler creates the auth handler. The auth manager is needed so
// logout can evict the token from the verdict cache.
func NewAuthHandler(service *authsvc.AuthService, authManager *middleware.AuthManager) *AuthHandler {
	return &AuthHandler{service: service, authManager: authManager}
}

// HandleRegister creates a new account.
func (h *AuthHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserRegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.service.Register(c.Context(), &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleLogin verifies credentials and returns a fresh token.
func (h *AuthHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.service.Login(c.Context(), &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleLogout clears the caller's stored token.
func (h *AuthHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, _ := c.Locals("user_id").(string)
		objID := utility.String2ObjectID(userID)
		if objID.IsZero() {
			h.HandleResponse(c, nil, common.ErrUnauthorized)
			return nil
		}

		err := h.service.Logout(c.Context(), objID)
		if err == nil {
			if token, ok := c.Locals("user_token").(string); ok {
				h.authManager.InvalidateToken(token)
			}
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleGetProfile returns the caller's account.
func (h *AuthHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, _ := c.Locals("user_id").(string)
		objID := utility.String2ObjectID(userID)
		if objID.IsZero() {
			h.HandleResponse(c, nil, common.ErrUnauthorized)
			return nil
		}

		user, err := h.service.FindOneById(c.Context(), objID)
		h.HandleResponse(c, user, err)
		return nil
	})
}
