// Package settingshdl - HTTP handlers for site settings.
package settingshdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/shaesansv/pet-new/internal/api/base/handler"
	settingsdto "github.com/shaesansv/pet-new/internal/api/settings/dto"
	settingssvc "github.com/shaesansv/pet-new/internal/api/settings/service"
	"github.com/shaesansv/pet-new/internal/logger"
)

// SettingsHandler handles site settings requests.
type SettingsHandler struct {
	basehdl.BaseHandler
	service *settingssvc.SettingsService
}

// NewSettingsHandler creates the settings handler.
func NewSettingsHandler(service *settingssvc.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// HandleGet returns the settings singleton. Public endpoint.
func (h *SettingsHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		settings, err := h.service.Get(c.Context())
		h.HandleResponse(c, settings, err)
		return nil
	})
}

// HandleUpdate merges a patch into the settings singleton. Admin only.
func (h *SettingsHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input settingsdto.SettingsUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		settings, err := h.service.Update(c.Context(), &input)
		if err == nil {
			logger.LogAction("settings_update", c, nil)
		}
		h.HandleResponse(c, settings, err)
		return nil
	})
}
