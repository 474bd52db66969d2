// Package cataloghdl - HTTP handlers for categories and products.
package cataloghdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/shaesansv/pet-new/internal/api/base/handler"
	catalogdto "github.com/shaesansv/pet-new/internal/api/catalog/dto"
	catalogsvc "github.com/shaesansv/pet-new/internal/api/catalog/service"
	"github.com/shaesansv/pet-new/internal/logger"
)

// CategoryHandler handles category requests.
type CategoryHandler struct {
	basehdl.BaseHandler
	service *catalogsvc.CategoryService
}

// NewCategoryHandler creates the category handler.
func NewCategoryHandler(service *catalogsvc.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// HandleList returns all categories. Public endpoint.
func (h *CategoryHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		categories, err := h.service.List(c.Context())
		h.HandleResponse(c, categories, err)
		return nil
	})
}

// HandleGetById returns one category by id. Public endpoint.
func (h *CategoryHandler) HandleGetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		category, err := h.service.FindOneById(c.Context(), id)
		h.HandleResponse(c, category, err)
		return nil
	})
}

// HandleCreate creates a category. Admin only.
func (h *CategoryHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.CategoryCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		category, err := h.service.Create(c.Context(), &input)
		if err == nil {
			logger.LogAction("category_create", c, map[string]interface{}{
				"category_id": category.ID.Hex(),
				"name":        category.Name,
			})
		}
		h.HandleResponse(c, category, err)
		return nil
	})
}

// HandleUpdate patches a category. Admin only.
func (h *CategoryHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input catalogdto.CategoryUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		category, err := h.service.Update(c.Context(), id, &input)
		if err == nil {
			logger.LogAction("category_update", c, map[string]interface{}{
				"category_id": id.Hex(),
			})
		}
		h.HandleResponse(c, category, err)
		return nil
	})
}

// HandleDelete removes a category. Admin only. Products referencing it are
// left untouched.
func (h *CategoryHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.service.Delete(c.Context(), id)
		if err == nil {
			logger.LogAction("category_delete", c, map[string]interface{}{
				"category_id": id.Hex(),
			})
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}
